package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrUnknownDisease = New(
		"UNKNOWN_DISEASE",
		"Disease is not present in both vaccination and incidence tables",
		http.StatusBadRequest,
	)

	ErrMissingGeometry = New(
		"MISSING_GEOMETRY",
		"Selected region has no valid geometry",
		http.StatusNotFound,
	)

	ErrEmptyTrend = New(
		"EMPTY_TREND",
		"No historical vaccination data for the previous years",
		http.StatusNotFound,
	)

	ErrRenderFailed = New(
		"RENDER_FAILED",
		"Failed to render image",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
