// Package docs - Swagger описание API дашборда вакцинации.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object"}}
                }
            }
        },
        "/api/v1/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Значения селекторов",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.OptionsResponse"}}
                }
            }
        },
        "/api/v1/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Весь дашборд",
                "parameters": [
                    {"$ref": "#/parameters/year"},
                    {"$ref": "#/parameters/disease"},
                    {"$ref": "#/parameters/region"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DashboardResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/map": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Данные карты",
                "parameters": [
                    {"$ref": "#/parameters/year"},
                    {"$ref": "#/parameters/disease"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MapResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/map.geojson": {
            "get": {
                "produces": ["application/geo+json"],
                "tags": ["Map"],
                "summary": "Данные карты в GeoJSON",
                "parameters": [
                    {"$ref": "#/parameters/year"},
                    {"$ref": "#/parameters/disease"}
                ],
                "responses": {
                    "200": {"description": "GeoJSON FeatureCollection", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/map.png": {
            "get": {
                "produces": ["image/png"],
                "tags": ["Map"],
                "summary": "Хороплеты",
                "parameters": [
                    {"$ref": "#/parameters/year"},
                    {"$ref": "#/parameters/disease"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/detail": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Detail"],
                "summary": "Панель деталей региона",
                "parameters": [
                    {"$ref": "#/parameters/year"},
                    {"$ref": "#/parameters/disease"},
                    {"$ref": "#/parameters/region"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DetailResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/detail/geometry.png": {
            "get": {
                "produces": ["image/png"],
                "tags": ["Detail"],
                "summary": "Контур региона",
                "parameters": [
                    {"$ref": "#/parameters/region"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/trend": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Trend"],
                "summary": "Тренд вакцинации",
                "parameters": [
                    {"$ref": "#/parameters/year"},
                    {"$ref": "#/parameters/disease"},
                    {"$ref": "#/parameters/region"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TrendResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/trend.png": {
            "get": {
                "produces": ["image/png"],
                "tags": ["Trend"],
                "summary": "График тренда",
                "parameters": [
                    {"$ref": "#/parameters/year"},
                    {"$ref": "#/parameters/disease"},
                    {"$ref": "#/parameters/region"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "parameters": {
        "year": {"type": "integer", "description": "Год", "name": "year", "in": "query", "required": true},
        "disease": {"type": "string", "description": "Болезнь", "name": "disease", "in": "query", "required": true},
        "region": {"type": "string", "description": "Регион", "name": "region", "in": "query", "required": true}
    },
    "definitions": {
        "dto.OptionsResponse": {
            "type": "object",
            "properties": {
                "years": {"type": "array", "items": {"type": "integer"}},
                "diseases": {"type": "array", "items": {"type": "string"}},
                "regions": {"type": "array", "items": {"$ref": "#/definitions/domain.RegionOption"}},
                "aggregate_label": {"type": "string"},
                "defaults": {"$ref": "#/definitions/dto.SelectionDefaults"}
            }
        },
        "domain.RegionOption": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "aggregate": {"type": "boolean"}
            }
        },
        "dto.SelectionDefaults": {
            "type": "object",
            "properties": {
                "year": {"type": "integer"},
                "disease": {"type": "string"},
                "region": {"type": "string"}
            }
        },
        "dto.MapRow": {
            "type": "object",
            "properties": {
                "region": {"type": "string"},
                "kind": {"type": "string"},
                "has_geometry": {"type": "boolean"},
                "VaccinationRate": {"type": "number", "x-nullable": true},
                "IncidenceCount": {"type": "number", "x-nullable": true}
            }
        },
        "dto.MapResponse": {
            "type": "object",
            "properties": {
                "year": {"type": "integer"},
                "disease": {"type": "string"},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/dto.MapRow"}},
                "total": {"type": "integer"}
            }
        },
        "dto.MetricValue": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "value": {"type": "number", "x-nullable": true},
                "display": {"type": "string"},
                "available": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "dto.DetailResponse": {
            "type": "object",
            "properties": {
                "region": {"type": "string"},
                "year": {"type": "integer"},
                "disease": {"type": "string"},
                "is_aggregate": {"type": "boolean"},
                "vaccination": {"$ref": "#/definitions/dto.MetricValue"},
                "incidence": {"$ref": "#/definitions/dto.MetricValue"},
                "geometry_available": {"type": "boolean"},
                "warnings": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.TrendPoint": {
            "type": "object",
            "properties": {
                "year": {"type": "integer"},
                "VaccinationRate": {"type": "number", "x-nullable": true}
            }
        },
        "dto.TrendResponse": {
            "type": "object",
            "properties": {
                "region": {"type": "string"},
                "disease": {"type": "string"},
                "year": {"type": "integer"},
                "window": {"type": "array", "items": {"type": "integer"}},
                "points": {"type": "array", "items": {"$ref": "#/definitions/dto.TrendPoint"}},
                "empty": {"type": "boolean"},
                "note": {"type": "string"}
            }
        },
        "dto.DashboardResponse": {
            "type": "object",
            "properties": {
                "map": {"$ref": "#/definitions/dto.MapResponse"},
                "detail": {"$ref": "#/definitions/dto.DetailResponse"},
                "trend": {"$ref": "#/definitions/dto.TrendResponse"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Vaccination Dashboard API",
	Description:      "Уровень вакцинации и заболеваемость по уездам Эстонии: карта, панель деталей и тренд за предыдущие годы.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
