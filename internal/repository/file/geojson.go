package file

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/vaccination-dashboard/internal/domain"
)

// ReadFeatures читает GeoJSON FeatureCollection
func ReadFeatures(path string) ([]domain.Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geojson %s: %w", path, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode geojson %s: %w", path, err)
	}

	features := make([]domain.Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		features = append(features, domain.Feature{
			Properties: map[string]interface{}(f.Properties),
			Geometry:   f.Geometry,
		})
	}

	return features, nil
}
