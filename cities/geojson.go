package cities

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/citytour/geom"
)

// nameProperty is the feature property holding a city name.
const nameProperty = "name"

// ReadGeoJSON reads a FeatureCollection whose features are Points and
// returns them, in document order, as a set called name. A feature's
// "name" string property becomes the city name; unnamed features get a
// positional label. Any non-Point geometry is rejected.
func ReadGeoJSON(name string, r io.Reader) (Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Set{}, fmt.Errorf("read geojson: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return Set{}, fmt.Errorf("decode geojson: %w", err)
	}

	s := Set{Name: name, Cities: make([]City, 0, len(fc.Features))}
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return Set{}, fmt.Errorf("feature %d is %T: %w", i, f.Geometry, ErrUnsupportedGeometry)
		}
		label, _ := f.Properties[nameProperty].(string)
		if label == "" {
			label = cityName(i)
		}
		s.Cities = append(s.Cities, City{Name: label, Location: geom.Point(pt)})
	}
	if err = s.Validate(); err != nil {
		return Set{}, err
	}

	return s, nil
}

// WriteGeoJSON writes s as a FeatureCollection of named Point features.
func WriteGeoJSON(w io.Writer, s Set) error {
	fc := geojson.NewFeatureCollection()
	for _, c := range s.Cities {
		f := geojson.NewFeature(c.Location.Orb())
		f.Properties[nameProperty] = c.Name
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}

	return nil
}
