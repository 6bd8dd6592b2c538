package cities

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/paulmach/osm"

	"github.com/katalvlaran/citytour/geom"
)

// placeTag marks OSM nodes that represent settlements.
const placeTag = "place"

// ReadOSM reads an OSM XML document and returns every node carrying a
// place=* tag, in document order, as a set called name. Locations are
// (lon, lat). The node's name tag labels the city, falling back to its id.
func ReadOSM(name string, r io.Reader) (Set, error) {
	var doc osm.OSM
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Set{}, fmt.Errorf("decode osm: %w", err)
	}

	s := Set{Name: name}
	for _, n := range doc.Nodes {
		if n.Tags.Find(placeTag) == "" {
			continue
		}
		label := n.Tags.Find("name")
		if label == "" {
			label = fmt.Sprintf("node/%d", n.ID)
		}
		s.Cities = append(s.Cities, City{Name: label, Location: geom.Pt(n.Lon, n.Lat)})
	}
	if err := s.Validate(); err != nil {
		return Set{}, err
	}

	return s, nil
}
