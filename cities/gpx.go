package cities

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
)

const gpxNamespace = "http://www.topografix.com/GPX/1/1"

// WriteGPX writes s as a GPX 1.1 document holding one route whose points
// follow the set order. x is written as lon and y as lat, so this is only
// meaningful for geographic sets (GeoJSON or OSM sources).
func WriteGPX(w io.Writer, s Set) error {
	if err := s.Validate(); err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("gpx")
	root.CreateAttr("version", "1.1")
	root.CreateAttr("creator", "citytour")
	root.CreateAttr("xmlns", gpxNamespace)

	rte := root.CreateElement("rte")
	rte.CreateElement("name").SetText(s.Name)
	for _, c := range s.Cities {
		pt := rte.CreateElement("rtept")
		pt.CreateAttr("lat", formatCoord(c.Location.Y()))
		pt.CreateAttr("lon", formatCoord(c.Location.X()))
		pt.CreateElement("name").SetText(c.Name)
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write gpx: %w", err)
	}

	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
