package cities_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citytour/cities"
	"github.com/katalvlaran/citytour/geom"
)

const sampleGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [13.405, 52.52]}, "properties": {"name": "Berlin"}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [11.576, 48.137]}, "properties": {"name": "Munich"}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [9.993, 53.551]}, "properties": {}}
  ]
}`

const sampleOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="1" lat="52.52" lon="13.405">
    <tag k="place" v="city"/>
    <tag k="name" v="Berlin"/>
  </node>
  <node id="2" lat="50.0" lon="10.0">
    <tag k="highway" v="traffic_signals"/>
  </node>
  <node id="3" lat="48.137" lon="11.576">
    <tag k="place" v="city"/>
  </node>
</osm>`

func TestReadGeoJSON(t *testing.T) {
	s, err := cities.ReadGeoJSON("de", strings.NewReader(sampleGeoJSON))
	require.NoError(t, err)

	assert.Equal(t, "de", s.Name)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, "Berlin", s.Cities[0].Name)
	assert.Equal(t, geom.Pt(13.405, 52.52), s.Cities[0].Location)
	assert.Equal(t, "c03", s.Cities[2].Name)
}

func TestReadGeoJSON_Rejects(t *testing.T) {
	line := `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]},"properties":{}}]}`
	_, err := cities.ReadGeoJSON("x", strings.NewReader(line))
	assert.ErrorIs(t, err, cities.ErrUnsupportedGeometry)

	empty := `{"type":"FeatureCollection","features":[]}`
	_, err = cities.ReadGeoJSON("x", strings.NewReader(empty))
	assert.ErrorIs(t, err, cities.ErrEmptySet)

	_, err = cities.ReadGeoJSON("x", strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestGeoJSON_RoundTrip(t *testing.T) {
	in, err := cities.Random(6, cities.WithSeed(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cities.WriteGeoJSON(&buf, in))

	out, err := cities.ReadGeoJSON(in.Name, &buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReadOSM(t *testing.T) {
	s, err := cities.ReadOSM("osm", strings.NewReader(sampleOSM))
	require.NoError(t, err)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, cities.City{Name: "Berlin", Location: geom.Pt(13.405, 52.52)}, s.Cities[0])
	assert.Equal(t, "node/3", s.Cities[1].Name)
	assert.Equal(t, geom.Pt(11.576, 48.137), s.Cities[1].Location)
}

func TestReadOSM_NoPlaces(t *testing.T) {
	doc := `<osm version="0.6"><node id="9" lat="1" lon="2"/></osm>`
	_, err := cities.ReadOSM("none", strings.NewReader(doc))
	assert.ErrorIs(t, err, cities.ErrEmptySet)
}

func TestWriteGPX(t *testing.T) {
	s, err := cities.ReadGeoJSON("de", strings.NewReader(sampleGeoJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cities.WriteGPX(&buf, s))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.SelectElement("gpx")
	require.NotNil(t, root)
	assert.Equal(t, "1.1", root.SelectAttrValue("version", ""))
	assert.Equal(t, "de", root.FindElement("rte/name").Text())

	pts := root.FindElements("rte/rtept")
	require.Len(t, pts, 3)
	for i, pt := range pts {
		lat, err := strconv.ParseFloat(pt.SelectAttrValue("lat", ""), 64)
		require.NoError(t, err)
		lon, err := strconv.ParseFloat(pt.SelectAttrValue("lon", ""), 64)
		require.NoError(t, err)
		assert.Equal(t, s.Cities[i].Location, geom.Pt(lon, lat))
		assert.Equal(t, s.Cities[i].Name, pt.SelectElement("name").Text())
	}
}

func TestWriteGPX_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, cities.WriteGPX(&buf, cities.Set{Name: "none"}), cities.ErrEmptySet)
	assert.Zero(t, buf.Len())
}
