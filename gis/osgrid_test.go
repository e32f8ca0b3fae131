package gis

import (
	_ "embed"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/osgrid_vectors.yaml
var gridVectorsYaml []byte

func TestLatLonToGridEastNorthKnown(t *testing.T) {
	// Worked example from appendix C of the OS coordinate systems guide.
	lat, err := DmsToDd("52 39 27.2531 N")
	require.NoError(t, err)
	lon, err := DmsToDd("001 43 4.5177 E")
	require.NoError(t, err)

	gc := LatLonToGridEastNorth(s2.LatLngFromDegrees(lat, lon))
	assert.InDelta(t, 651409.903, gc.Easting, 0.05)
	assert.InDelta(t, 313177.270, gc.Northing, 0.05)
}

func TestGridEastNorthToLatLonKnown(t *testing.T) {
	ll, err := GridEastNorthToLatLon(GridCoord{Easting: 651409.903, Northing: 313177.270})
	require.NoError(t, err)
	assert.InDelta(t, 52.6575703056, ll.Lat.Degrees(), 1e-6)
	assert.InDelta(t, 1.7179215833, ll.Lng.Degrees(), 1e-6)
}

func TestGridRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 20_000; i++ {
		lat := rng.Float64()*9 + 50
		lon := rng.Float64()*7.8 - 6

		gc := LatLonToGridEastNorth(s2.LatLngFromDegrees(lat, lon))
		ll, err := GridEastNorthToLatLon(gc)
		if err != nil {
			t.Fatal(err)
		}
		if !eqish(ll.Lat.Degrees(), lat, 6) || !eqish(ll.Lng.Degrees(), lon, 6) {
			t.Fatalf("(%f, %f) round-tripped to (%f, %f)",
				lat, lon, ll.Lat.Degrees(), ll.Lng.Degrees())
		}
	}
}

func TestGridVectors(t *testing.T) {
	var tv struct {
		Vectors []struct {
			Name      string  `yaml:"name"`
			Lat       float64 `yaml:"lat"`
			Lon       float64 `yaml:"lon"`
			Easting   float64 `yaml:"easting"`
			Northing  float64 `yaml:"northing"`
			Tolerance float64 `yaml:"tolerance"`
			Digits    int     `yaml:"digits"`
			Ref       string  `yaml:"ref"`
		} `yaml:"vectors"`
	}
	require.NoError(t, yaml.Unmarshal(gridVectorsYaml, &tv))
	require.NotEmpty(t, tv.Vectors)

	for _, v := range tv.Vectors {
		t.Run(v.Name, func(t *testing.T) {
			gc := LatLonToGridEastNorth(s2.LatLngFromDegrees(v.Lat, v.Lon))
			assert.InDelta(t, v.Easting, gc.Easting, v.Tolerance)
			assert.InDelta(t, v.Northing, gc.Northing, v.Tolerance)

			ref, err := gc.GridRef(v.Digits)
			require.NoError(t, err)
			assert.Equal(t, v.Ref, ref)
		})
	}
}

func TestGridRef(t *testing.T) {
	tests := []struct {
		gc     GridCoord
		digits int
		want   string
	}{
		{GridCoord{0, 0}, 10, "SV 00000 00000"},
		{GridCoord{651409.903, 313177.270}, 10, "TG 51409 13177"},
		{GridCoord{651409.903, 313177.270}, 8, "TG 5140 1317"},
		{GridCoord{651409.903, 313177.270}, 6, "TG 514 131"},
		{GridCoord{651409.903, 313177.270}, 4, "TG 51 13"},
		{GridCoord{651409.903, 313177.270}, 2, "TG 5 1"},
		{GridCoord{533600, 180500}, 4, "TQ 33 80"},
		{GridCoord{216600, 771200}, 6, "NN 166 712"},
		{GridCoord{450000, 1200000}, 2, "HP 5 0"},
	}
	for _, tt := range tests {
		got, err := tt.gc.GridRef(tt.digits)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "(%v, %d)", tt.gc, tt.digits)
	}
}

func TestGridRefErrors(t *testing.T) {
	gc := GridCoord{Easting: 651409.903, Northing: 313177.270}
	for _, digits := range []int{-2, 0, 3, 5, 12} {
		_, err := gc.GridRef(digits)
		assert.ErrorIs(t, err, ErrOutOfRange, "digits %d", digits)
	}

	for _, gc := range []GridCoord{
		{Easting: -1, Northing: 100},
		{Easting: 100, Northing: -1},
		{Easting: 700000, Northing: 0},
		{Easting: 0, Northing: 1300000},
	} {
		_, err := gc.GridRef(10)
		assert.ErrorIs(t, err, ErrOutOfRange, "%v", gc)
	}
}
