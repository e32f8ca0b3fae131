package gis

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegRadConversion(t *testing.T) {
	require.Equal(t, math.Pi, DegToRad(180))
	require.Equal(t, 180.0, RadToDeg(math.Pi))
	require.Equal(t, 0.0, DegToRad(0))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 10_000; i++ {
		deg := rng.Float64()*720 - 360
		if got := RadToDeg(DegToRad(deg)); !eqish(got, deg, 9) {
			t.Fatalf("round trip %f -> %f", deg, got)
		}
	}
}

func TestConvertAngle(t *testing.T) {
	cases := []struct {
		angle  float64
		signed bool
		want   float64
	}{
		{270, true, -90},
		{180, true, -180},
		{90, true, 90},
		{-90, true, -90},
		{-90, false, 270},
		{-0.1, false, 359.9},
		{0, false, 0},
		{359.9, false, 359.9},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, ConvertAngle(c.angle, c.signed), 1e-9,
			"ConvertAngle(%v, %v)", c.angle, c.signed)
	}
}

func TestConvertAngleRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 100_000; i++ {
		lon := rng.Float64()*540 - 180
		got := ConvertAngle(ConvertAngle(lon, true), false)
		want := math.Mod(lon+360, 360)
		if !eqish(got, want, 9) {
			t.Fatalf("unsigned(signed(%f)) = %f, want %f", lon, got, want)
		}
		// Re-applying the same target signedness must not move the value.
		if s := ConvertAngle(lon, true); ConvertAngle(s, true) != s {
			t.Fatalf("signed not idempotent at %f", lon)
		}
		if u := ConvertAngle(lon, false); ConvertAngle(u, false) != u {
			t.Fatalf("unsigned not idempotent at %f", lon)
		}
	}
}

func TestTrigPowers(t *testing.T) {
	assert.Equal(t, 1.0, Cos5(0))
	assert.InDelta(t, 1.0, Tan2(math.Pi/4), 1e-12)
	assert.InDelta(t, 1.0, Tan4(math.Pi/4), 1e-12)

	x := 0.6125
	c := math.Cos(x)
	assert.InDelta(t, c*c*c*c*c, Cos5(x), 1e-15)
	tn := math.Tan(x)
	assert.InDelta(t, tn*tn, Tan2(x), 1e-15)
	assert.InDelta(t, tn*tn*tn*tn, Tan4(x), 1e-15)
}
