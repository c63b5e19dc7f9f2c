package transition

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f5rail/easement"
)

var (
	k300  = easement.Radius(300).Curvature()
	km300 = easement.Radius(-300).Curvature()
)

func TestLinearIsAffine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tcl := easement.ArcLength(19.5)
	for _, s := range []easement.ArcLength{0, 0.25, 3, 9.75, 12.5, 19.5} {
		want := k300 + (km300-k300)*easement.Curvature(float64(s)/float64(tcl))
		assert.Equal(t, want, Linear.CurvatureAt(tcl, s, k300, km300), "s = %v", s)
	}
}

func TestSineEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tcl := easement.ArcLength(19)
	assert.InDelta(t, float64(k300), float64(Sine.CurvatureAt(tcl, 0, k300, km300)), 1e-15)
	assert.InDelta(t, float64(km300), float64(Sine.CurvatureAt(tcl, tcl, k300, km300)), 1e-15)
	assert.Equal(t, easement.Straight, Sine.CurvatureAt(tcl, 9.5, k300, km300))
}

func TestSineIsMonotonic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tcl := easement.ArcLength(40)
	prev := Sine.CurvatureAt(tcl, 0, k300, km300)
	for s := easement.ArcLength(0.1); s <= tcl; s += 0.1 {
		k := Sine.CurvatureAt(tcl, s, k300, km300)
		require.LessOrEqual(t, float64(k), float64(prev), "s = %v", s)
		prev = k
	}
}

func TestSineHasFlatTieIns(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tcl := easement.ArcLength(20)
	h := easement.ArcLength(1e-4)
	// slope at the tie-ins, relative to the mean slope
	mean := float64(km300-k300) / float64(tcl)
	start := float64(Sine.CurvatureAt(tcl, h, k300, km300)-Sine.CurvatureAt(tcl, 0, k300, km300)) / float64(h)
	end := float64(Sine.CurvatureAt(tcl, tcl, k300, km300)-Sine.CurvatureAt(tcl, tcl-h, k300, km300)) / float64(h)
	assert.InDelta(t, 0.0, start/mean, 1e-4)
	assert.InDelta(t, 0.0, end/mean, 1e-4)
	mid := float64(Sine.CurvatureAt(tcl, tcl/2+h, k300, km300)-Sine.CurvatureAt(tcl, tcl/2, k300, km300)) / float64(h)
	assert.Greater(t, mid/mean, 1.5)
}

func TestSineMirrorsAcrossMidpoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tcl := easement.ArcLength(19.5)
	for _, s := range []easement.ArcLength{0, 0.5, 4.25, 9, 9.75} {
		k := Sine.CurvatureAt(tcl, s, k300, km300)
		mirrored := Sine.CurvatureAt(tcl, tcl-s, k300, km300)
		assert.InDelta(t, float64(k), -float64(mirrored), 1e-15, "s = %v", s)
	}
}

func TestParseDiminish(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for in, want := range map[string]Diminish{"sine": Sine, "sin": Sine, "linear": Linear, "clothoid": Linear} {
		d, err := ParseDiminish(in)
		require.NoError(t, err)
		assert.Equal(t, want, d)
	}
	_, err := ParseDiminish("cubic")
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.Equal(t, "sine", Sine.String())
	assert.False(t, Diminish(0).IsValid())
}
