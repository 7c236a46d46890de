package bridge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/biofield/internal/phi"
)

func TestNewDerivesPolarForm(t *testing.T) {
	t.Parallel()
	s := New(0, 2)
	assert.InDelta(t, 2.0, s.Amplitude, 1e-12)
	assert.InDelta(t, math.Pi/2, s.Phase, 1e-12)

	neg := New(-1, 0)
	assert.InDelta(t, math.Pi, neg.Phase, 1e-12, "phase normalized into [0,2π)")
}

func TestGoldenScaleRoundTrip(t *testing.T) {
	t.Parallel()
	s := New(1.5, -0.75)
	back := GoldenScaleInverse(GoldenScale(s))
	assert.InDelta(t, s.Real, back.Real, 1e-12)
	assert.InDelta(t, s.Imag, back.Imag, 1e-12)
	assert.InDelta(t, s.Amplitude, back.Amplitude, 1e-12)
	assert.InDelta(t, s.Phase, back.Phase, 1e-12)
}

func TestGoldenScaleGrowsByPhi(t *testing.T) {
	t.Parallel()
	s := New(1, 0)
	g := GoldenScale(s)
	assert.InDelta(t, phi.Phi, g.Amplitude, 1e-12)
	assert.InDelta(t, phi.GoldenAngle, g.Phase, 1e-12)
	assert.InDelta(t, g.Amplitude, math.Hypot(g.Real, g.Imag), 1e-12)
}

func TestComputeEmergenceMagnitude(t *testing.T) {
	t.Parallel()
	// The operator orders disagree by a rotation of the scaled state:
	// |RG − GR| = Φ·A·2·|sin(θ/2)|.
	s := New(1, 0)
	angle := math.Pi / 2
	e := ComputeEmergence(s, angle)
	want := phi.Phi * 2 * math.Abs(math.Sin(angle/2))
	assert.InDelta(t, want, e.EmergenceMagnitude, 1e-12)
	assert.InDelta(t, e.Amplitude, e.EmergenceMagnitude, 1e-12)
	assert.True(t, IsEmergent(e))
}

func TestZeroAngleCommutes(t *testing.T) {
	t.Parallel()
	e := ComputeEmergence(New(3, 4), 0)
	assert.False(t, IsEmergent(e))
	assert.InDelta(t, 0, e.EmergenceMagnitude, EmergenceEpsilon)
}

func TestApplyBridge(t *testing.T) {
	t.Parallel()
	s := New(1, 1)
	out := ApplyBridge(s, math.Pi/3, 0) // default alpha Φ/2
	assert.InDelta(t, math.Hypot(out.Real, out.Imag), out.Amplitude, 1e-12,
		"amplitude renormalized from the perturbed components")
	assert.NotEqual(t, s.Real, out.Real)
	assert.Greater(t, out.EmergenceMagnitude, 0.0)

	// Explicit alpha scales the perturbation.
	small := ApplyBridge(s, math.Pi/3, 0.01)
	big := ApplyBridge(s, math.Pi/3, 1.0)
	assert.Greater(t,
		math.Hypot(big.Real-s.Real, big.Imag-s.Imag),
		math.Hypot(small.Real-s.Real, small.Imag-s.Imag))
}

func TestComputeSpectrum(t *testing.T) {
	t.Parallel()
	angle := math.Pi
	states := []State{New(1, 0), New(0, 2), New(3, 0)}
	sp := ComputeSpectrum(states, angle)

	mag := func(a float64) float64 { return phi.Phi * a * 2 * math.Abs(math.Sin(angle/2)) }
	assert.InDelta(t, mag(3), sp.Max, 1e-12)
	assert.InDelta(t, (mag(1)+mag(2)+mag(3))/3, sp.Mean, 1e-12)
	assert.InDelta(t, mag(3)-mag(2), sp.Gap, 1e-12)
}

func TestComputeSpectrumSingle(t *testing.T) {
	t.Parallel()
	sp := ComputeSpectrum([]State{New(1, 0)}, math.Pi/4)
	assert.Equal(t, sp.Max, sp.Gap, "single state reports the top magnitude as the gap")
	assert.Equal(t, sp.Max, sp.Mean)
}

func TestComputeSpectrumEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Spectrum{}, ComputeSpectrum(nil, 1))
}
