package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededSourceIsDeterministic(t *testing.T) {
	t.Parallel()
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float(), b.Float())
	}
}

func TestZeroNoise(t *testing.T) {
	t.Parallel()
	assert.Zero(t, Zero(0))
	assert.Zero(t, Zero(123.456))
}

func TestSimplexBoundedAndDeterministic(t *testing.T) {
	t.Parallel()
	f := Simplex(7, 1.0, 0.5)
	g := Simplex(7, 1.0, 0.5)
	for i := 0; i < 50; i++ {
		tt := float64(i) * 0.1
		v := f(tt)
		assert.Equal(t, v, g(tt))
		assert.LessOrEqual(t, v, 0.5)
		assert.GreaterOrEqual(t, v, -0.5)
	}
}

func TestUniformAmplitude(t *testing.T) {
	t.Parallel()
	f := Uniform(NewSeeded(1), 0.25)
	for i := 0; i < 100; i++ {
		v := f(0)
		assert.LessOrEqual(t, v, 0.25)
		assert.GreaterOrEqual(t, v, -0.25)
	}
}
