package activation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReLU(t *testing.T) {
	relu := NewReLU()

	assert.Equal(t, 0.0, relu.Evaluate(-3))
	assert.Equal(t, 0.0, relu.Evaluate(0))
	assert.Equal(t, 2.5, relu.Evaluate(2.5))
}

func TestReLU_CustomThreshold(t *testing.T) {
	relu := NewReLUWithThreshold(1.5)

	assert.Equal(t, 1.5, relu.Evaluate(-3))
	assert.Equal(t, 1.5, relu.Evaluate(1.0))
	assert.Equal(t, 2.0, relu.Evaluate(2.0))
}

func TestPoly(t *testing.T) {
	poly := NewPoly()

	assert.Equal(t, 9.0, poly.Evaluate(3))
	assert.Equal(t, 9.0, poly.Evaluate(-3))
	assert.Equal(t, 0.0, poly.Evaluate(0))

	cubic := NewPolyWithPower(3)
	assert.Equal(t, 8.0, cubic.Evaluate(2))
	assert.Equal(t, -8.0, cubic.Evaluate(-2))
}

func TestSigmoid(t *testing.T) {
	sig := NewSigmoid()

	assert.InDelta(t, 0.5, sig.Evaluate(0), 1e-12)
	assert.InDelta(t, 1.0, sig.Evaluate(1000), 1e-12)
	assert.InDelta(t, 0.0, sig.Evaluate(-1000), 1e-12)
	assert.Greater(t, sig.Evaluate(1), sig.Evaluate(-1))
}
