package lfsr_test

import (
	"github.com/clambin/vetinari/internal/lfsr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestStep(t *testing.T) {
	state := uint16(0xACE1)
	for _, want := range []uint16{0x5670, 0xAB38, 0x559C, 0x2ACE, 0x1567} {
		state = lfsr.Step(state)
		assert.Equal(t, want, state)
	}
}

func TestStep_Zero(t *testing.T) {
	assert.Zero(t, lfsr.Step(0))
}

func TestStep_Period(t *testing.T) {
	const seed = 0xACE1
	state := lfsr.Step(seed)
	period := 1
	for state != seed {
		require.NotZero(t, state)
		state = lfsr.Step(state)
		period++
	}
	assert.Equal(t, 65535, period)
}

func TestNew(t *testing.T) {
	_, err := lfsr.New(0)
	assert.ErrorIs(t, err, lfsr.ErrZeroSeed)

	g, err := lfsr.New(0xACE1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xACE1), g.State())
}

func TestGenerator_Next(t *testing.T) {
	g1, err := lfsr.New(0x1234)
	require.NoError(t, err)
	g2, err := lfsr.New(0x1234)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		v := g1.Next()
		assert.Equal(t, v, g2.Next())
		assert.Equal(t, v, g1.State())
	}
}
