package plan_test

import (
	"github.com/clambin/vetinari/internal/lfsr"
	"github.com/clambin/vetinari/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewPlanner(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr assert.ErrorAssertionFunc
	}{
		{name: "zero", length: 0, wantErr: assert.NoError},
		{name: "power of two", length: 64, wantErr: assert.NoError},
		{name: "not a power of two", length: 5, wantErr: assert.NoError},
		{name: "maximum", length: plan.MaxSequenceLength, wantErr: assert.NoError},
		{name: "negative", length: -1, wantErr: assert.Error},
		{name: "too long", length: plan.MaxSequenceLength + 1, wantErr: assert.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := plan.NewPlanner(tt.length)
			tt.wantErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, plan.ErrInvalidLength)
				return
			}
			assert.Equal(t, tt.length, p.Length())
			assert.Equal(t, 4*tt.length, p.Capacity())
		})
	}
}

func TestPlanner_Fill(t *testing.T) {
	for _, length := range []int{1, 4, 16, 64, 3, 12} {
		p, err := plan.NewPlanner(length)
		require.NoError(t, err)
		gen, err := lfsr.New(0xACE1)
		require.NoError(t, err)

		for cycle := 0; cycle < 10; cycle++ {
			pl := p.Fill(gen)
			assert.Equal(t, 4*length, pl.Len())
			assert.Equal(t, length, pl.Count(), "length: %d, cycle: %d", length, cycle)
			assert.Len(t, pl.Slots(), length)
		}
	}
}

func TestPlanner_Fill_KnownSequences(t *testing.T) {
	tests := []struct {
		length    int
		wantPlan  string
		wantState uint16
	}{
		{length: 1, wantPlan: "1000", wantState: 0x5670},
		{length: 4, wantPlan: "1000000010001010", wantState: 0x2ACE},
		{length: 16, wantPlan: "0000010000100010010001100100100000100001001110001001000010000000", wantState: 0xA391},
	}

	for _, tt := range tests {
		p, err := plan.NewPlanner(tt.length)
		require.NoError(t, err)
		gen, err := lfsr.New(0xACE1)
		require.NoError(t, err)

		pl := p.Fill(gen)
		assert.Equal(t, tt.wantPlan, pl.String())
		assert.Equal(t, tt.wantState, gen.State())
	}
}

func TestPlanner_Fill_Deterministic(t *testing.T) {
	p, err := plan.NewPlanner(64)
	require.NoError(t, err)

	gen1, _ := lfsr.New(0xBEEF)
	gen2, _ := lfsr.New(0xBEEF)

	for i := 0; i < 5; i++ {
		assert.Equal(t, p.Fill(gen1).String(), p.Fill(gen2).String())
		assert.Equal(t, gen1.State(), gen2.State())
	}
}

func TestPlanner_Fill_CarriesState(t *testing.T) {
	p, err := plan.NewPlanner(4)
	require.NoError(t, err)
	gen, _ := lfsr.New(0xACE1)

	first := p.Fill(gen)
	assert.Equal(t, 4, first.Count())
	state := gen.State()

	second := p.Fill(gen)
	assert.Equal(t, 4, second.Count())
	assert.NotEqual(t, state, gen.State())
	assert.Equal(t, "0001000101001000", second.String())
}

func TestPlanner_Fill_Empty(t *testing.T) {
	p, err := plan.NewPlanner(0)
	require.NoError(t, err)
	gen, _ := lfsr.New(0xACE1)

	pl := p.Fill(gen)
	assert.Zero(t, pl.Len())
	assert.Zero(t, pl.Count())
	assert.Equal(t, uint16(0xACE1), gen.State())
}

func TestPlanner_FillInto(t *testing.T) {
	p, err := plan.NewPlanner(16)
	require.NoError(t, err)
	gen, _ := lfsr.New(0xACE1)

	pl := plan.New(p.Capacity())
	for i := 0; i < pl.Len(); i++ {
		pl.Set(i)
	}
	p.FillInto(pl, gen)
	assert.Equal(t, 16, pl.Count())
}
