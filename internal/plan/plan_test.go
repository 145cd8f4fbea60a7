package plan_test

import (
	"github.com/clambin/vetinari/internal/plan"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPlan(t *testing.T) {
	p := plan.New(130)
	assert.Equal(t, 130, p.Len())
	assert.Zero(t, p.Count())

	for _, index := range []int{0, 63, 64, 129} {
		assert.False(t, p.Test(index))
		p.Set(index)
		assert.True(t, p.Test(index))
	}
	p.Set(64)
	assert.Equal(t, 4, p.Count())
	assert.Equal(t, []int{0, 63, 64, 129}, p.Slots())

	p.ClearAll()
	assert.Zero(t, p.Count())
	assert.Empty(t, p.Slots())
}

func TestPlan_String(t *testing.T) {
	p := plan.New(8)
	p.Set(1)
	p.Set(6)
	assert.Equal(t, "01000010", p.String())
	assert.Equal(t, "", plan.New(0).String())
}
