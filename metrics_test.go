package dynarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlack(t *testing.T) {
	a := WithCapacity[int](8)
	assert.Equal(t, 8, a.Slack())

	a.PushBack(1)
	a.PushBack(2)
	assert.Equal(t, 6, a.Slack())

	a.Clear()
	assert.Equal(t, 8, a.Slack())
}

func TestUtilization(t *testing.T) {
	assert.Equal(t, 0.0, New[int]().Utilization())

	a := WithCapacity[int](4)
	assert.Equal(t, 0.0, a.Utilization())

	a.PushBack(1)
	assert.Equal(t, 0.25, a.Utilization())

	a.PushBack(2)
	a.PushBack(3)
	a.PushBack(4)
	assert.Equal(t, 1.0, a.Utilization())
}

func TestMetricsSnapshot(t *testing.T) {
	a := WithCapacity[int](4)
	a.PushBack(1)
	a.PushBack(2)

	m := a.Metrics()
	assert.Equal(t, 2, m.Len)
	assert.Equal(t, 4, m.Cap)
	assert.Equal(t, 2, m.Slack)
	assert.Equal(t, 0.5, m.Utilization)
}
