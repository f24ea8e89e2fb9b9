package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunTotals(t *testing.T) {
	r := NewRun()
	r.AddValues(3)
	r.AddValues(1)
	r.AddBytes(16)

	values, bytes := r.Totals()
	assert.Equal(t, int64(4), values)
	assert.Equal(t, int64(16), bytes)
}

func TestRunZero(t *testing.T) {
	r := NewRun()
	values, bytes := r.Totals()
	assert.Zero(t, values)
	assert.Zero(t, bytes)
}
