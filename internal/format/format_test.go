package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	assert.Equal(t, "$ 0", Price(0))
	assert.Equal(t, "$ 800", Price(800))
	assert.Equal(t, "$ 150.000", Price(150000))
}

func TestTime(t *testing.T) {
	ts := time.Date(2025, 3, 15, 21, 5, 0, 0, time.Local)
	assert.Equal(t, "21:05", Time(ts))
}

func TestDate(t *testing.T) {
	ts := time.Date(2025, 3, 15, 21, 5, 0, 0, time.Local)
	assert.Equal(t, "15/03/2025", Date(ts))
}
