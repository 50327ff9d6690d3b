package ids

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderIDShape(t *testing.T) {
	id := NewOrderID()

	assert.Equal(t, strings.ToUpper(id), id, "identifier must be upper-cased")
	assert.GreaterOrEqual(t, len(id), suffixLen+1)
	for _, r := range id {
		valid := (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z')
		assert.True(t, valid, "unexpected character %q in %s", r, id)
	}
}

func TestNewOrderIDEmbedsTimestamp(t *testing.T) {
	old := nowMillis
	defer func() { nowMillis = old }()

	const millis = int64(1742072400000)
	nowMillis = func() int64 { return millis }

	id := NewOrderID()
	want := strings.ToUpper(strconv.FormatInt(millis, 36))
	assert.True(t, strings.HasPrefix(id, want), "id %s should start with %s", id, want)
	assert.Len(t, id, len(want)+suffixLen)
}

func TestNewOrderIDDistinctAcrossRapidCalls(t *testing.T) {
	old := nowMillis
	defer func() { nowMillis = old }()

	// Freeze the clock so only the random suffix separates the ids.
	nowMillis = func() int64 { return 1742072400000 }

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewOrderID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
