// Package ids generates short, URL-safe, human-legible order identifiers.
//
// The scheme is a base-36 millisecond timestamp followed by five random
// base-36 characters, upper-cased. Collisions are extremely unlikely but
// not impossible; that is acceptable for a single-process system that
// keeps orders in memory only.
package ids

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

const suffixLen = 5

// nowMillis is swapped out in tests.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// NewOrderID returns a fresh order identifier.
func NewOrderID() string {
	timestamp := strconv.FormatInt(nowMillis(), 36)

	suffix := make([]byte, suffixLen)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}

	return strings.ToUpper(timestamp + string(suffix))
}
