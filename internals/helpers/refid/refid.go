// Package refid generates the human-facing reference IDs handed to a
// participant after a successful submission. They are not database
// surrogate keys: the timestamp part changes every millisecond, and
// within one millisecond the suffix steps through the base36 space
// from a random start, so a single process never repeats an ID unless
// it generates more than 36^4 of them in the same millisecond.
package refid

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Known prefixes, one per submission flow.
const (
	PrefixRegistration = "REG"
	PrefixDelegate     = "DEL"
	PrefixKrishh       = "KRISHH"
	PrefixFunkie       = "FUNKIE"
	PrefixMerch        = "MERCH"
)

const (
	suffixLen   = 4
	suffixSpace = 36 * 36 * 36 * 36
)

var (
	mu     sync.Mutex
	rng    = rand.New(rand.NewSource(time.Now().UnixNano()))
	lastMs int64
	nextN  int64
)

// New returns "<PREFIX>-<base36 unix millis>-<4 base36 chars>", suffix
// uppercased.
func New(prefix string) string {
	return newAt(prefix, time.Now())
}

func newAt(prefix string, t time.Time) string {
	ms := t.UnixMilli()
	ts := strconv.FormatInt(ms, 36)

	// Suffixes within one millisecond increment from a random start;
	// a fresh millisecond draws a new one.
	mu.Lock()
	if ms != lastMs {
		lastMs = ms
		nextN = rng.Int63n(suffixSpace)
	} else {
		nextN = (nextN + 1) % suffixSpace
	}
	n := nextN
	mu.Unlock()

	suffix := strconv.FormatInt(n, 36)
	for len(suffix) < suffixLen {
		suffix = "0" + suffix
	}

	return fmt.Sprintf("%s-%s-%s", prefix, strings.ToUpper(ts), strings.ToUpper(suffix))
}

// HasPrefix reports whether id carries the given domain prefix.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"-")
}
