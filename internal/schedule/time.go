// Package schedule is the build-schedule engine: it derives per-step active
// windows from a validated document and computes, for an arbitrary elapsed
// time, which steps are done, active, or upcoming. Projection is a pure
// function of (document, elapsed seconds); the surrounding TUI calls it once
// per clock tick.
package schedule

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseTime converts a "minutes:seconds" timestamp into elapsed seconds.
//
// The coercion rules are deliberately permissive to match the documents in
// the wild: text without a separator (or empty text) parses to 0; the first
// two ":"-separated fields coerce independently to numbers, with a
// non-numeric field coercing to 0 and any trailing fields ignored. Seconds
// are not bounded to <60 and are not renormalized; negative and fractional
// components pass through arithmetic as-is.
func ParseTime(s string) float64 {
	mm, rest, found := strings.Cut(s, ":")
	if !found {
		return 0
	}
	ss, _, _ := strings.Cut(rest, ":")
	return coerce(mm)*60 + coerce(ss)
}

func coerce(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatElapsed renders elapsed seconds as game-clock "m:ss" text.
// Fractional seconds truncate; negative values clamp to 0:00.
func FormatElapsed(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
