// Package conv holds the attribute-value conversions shared by the raw
// loaders: OOXML serializes booleans as "0"/"1"/"true"/"false", angles in
// 60000ths of a degree, percentages in 1000ths of a percent, and lengths in
// EMUs. Parsers return (value, ok) pairs; an unparseable attribute is treated
// as absent, never as an error.
package conv

import (
	"strconv"
	"strings"
	"time"
)

// Bool parses an OOXML boolean attribute. Accepts "1"/"true" and "0"/"false".
func Bool(s string) (bool, bool) {
	switch s {
	case "1", "true":
		return true, true
	case "0", "false":
		return false, true
	}
	return false, false
}

// Uint parses an unsigned decimal attribute.
func Uint(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Int parses a signed decimal attribute. Percentage-suffixed forms
// ("12.5%") are accepted and converted to 1000ths of a percent, matching the
// two encodings OOXML producers emit for ST_Percentage.
func Int(s string) (int64, bool) {
	if strings.HasSuffix(s, "%") {
		return percentString(strings.TrimSuffix(s, "%"))
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func percentString(s string) (int64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int64(f * 1000.0), true
}

// Float parses a floating point attribute using locale-free decimal syntax.
func Float(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Datetime parses the two datetime shapes OOXML uses: RFC 3339 with a zone,
// or a bare "2006-01-02T15:04:05" local timestamp.
func Datetime(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// English Metric Units: 914400 per inch, 12700 per point.
const emuPerPoint = 12700.0

// EMUToPoints converts an EMU length to typographic points.
func EMUToPoints(emu int64) float64 {
	return float64(emu) / emuPerPoint
}

// AngleToDegrees converts an ST_Angle (60000ths of a degree) to degrees.
// 5400000 is 90 degrees.
func AngleToDegrees(angle int64) float64 {
	return float64(angle) / 60000.0
}

// PercentToFloat converts an ST_Percentage (1000ths of a percent) to a
// fraction. 56000 is 0.56.
func PercentToFloat(pct int64) float64 {
	return float64(pct) / 1000.0 / 100.0
}

// TextPointToPoints converts an ST_TextPoint (hundredths of a point) to
// points. 100 is 1pt.
func TextPointToPoints(tp int64) float64 {
	return float64(tp) / 100.0
}
