// Package format holds render-time helpers. Monetary amounts stay integer
// minor units everywhere else; division by 100 happens only here.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Price formats minor units as a dollar amount: Price(12345) => "$123.45".
func Price(minor int64) string {
	neg := minor < 0
	if neg {
		minor = -minor
	}
	major := minor / 100
	cents := minor % 100
	out := "$" + thousandSep(major) + fmt.Sprintf(".%02d", cents)
	if neg {
		return "-" + out
	}
	return out
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	return out
}

// EpochMillis converts the API's millisecond timestamps.
func EpochMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// Date formats a timestamp in the storefront's short form.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// DateMillis formats an epoch-millisecond timestamp.
func DateMillis(ms int64) string {
	return Date(EpochMillis(ms))
}

// Pluralize returns singular for count 1, plural otherwise.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// TrimJoin joins non-empty parts with a separator.
func TrimJoin(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
