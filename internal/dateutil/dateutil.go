// Package dateutil resolves the generation date written into bookmark files.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an unusable "auto:FORMAT" value.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength caps the FORMAT part of "auto:FORMAT".
const MaxFormatLength = 50

// Auto is the value asking for the run date.
const Auto = "auto"

// ISOFormat is the format behind plain "auto".
const ISOFormat = "YYYY-MM-DD"

// Presets are named formats accepted after "auto:" (case-insensitive).
var Presets = map[string]string{
	"iso":      ISOFormat,
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// tokens maps format tokens to Go layout elements, longest first so that
// "MMMM" is never read as two "MM".
var tokens = [...]struct{ token, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Format renders t with a format such as "DD/MM/YYYY". Only tokens are
// formatted; text inside [brackets] and any other character are written
// as is, so "[Week 1]" never reaches the time layout parser.
func Format(format string, t time.Time) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: empty format", ErrInvalidDateFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format longer than %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			literal, after, ok := strings.Cut(rest[1:], "]")
			if !ok {
				return "", fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidDateFormat, format)
			}
			b.WriteString(literal)
			rest = after
			continue
		}
		rest = writeToken(&b, rest, t)
	}
	return b.String(), nil
}

// writeToken writes t formatted by the token rest starts with, or the first
// byte of rest, and returns what is left.
func writeToken(b *strings.Builder, rest string, t time.Time) string {
	for _, tok := range tokens {
		if strings.HasPrefix(rest, tok.token) {
			b.WriteString(t.Format(tok.layout))
			return rest[len(tok.token):]
		}
	}
	b.WriteByte(rest[0])
	return rest[1:]
}

// Resolve returns the date to print for value:
//   - "auto" gives now as YYYY-MM-DD
//   - "auto:FORMAT" gives now in FORMAT, or in a named preset
//   - anything else, including "", is returned unchanged
func Resolve(value string, now time.Time) (string, error) {
	prefix, format, hasFormat := strings.Cut(value, ":")
	if !strings.EqualFold(prefix, Auto) {
		return value, nil
	}
	if !hasFormat {
		format = ISOFormat
	} else if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}

	return Format(format, now)
}
