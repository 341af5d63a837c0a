// Package timestamp implements the UTC instant format used by the catalog API:
// YYYY-MM-DDTHH:MM:SS with an optional fraction of one to six digits and a
// mandatory Z designator.
//
// The number of fractional digits is kept, so formatting a parsed value
// reproduces its input byte for byte.
package timestamp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const layout = "2006-01-02T15:04:05"

var grammar = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2})(?:\.(\d{1,6}))?Z$`)

// ErrFormat is matched by every error returned from Parse.
var ErrFormat = errors.New("timestamp: invalid format")

// FormatError reports text that does not match the accepted grammar.
type FormatError struct {
	Input string
	Err   error // underlying time.Parse error, if the grammar matched
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("timestamp: invalid %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("timestamp: %q does not match YYYY-MM-DDTHH:MM:SS[.ffffff]Z", e.Input)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Timestamp is an immutable UTC instant with microsecond resolution.
type Timestamp struct {
	t    time.Time
	prec int // fractional digits, 0..6
}

// Parse parses text in the accepted grammar.
func Parse(text string) (Timestamp, error) {
	m := grammar.FindStringSubmatch(text)
	if m == nil {
		return Timestamp{}, &FormatError{Input: text}
	}
	base, err := time.ParseInLocation(layout, m[1], time.UTC)
	if err != nil {
		return Timestamp{}, &FormatError{Input: text, Err: err}
	}
	frac := m[2]
	if frac == "" {
		return Timestamp{t: base}, nil
	}
	ns, _ := strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
	return Timestamp{t: base.Add(time.Duration(ns)), prec: len(frac)}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Timestamp {
	ts, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return ts
}

// FromTime converts t to UTC truncated to microseconds. The result formats
// without a fraction for whole seconds and with six digits otherwise.
func FromTime(t time.Time) Timestamp {
	t = t.UTC().Truncate(time.Microsecond)
	if t.Nanosecond() == 0 {
		return Timestamp{t: t}
	}
	return Timestamp{t: t, prec: 6}
}

// Time returns the instant in UTC.
func (ts Timestamp) Time() time.Time { return ts.t }

// Precision returns the number of fractional digits used when formatting.
func (ts Timestamp) Precision() int { return ts.prec }

func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

func (ts Timestamp) Equal(o Timestamp) bool  { return ts.t.Equal(o.t) }
func (ts Timestamp) Before(o Timestamp) bool { return ts.t.Before(o.t) }
func (ts Timestamp) After(o Timestamp) bool  { return ts.t.After(o.t) }

// Format renders the timestamp in the accepted grammar.
func (ts Timestamp) Format() string {
	s := ts.t.UTC().Format(layout)
	if ts.prec > 0 {
		s += "." + fmt.Sprintf("%09d", ts.t.Nanosecond())[:ts.prec]
	}
	return s + "Z"
}

func (ts Timestamp) String() string { return ts.Format() }

func (ts Timestamp) MarshalText() ([]byte, error) { return []byte(ts.Format()), nil }

func (ts *Timestamp) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*ts = v
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) { return json.Marshal(ts.Format()) }

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return ts.UnmarshalText([]byte(s))
}
