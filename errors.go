package catalogmodel

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	// Warning-only code; never carried by an Issue.
	CodeUnknownAttribute = "unknown_attribute"
)

// Sentinel causes attached to issues; match them with errors.Is on the
// returned error.
var (
	ErrMissingField = errors.New("catalogmodel: missing required field")
	ErrUnknownKey   = errors.New("catalogmodel: unknown key")
	ErrInvalidType  = errors.New("catalogmodel: invalid type")
)

// Issue represents a single construction failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /album/tracks/items/2/name).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected type, schema name, etc.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of construction errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /album
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Hint != "" {
			fmt.Fprintf(b, " (%s)", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes every non-nil cause to errors.Is and errors.As.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// issuesFromErr converts an error into Issues, wrapping non-Issues with
// CodeParseError at path.
func issuesFromErr(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if i2, ok := AsIssues(err); ok {
		return i2
	}
	return Issues{{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err}}
}
