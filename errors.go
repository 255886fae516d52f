package stacskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeUnknownKey           = "unknown_key"
	CodeDuplicateKey         = "duplicate_key"
	CodeTooShort             = "too_short"
	CodeTooLong              = "too_long"
	CodeInvalidEnum          = "invalid_enum"
	CodeInvalidLiteral       = "invalid_literal"
	CodeLengthMismatch       = "length_mismatch"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeParseError           = "parse_error"
	CodeTruncated            = "truncated"
	// GeoJSON well-formedness (unclosed ring, too few positions)
	CodeInvalidGeometry = "invalid_geometry"
	// Both the plain and the aliased name of one field were supplied.
	CodeConflict = "conflict"
)

// ErrNilSchema is returned by ParseFrom when called without a schema.
var ErrNilSchema = errors.New("stacskema: nil schema")

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /features/2/geometry/coordinates).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, accepted values, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"got":"icon","accepted":[...]})
	// for i18n and reporting.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Has reports whether any issue carries the given code.
func (iss Issues) Has(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// At returns the issues whose path equals p or lies below it.
func (iss Issues) At(p string) Issues {
	var out Issues
	for _, it := range iss {
		if it.Path == p || strings.HasPrefix(it.Path, strings.TrimSuffix(p, "/")+"/") {
			out = append(out, it)
		}
	}
	return out
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

// Rebase prefixes every issue path with base. Child schemas report paths
// relative to their own root ("/" or "/0/1"); parents rebase them under the
// field or index that holds the child.
func Rebase(base string, child Issues) Issues {
	if base == "" || base == "/" {
		return child
	}
	out := make(Issues, 0, len(child))
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// IssuesFromErr converts an error into Issues at path, wrapping non-Issues
// errors with CodeParseError.
func IssuesFromErr(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{Issue{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err}}
}
