package valto

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes carried by every ErrorKind.
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeUnknownKey   = "unknown_key"
	CodeUnknownValue = "unknown_value"
	CodeUnexpected   = "unexpected"
)

// ErrorKind is the closed taxonomy of structured deserialization failures.
// Every failure anywhere in the tree is expressed as one of these kinds and
// routed through an ErrorHandler; no raw error flows upward.
type ErrorKind interface {
	Code() string
	errorKind()
}

// IncorrectKind reports a value of the wrong variant, carrying the actual
// value and the set of acceptable kinds.
type IncorrectKind struct {
	Actual   Value
	Accepted []Kind
}

// MissingField reports a required key absent from a map.
type MissingField struct {
	Field string
}

// UnknownKey reports an unrecognized key under a deny-unknown-fields policy.
type UnknownKey struct {
	Key      string
	Accepted []string
}

// UnknownValue reports an unrecognized discriminant or enum value.
type UnknownValue struct {
	Value    string
	Accepted []string
}

// Unexpected is the escape hatch: numeric-range violations, arity
// mismatches, key-parse failures, and user conversion/validation failures.
type Unexpected struct {
	Msg string
}

func (IncorrectKind) Code() string { return CodeInvalidType }
func (MissingField) Code() string  { return CodeRequired }
func (UnknownKey) Code() string    { return CodeUnknownKey }
func (UnknownValue) Code() string  { return CodeUnknownValue }
func (Unexpected) Code() string    { return CodeUnexpected }

func (IncorrectKind) errorKind() {}
func (MissingField) errorKind()  {}
func (UnknownKey) errorKind()    {}
func (UnknownValue) errorKind()  {}
func (Unexpected) errorKind()    {}

// message is the built-in terse rendering used by Collect and KindError.
// Richer prose lives in the errmsg package.
func message(k ErrorKind) string {
	switch k := k.(type) {
	case IncorrectKind:
		kinds := make([]string, 0, len(k.Accepted))
		for _, a := range k.Accepted {
			kinds = append(kinds, a.String())
		}
		return fmt.Sprintf("invalid type: got %s, expected %s", k.Actual.Kind, strings.Join(kinds, " or "))
	case MissingField:
		return fmt.Sprintf("missing field `%s`", k.Field)
	case UnknownKey:
		return fmt.Sprintf("unknown key `%s`", k.Key)
	case UnknownValue:
		return fmt.Sprintf("unknown value `%s`", k.Value)
	case Unexpected:
		return k.Msg
	default:
		return "deserialization error"
	}
}

// ErrorHandler is the caller-chosen error algebra. NewError constructs an
// error from a structured kind at a location; Merge combines a fresh error
// with the accumulated one. existing is nil when nothing has accumulated
// yet. The second return value signals Break: the caller must stop
// traversing and propagate the returned error as final. When it is false
// (Continue), traversal resumes and the returned error becomes the new
// accumulator.
type ErrorHandler interface {
	NewError(existing error, kind ErrorKind, at Pointer) (error, bool)
	Merge(existing error, other error, at Pointer) (error, bool)
}

// KindError is the bare error produced by the FailFast handler: one kind,
// one owned location, no message formatting beyond the built-in rendering.
type KindError struct {
	Kind     ErrorKind
	Location []Step
}

func (e *KindError) Error() string { return message(e.Kind) }

// failFast stops at the first error and discards any accumulator.
type failFast struct{}

// FailFast returns a handler that terminates deserialization on the first
// failure, yielding a *KindError (or the sub-error itself on Merge).
func FailFast() ErrorHandler { return failFast{} }

func (failFast) NewError(_ error, kind ErrorKind, at Pointer) (error, bool) {
	return &KindError{Kind: kind, Location: at.Path()}, true
}

func (failFast) Merge(_ error, other error, _ Pointer) (error, bool) {
	return other, true
}

// Issue is a single recorded problem: the structured kind plus its owned
// location, with a pre-rendered path and message for convenience.
type Issue struct {
	Path    string // dotted-and-bracketed path, "" at the root
	Code    string
	Message string
	Kind    ErrorKind
	Steps   []Step
}

// Issues is a collection of recorded problems that implements error.
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
		path := it.Path
		if path == "" {
			path = "."
		}
		fmt.Fprintf(b, "%s at %s", it.Code, path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice
// when needed.
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

// IssueAt builds one Issue from a kind at a location, rendering the path and
// the built-in message.
func IssueAt(kind ErrorKind, at Pointer) Issue {
	return Issue{
		Path:    at.String(),
		Code:    kind.Code(),
		Message: message(kind),
		Kind:    kind,
		Steps:   at.Path(),
	}
}

// collect accumulates every problem found across the whole document.
type collect struct{}

// Collect returns a handler that records every failure as an Issue and lets
// traversal continue, so one pass surfaces every independent problem. The
// final error is the accumulated Issues.
func Collect() ErrorHandler { return collect{} }

func (collect) NewError(existing error, kind ErrorKind, at Pointer) (error, bool) {
	iss, _ := AsIssues(existing)
	return AppendIssues(iss, IssueAt(kind, at)), false
}

func (collect) Merge(existing error, other error, at Pointer) (error, bool) {
	iss, _ := AsIssues(existing)
	if more, ok := AsIssues(other); ok {
		return AppendIssues(iss, more...), false
	}
	var ke *KindError
	if errors.As(other, &ke) {
		it := IssueAt(ke.Kind, at)
		it.Steps = ke.Location
		it.Path = renderSteps(ke.Location)
		return AppendIssues(iss, it), false
	}
	// Arbitrary sub-errors (validation hooks, conversions) are recorded as
	// Unexpected at the merge site.
	return AppendIssues(iss, IssueAt(Unexpected{Msg: other.Error()}, at)), false
}
