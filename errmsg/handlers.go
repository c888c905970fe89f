package errmsg

import (
	"errors"
	"strconv"
	"strings"

	"github.com/valtoio/valto"
)

// Error is a fully rendered failure message.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }

type render func(valto.ErrorKind, []valto.Step) string

// failFast renders the first failure and stops, like valto.FailFast but
// with prose output.
type failFast struct{ render render }

func (h failFast) NewError(_ error, kind valto.ErrorKind, at valto.Pointer) (error, bool) {
	return &Error{Msg: h.render(kind, at.Path())}, true
}

func (h failFast) Merge(_ error, other error, at valto.Pointer) (error, bool) {
	var e *Error
	if errors.As(other, &e) {
		return e, true
	}
	var ke *valto.KindError
	if errors.As(other, &ke) {
		return &Error{Msg: h.render(ke.Kind, ke.Location)}, true
	}
	return &Error{Msg: h.render(valto.Unexpected{Msg: other.Error()}, at.Path())}, true
}

// JSON returns a fail-fast handler whose error is a single rendered
// JSON-flavor message.
func JSON() valto.ErrorHandler { return failFast{render: MessageJSON} }

// Query returns a fail-fast handler whose error is a single rendered
// query-parameter-flavor message.
func Query() valto.ErrorHandler { return failFast{render: MessageQuery} }

// collecting accumulates valto.Issues whose messages use this package's
// rendering instead of the core's terse one.
type collecting struct{ render render }

func pathString(steps []valto.Step) string {
	b := &strings.Builder{}
	for _, s := range steps {
		if s.Kind == valto.StepKey {
			b.WriteByte('.')
			b.WriteString(s.Key)
		} else {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
		}
	}
	return b.String()
}

func (h collecting) issue(kind valto.ErrorKind, steps []valto.Step) valto.Issue {
	return valto.Issue{
		Path:    pathString(steps),
		Code:    kind.Code(),
		Message: h.render(kind, steps),
		Kind:    kind,
		Steps:   steps,
	}
}

func (h collecting) NewError(existing error, kind valto.ErrorKind, at valto.Pointer) (error, bool) {
	iss, _ := valto.AsIssues(existing)
	return valto.AppendIssues(iss, h.issue(kind, at.Path())), false
}

func (h collecting) Merge(existing error, other error, at valto.Pointer) (error, bool) {
	iss, _ := valto.AsIssues(existing)
	if more, ok := valto.AsIssues(other); ok {
		return valto.AppendIssues(iss, more...), false
	}
	var ke *valto.KindError
	if errors.As(other, &ke) {
		return valto.AppendIssues(iss, h.issue(ke.Kind, ke.Location)), false
	}
	return valto.AppendIssues(iss, h.issue(valto.Unexpected{Msg: other.Error()}, at.Path())), false
}

// CollectJSON returns an accumulating handler that renders every issue
// message in the JSON flavor.
func CollectJSON() valto.ErrorHandler { return collecting{render: MessageJSON} }

// CollectQuery returns an accumulating handler that renders every issue
// message in the query-parameter flavor.
func CollectQuery() valto.ErrorHandler { return collecting{render: MessageQuery} }
