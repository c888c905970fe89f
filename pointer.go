package valto

import (
	"strconv"
	"strings"
)

// StepKind discriminates the two ways a Pointer descends into a value.
type StepKind int

const (
	StepKey StepKind = iota
	StepIndex
)

// Step is one owned component of a materialized path, root to leaf.
type Step struct {
	Kind  StepKind
	Key   string // set when Kind == StepKey
	Index int    // set when Kind == StepIndex
}

// Pointer locates a sub-value within a value tree: a chain of key/index
// steps from the root. Extending a Pointer never mutates it; Key and Index
// return a new leaf referencing the receiver, so a parent frame's Pointer
// stays valid while child frames carry longer ones. Store Path() rather than
// the Pointer itself when a location must outlive the deserialization call.
type Pointer struct {
	kind  StepKind
	key   string
	index int
	prev  *Pointer
}

// Root is the origin pointer. The zero Pointer is equivalent.
var Root = Pointer{}

// Key extends the pointer with a map-key step.
func (p Pointer) Key(key string) Pointer {
	prev := p
	return Pointer{kind: StepKey, key: key, prev: &prev}
}

// Index extends the pointer with a sequence-index step.
func (p Pointer) Index(i int) Pointer {
	prev := p
	return Pointer{kind: StepIndex, index: i, prev: &prev}
}

// IsRoot reports whether the pointer is at the origin.
func (p Pointer) IsRoot() bool { return p.prev == nil }

// LastField returns the most recent key step, skipping over index steps.
// It reports false at the origin or when no key step exists.
func (p Pointer) LastField() (string, bool) {
	for cur := &p; cur.prev != nil; cur = cur.prev {
		if cur.kind == StepKey {
			return cur.key, true
		}
	}
	return "", false
}

// Path materializes the chain into owned steps ordered root to leaf.
func (p Pointer) Path() []Step {
	var rev []Step
	for cur := &p; cur.prev != nil; cur = cur.prev {
		if cur.kind == StepKey {
			rev = append(rev, Step{Kind: StepKey, Key: cur.key})
		} else {
			rev = append(rev, Step{Kind: StepIndex, Index: cur.index})
		}
	}
	steps := make([]Step, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		steps = append(steps, rev[i])
	}
	return steps
}

// String renders the pointer in dotted-and-bracketed form, e.g. ".a[2].b".
// The origin renders as the empty string. Renderers with other conventions
// walk Path() themselves.
func (p Pointer) String() string { return renderSteps(p.Path()) }

func renderSteps(steps []Step) string {
	if len(steps) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for _, s := range steps {
		if s.Kind == StepKey {
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
