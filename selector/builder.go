package selector

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateFragment is thrown if a second fragment of a single-occurrence
// kind (element, id, pseudo-element) is appended to the same builder.
var ErrDuplicateFragment = errors.New("duplicate fragment of single-occurrence kind")

// ErrOutOfOrder is thrown if an appended fragment violates the fixed kind
// order element → id → class → attribute → pseudo-class → pseudo-element.
var ErrOutOfOrder = errors.New("fragment violates fixed selector order")

// Builder accumulates selector fragments and renders them to text. Builders
// are created by one of the package-level construction functions and hold at
// least one fragment from the start; the zero value is not used by clients.
//
// All append methods return the receiver, so calls chain. Builders are not
// safe for concurrent use; each instance belongs to the caller holding it.
type Builder struct {
	text   strings.Builder
	counts [kindCount]int
	err    error
}

// append checks ordering and occurrence constraints for a fragment of kind k,
// then renders it. The first violation latches as the builder's error; from
// then on every append is a no-op.
func (b *Builder) append(k Kind, text string) *Builder {
	if b.err != nil {
		return b
	}
	if k.unique() && b.counts[k] > 0 {
		b.err = fmt.Errorf("%w: %s", ErrDuplicateFragment, k)
		return b
	}
	for later := k + 1; later < kindCount; later++ {
		if b.counts[later] > 0 {
			b.err = fmt.Errorf("%w: %s after %s", ErrOutOfOrder, k, later)
			return b
		}
	}
	tracer().Debugf("selector += %s fragment %q", k, text)
	k.render(&b.text, text)
	b.counts[k]++
	return b
}

// Element appends a type selector fragment, rendered verbatim.
func (b *Builder) Element(name string) *Builder {
	return b.append(KindElement, name)
}

// ID appends an id fragment, rendered as '#' + id.
func (b *Builder) ID(id string) *Builder {
	return b.append(KindID, id)
}

// Class appends a class fragment, rendered as '.' + name. Classes may repeat.
func (b *Builder) Class(name string) *Builder {
	return b.append(KindClass, name)
}

// Attribute appends an attribute fragment, rendered as '[' + expr + ']'.
// expr is taken verbatim, e.g. `href$=".png"`. Attributes may repeat.
func (b *Builder) Attribute(expr string) *Builder {
	return b.append(KindAttribute, expr)
}

// PseudoClass appends a pseudo-class fragment, rendered as ':' + name.
// Pseudo-classes may repeat.
func (b *Builder) PseudoClass(name string) *Builder {
	return b.append(KindPseudoClass, name)
}

// PseudoElement appends a pseudo-element fragment, rendered as '::' + name.
func (b *Builder) PseudoElement(name string) *Builder {
	return b.append(KindPseudoElement, name)
}

// Combine joins other onto b with a combinator symbol, one of " ", "+", "~"
// or ">" (not validated further). The rendered form is
//
//     left SPACE comb SPACE right
//
// with the combinator symbol passed through literally, i.e. a space
// combinator ends up with a space on either side of it. Combining ignores
// occurrence counts entirely: fragment appends after a Combine are checked
// only against what was appended to b itself.
//
// The right operand is only read, never taken over; the caller may keep
// mutating it afterwards.
func (b *Builder) Combine(comb string, other *Builder) *Builder {
	if b.err != nil {
		return b
	}
	tracer().Debugf("combining %q %s %q", b, comb, other)
	b.text.WriteByte(' ')
	b.text.WriteString(comb)
	b.text.WriteByte(' ')
	b.text.WriteString(other.String())
	return b
}

// String returns the selector text accumulated so far. It does not mutate
// the builder and may be called any number of times; appending further
// fragments afterwards stays legal.
func (b *Builder) String() string {
	return b.text.String()
}

// Err returns the first constraint violation hit by an append call, wrapping
// ErrDuplicateFragment or ErrOutOfOrder, or nil. The offending fragment is
// not rendered, and once an error is latched all further appends no-op.
func (b *Builder) Err() error {
	return b.err
}
