package selector

import "strings"

// Kind enumerates the fragment kinds of a simple selector. The declaration
// order is the required append order within one builder.
type Kind int8

const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement

	kindCount // must be last
)

var kindNames = [kindCount]string{
	"element",
	"id",
	"class",
	"attribute",
	"pseudo-class",
	"pseudo-element",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "<illegal fragment kind>"
	}
	return kindNames[k]
}

// unique is true for kinds that may occur at most once per selector.
func (k Kind) unique() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

// render writes one fragment of kind k, with the kind's prefix (and suffix,
// for attributes), onto sb.
func (k Kind) render(sb *strings.Builder, text string) {
	switch k {
	case KindElement:
		sb.WriteString(text)
	case KindID:
		sb.WriteByte('#')
		sb.WriteString(text)
	case KindClass:
		sb.WriteByte('.')
		sb.WriteString(text)
	case KindAttribute:
		sb.WriteByte('[')
		sb.WriteString(text)
		sb.WriteByte(']')
	case KindPseudoClass:
		sb.WriteByte(':')
		sb.WriteString(text)
	case KindPseudoElement:
		sb.WriteString("::")
		sb.WriteString(text)
	}
}
