package selector

// Construction entry points. Each seeds a fresh builder with exactly one
// fragment; builders are never empty.

// Element starts a selector with a type fragment, e.g. Element("div").
func Element(name string) *Builder {
	return seed(KindElement, name)
}

// ID starts a selector with an id fragment, e.g. ID("main") → "#main".
func ID(id string) *Builder {
	return seed(KindID, id)
}

// Class starts a selector with a class fragment.
func Class(name string) *Builder {
	return seed(KindClass, name)
}

// Attribute starts a selector with an attribute fragment.
func Attribute(expr string) *Builder {
	return seed(KindAttribute, expr)
}

// PseudoClass starts a selector with a pseudo-class fragment.
func PseudoClass(name string) *Builder {
	return seed(KindPseudoClass, name)
}

// PseudoElement starts a selector with a pseudo-element fragment.
func PseudoElement(name string) *Builder {
	return seed(KindPseudoElement, name)
}

// Combine joins right onto left with a combinator symbol and returns the
// (mutated) left builder. See Builder.Combine.
func Combine(left *Builder, comb string, right *Builder) *Builder {
	return left.Combine(comb, right)
}

func seed(k Kind, text string) *Builder {
	b := &Builder{}
	return b.append(k, text)
}
