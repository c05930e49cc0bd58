/*
Package selector builds CSS selector strings through a fluent API.

A selector is assembled fragment by fragment, in the order CSS prescribes
for a simple selector:

    element, id, class, attribute, pseudo-class, pseudo-element

Construction starts with one of the package-level functions, each of which
seeds a fresh builder with a single fragment. Further fragments chain off
the builder:

    sel := selector.ID("main").Class("container").Class("editable")
    fmt.Println(sel)     // "#main.container.editable"

Two finished selectors may be joined with a combinator:

    selector.Combine(selector.Element("div"), ">", selector.Element("span"))

Builders enforce the fragment order and reject repeated single-occurrence
fragments (element, id, pseudo-element). Violations latch onto the builder
as a usage error, to be inspected with Err.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cssel.selector'.
func tracer() tracing.Trace {
	return tracing.Select("cssel.selector")
}
