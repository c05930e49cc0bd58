/*
Package seldbg implements helpers to debug built CSS selectors.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seldbg

import (
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cssel/selector"
	tp "github.com/xlab/treeprint"
)

// Dump writes a tree diagram for a built selector. The selector text is
// handed to the cascadia engine; every selector of the resulting group
// becomes a branch, annotated with its specificity and pseudo-element.
// Clients have to provide a Writer.
//
// Dump fails if cascadia cannot parse the rendered text, e.g. for
// pseudo-classes it does not know about.
func Dump(b *selector.Builder, w io.Writer) error {
	sels, err := cascadia.ParseGroup(b.String())
	if err != nil {
		return err
	}
	tree := tp.New()
	tree.SetValue(b.String())
	for _, sel := range sels {
		branch := tree.AddBranch(sel.String())
		spec := sel.Specificity()
		branch.AddNode(fmt.Sprintf("specificity %d-%d-%d", spec[0], spec[1], spec[2]))
		if pe := sel.PseudoElement(); pe != "" {
			branch.AddMetaBranch("pseudo-element", pe)
		}
	}
	_, err = io.WriteString(w, tree.String())
	return err
}
