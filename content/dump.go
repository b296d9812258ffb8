package content

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	tp "github.com/xlab/treeprint"
)

// Dump returns a tree-shaped textual rendering of a content value,
// including attached style scopes; used in test logs and for debugging.
func Dump(c Content) string {
	tree := tp.New()
	dump(tree, "", c)
	return tree.String()
}

func dump(branch tp.Tree, prefix string, c Content) {
	label := c.Kind()
	if prefix != "" {
		label = prefix + ": " + label
	}
	if c.label != "" {
		label += " <" + c.label + ">"
	}
	b := branch.AddBranch(label)
	for _, scope := range c.scopes {
		b.AddNode("style " + scope.String())
	}
	if c.node == nil {
		return
	}
	for _, name := range c.node.Fields() {
		var v Value
		switch m := c.node.Field(name).Match(); m {
		case m.Just(&v):
			var sub Content
			switch mm := v.Match(); mm {
			case mm.Content(&sub):
				dump(b, name, sub)
			default:
				b.AddNode(name + " = " + v.String())
			}
		}
	}
}
