package content

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/binary"
	"io"

	"github.com/zeebo/blake3"
)

// Hash returns a structural digest of a content value, covering the element
// kind, its field data, attached style scopes and label. Equal content
// values hash identically; the digest makes content usable as a map key
// (via its hex form) and for cheap subtree comparison.
func (c Content) Hash() [32]byte {
	h := blake3.New()
	hashContent(h, c)
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// Every variable-size part of the encoding is length-prefixed, so strings
// containing separator bytes cannot collide with adjacent entries.
func hashContent(h *blake3.Hasher, c Content) {
	hashString(h, c.Kind())
	if c.node != nil {
		for _, name := range c.node.Fields() {
			var v Value
			switch m := c.node.Field(name).Match(); m {
			case m.Just(&v):
				io.WriteString(h, "\x00")
				hashString(h, name)
				hashValue(h, v)
			}
		}
	}
	for _, scope := range c.scopes {
		for _, a := range scope {
			io.WriteString(h, "\x01")
			hashString(h, a.String())
		}
	}
	if c.label != "" {
		io.WriteString(h, "\x02")
		hashString(h, c.label)
	}
	io.WriteString(h, "\x03") // end of content, keeps nesting unambiguous
}

func hashValue(h *blake3.Hasher, v Value) {
	var (
		b   bool
		i   int64
		s   string
		sub Content
	)
	switch m := v.Match(); m {
	case m.Bool(&b):
		if b {
			io.WriteString(h, "b1")
		} else {
			io.WriteString(h, "b0")
		}
	case m.Int(&i):
		io.WriteString(h, "i")
		binary.Write(h, binary.LittleEndian, i)
	case m.Str(&s):
		io.WriteString(h, "s")
		hashString(h, s)
	case m.Content(&sub):
		io.WriteString(h, "c")
		hashContent(h, sub)
	default:
		io.WriteString(h, "n")
	}
}

func hashString(h *blake3.Hasher, s string) {
	binary.Write(h, binary.LittleEndian, int64(len(s)))
	io.WriteString(h, s)
}
