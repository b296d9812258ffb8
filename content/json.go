package content

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON encodes the content tree, including attached style scopes and
// labels, for debugging and external tooling. The encoding is one-way; it
// is not meant to round-trip.
func (c Content) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonContent(c))
}

type contentJSON struct {
	Kind   string         `json:"kind"`
	Fields map[string]any `json:"fields,omitempty"`
	Styles []string       `json:"styles,omitempty"`
	Label  string         `json:"label,omitempty"`
}

func jsonContent(c Content) contentJSON {
	enc := contentJSON{Kind: c.Kind(), Label: c.label}
	if c.node != nil {
		for _, name := range c.node.Fields() {
			var v Value
			switch m := c.node.Field(name).Match(); m {
			case m.Just(&v):
				if enc.Fields == nil {
					enc.Fields = make(map[string]any)
				}
				enc.Fields[name] = jsonValue(v)
			}
		}
	}
	for _, scope := range c.scopes {
		for _, a := range scope {
			enc.Styles = append(enc.Styles, a.String())
		}
	}
	return enc
}

func jsonValue(v Value) any {
	var (
		b   bool
		i   int64
		s   string
		sub Content
	)
	switch m := v.Match(); m {
	case m.Bool(&b):
		return b
	case m.Int(&i):
		return i
	case m.Str(&s):
		return s
	case m.Content(&sub):
		return jsonContent(sub)
	}
	return nil
}
