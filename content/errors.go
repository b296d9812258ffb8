package content

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// ArgumentError reports a constructor argument problem: a required
// parameter that was not supplied, a named argument the element kind does
// not declare, or a surplus positional argument (Unknown with empty Name).
type ArgumentError struct {
	Name    string
	Unknown bool // argument not declared by the kind
	Span    Span
}

func (e *ArgumentError) Error() string {
	switch {
	case e.Unknown && e.Name == "":
		return "too many positional arguments"
	case e.Unknown:
		return fmt.Sprintf("unexpected argument: %s", e.Name)
	}
	return fmt.Sprintf("missing argument: %s", e.Name)
}

// TypeError reports that a supplied value's dynamic type matches none of
// the admissible shapes of the target type.
type TypeError struct {
	Expected string
	Actual   string
	Span     Span
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Actual)
}
