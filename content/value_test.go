package content_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/satz/content"
)

func TestValueMatch(t *testing.T) {
	var (
		b bool
		i int64
		s string
	)
	switch m := content.Int(42).Match(); m {
	case m.Bool(&b):
		t.Error("expected integer value not to match boolean, did")
	case m.Int(&i):
		t.Logf("matched integer %d", i)
	case m.Str(&s):
		t.Error("expected integer value not to match string, did")
	}
	if i != 42 {
		t.Errorf("expected matcher to extract 42, got %d", i)
	}
	switch m := content.None().Match(); m {
	case m.None():
	default:
		t.Error("expected zero value to match None, didn't")
	}
}

func TestValueTypeNames(t *testing.T) {
	values := []content.Value{
		content.None(), content.Bool(true), content.Int(1), content.Str("x"),
	}
	names := []string{"none", "boolean", "integer", "string"}
	for i, v := range values {
		if v.TypeName() != names[i] {
			t.Errorf("expected type name %q, got %q", names[i], v.TypeName())
		}
	}
}

func TestCasterFirstShapeWins(t *testing.T) {
	// a target accepting either a string or an integer (as its decimal form)
	either := content.NewCaster("string or integer",
		func(v content.Value) (string, bool) {
			var s string
			switch m := v.Match(); m {
			case m.Str(&s):
				return s, true
			}
			return "", false
		},
		func(v content.Value) (string, bool) {
			var i int64
			switch m := v.Match(); m {
			case m.Int(&i):
				return content.Int(i).String(), true
			}
			return "", false
		},
	)
	s, err := either.Cast(content.At(content.Int(7), content.Span{}))
	if err != nil || s != "7" {
		t.Errorf("expected second shape to admit integer, got %q / %v", s, err)
	}
	s, err = either.Cast(content.At(content.Str("x"), content.Span{}))
	if err != nil || s != "x" {
		t.Errorf("expected first shape to admit string, got %q / %v", s, err)
	}
}

func TestCasterMismatch(t *testing.T) {
	arg := content.At(content.Str("yes"), content.Span{Start: 3, End: 8})
	_, err := content.CastBool.Cast(arg)
	var typeErr *content.TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected a *TypeError, got %v", err)
	}
	if typeErr.Expected != "boolean" || typeErr.Actual != "string" {
		t.Errorf("expected 'boolean'/'string' mismatch, got %v", typeErr)
	}
	if typeErr.Span.Start != 3 {
		t.Errorf("expected error span to start at 3, is %d", typeErr.Span.Start)
	}
	// coercion never guesses: "yes" is not a boolean
	if err.Error() != "expected boolean, found string" {
		t.Errorf("unexpected error message %q", err.Error())
	}
}
