package value

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	_ = v
}

func sampleStructure() *Value {
	inner, _ := NewMapChecked([]Pair{
		{NewString("x"), NewInt(1)},
		{NewString("y"), NewBool(true)},
	})
	return NewArray([]*Value{
		NewString("hi"),
		NewInt(42),
		inner,
		NewArray(nil),
	})
}

func TestToStringDelimitersAndQuoting(t *testing.T) {
	snaps.MatchSnapshot(t, ToString(sampleStructure()))
}

func TestToStringBareStringNotQuoted(t *testing.T) {
	if ToString(NewString(`has "quotes"`)) != `has "quotes"` {
		t.Fatal("a top-level String must not be quoted")
	}
}

func TestToStringNestedStringIsQuotedAndEscaped(t *testing.T) {
	arr := NewArray([]*Value{NewString("a\n\t\"\\b")})
	got := ToString(arr)
	want := `[ "a\n\t\"\\b" ]`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestToPrettyStringEmptyStructuresAreSingleToken(t *testing.T) {
	if ToPrettyString(NewArray(nil)) != "[]" {
		t.Fatal("empty array must render as []")
	}
	if ToPrettyString(NewMap(nil)) != "{}" {
		t.Fatal("empty map must render as {}")
	}
}

func TestToPrettyStringIndentsNesting(t *testing.T) {
	snaps.MatchSnapshot(t, ToPrettyString(sampleStructure()))
}

func TestToStringFunction(t *testing.T) {
	b := NewBuiltin("f", 0, MaxOf(0), func(args []*Value) (*Value, error) { return Null(), nil })
	if ToString(NewFunction(b)) != "<Function>" {
		t.Fatal("function values must render as <Function>")
	}
}
