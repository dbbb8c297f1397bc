package runtime

import (
	"bytes"
	"math"
	"testing"
)

func render(t *testing.T, v Value) string {
	t.Helper()
	var buf bytes.Buffer
	n := Fprint(&buf, v)
	if n != buf.Len() {
		t.Fatalf("Fprint returned %d, wrote %d bytes", n, buf.Len())
	}
	return buf.String()
}

func TestPrintScalars(t *testing.T) {
	cases := []struct {
		name string
		val  Value
		want string
	}{
		{"void", Void(), ""},
		{"null", Null(), "null"},
		{"true", Bool(true), "true"},
		{"nonzero boolean", Boolean(-4), "true"},
		{"false", Bool(false), "false"},
		{"integer", Number(42), "42"},
		{"negative integer", Number(-7), "-7"},
		{"negative zero", Number(math.Copysign(0, -1)), "0"},
		{"large integer", Number(1e20), "100000000000000000000"},
		{"fraction", Number(2.5), "2.500000"},
		{"small fraction", Number(-0.125), "-0.125000"},
		{"infinity", Number(math.Inf(1)), "inf"},
		{"negative infinity", Number(math.Inf(-1)), "-inf"},
		{"nan", Number(math.NaN()), "nan"},
		{"string", NewString(`say "hi"`), `say "hi"`},
	}
	for _, tc := range cases {
		if got := render(t, tc.val); got != tc.want {
			t.Fatalf("%s: printed %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPrintSparseArray(t *testing.T) {
	arr := NewArray()
	SetValue(arr, Number(0), NewString("x"))
	SetValue(arr, Number(2), NewString("y"))
	if got := render(t, arr); got != "[ 0: x, 2: y ]" {
		t.Fatalf("printed %q", got)
	}
}

func TestPrintNestedComposites(t *testing.T) {
	inner := NewArray()
	SetValue(inner, Number(1), Number(1.5))
	obj := NewObject()
	SetValue(obj, Number(3), inner)
	SetValue(obj, Number(1), Bool(false))
	SetValue(obj, Number(3), inner)
	if got := render(t, obj); got != "{ 3: [ 1: 1.500000 ], 1: false }" {
		t.Fatalf("printed %q", got)
	}
}

func TestPrintEmptyComposites(t *testing.T) {
	if got := render(t, NewObject()); got != "{  }" {
		t.Fatalf("printed %q", got)
	}
	if got := render(t, NewArray()); got != "[  ]" {
		t.Fatalf("printed %q", got)
	}
}

func TestPrintUnknownTagIsBug(t *testing.T) {
	fatal := expectFatal(t, ErrBug, func() { Fprint(&bytes.Buffer{}, Value{tag: 9}) })
	if fatal.Message != "unknown type code: 9" {
		t.Fatalf("Message = %q", fatal.Message)
	}
}
