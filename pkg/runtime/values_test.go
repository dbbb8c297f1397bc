package runtime

import "testing"

func TestTagNames(t *testing.T) {
	cases := map[Tag]string{
		TagVoid:    "void",
		TagNull:    "null",
		TagBoolean: "boolean",
		TagNumber:  "number",
		TagString:  "string",
		TagObject:  "object",
		TagArray:   "array",
		Tag(7):     "unknown",
		Tag(255):   "unknown",
	}
	for tag, want := range cases {
		if got := tag.String(); got != want {
			t.Fatalf("Tag(%d).String() = %q, want %q", tag, got, want)
		}
	}
}

func TestConstructorsSetTags(t *testing.T) {
	cases := []struct {
		name string
		val  Value
		tag  Tag
	}{
		{"void", Void(), TagVoid},
		{"null", Null(), TagNull},
		{"bool", Bool(true), TagBoolean},
		{"boolean", Boolean(3), TagBoolean},
		{"number", Number(1.5), TagNumber},
		{"string", NewString("hi"), TagString},
		{"object", NewObject(), TagObject},
		{"array", NewArray(), TagArray},
	}
	for _, tc := range cases {
		if tc.val.Tag() != tc.tag {
			t.Fatalf("%s: tag = %s, want %s", tc.name, tc.val.Tag(), tc.tag)
		}
	}
}

func TestBooleanEncoding(t *testing.T) {
	if Bool(true).Float() != 1 || Bool(false).Float() != 0 {
		t.Fatalf("canonical boolean payloads should be 1.0 and 0.0")
	}
	if !Boolean(3).Truth() {
		t.Fatalf("nonzero payload should read as true")
	}
	if Boolean(0).Truth() {
		t.Fatalf("zero payload should read as false")
	}
}

func TestAccessorsIgnoreOtherTags(t *testing.T) {
	if NewString("x").Float() != 0 {
		t.Fatalf("Float() on a string should be zero")
	}
	if Number(1).Truth() {
		t.Fatalf("Truth() on a number should be false")
	}
	if Number(1).Str() != "" {
		t.Fatalf("Str() on a number should be empty")
	}
	if NewString("x").Composite() != nil {
		t.Fatalf("Composite() on a string should be nil")
	}
	if NewArray().Composite() == nil {
		t.Fatalf("Composite() on an array should not be nil")
	}
}

func TestNewStringStopsAtTerminator(t *testing.T) {
	v := NewString("ab\x00cd")
	if v.Str() != "ab" {
		t.Fatalf("Str() = %q, want %q", v.Str(), "ab")
	}
	if got := Length(v).Float(); got != 2 {
		t.Fatalf("Length = %v, want 2", got)
	}
}

func TestNewStringAllocatesDistinctBuffers(t *testing.T) {
	a, b := NewString("a"), NewString("a")
	if a.str == b.str {
		t.Fatalf("expected distinct buffers")
	}
}
