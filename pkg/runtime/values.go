package runtime

import (
	"strings"
)

// Tag identifies which of the seven value kinds a Value holds.
type Tag uint8

const (
	TagVoid Tag = iota
	TagNull
	TagBoolean
	TagNumber
	TagString
	TagObject
	TagArray
)

func (t Tag) String() string {
	switch t {
	case TagVoid:
		return "void"
	case TagNull:
		return "null"
	case TagBoolean:
		return "boolean"
	case TagNumber:
		return "number"
	case TagString:
		return "string"
	case TagObject:
		return "object"
	case TagArray:
		return "array"
	default:
		return "unknown"
	}
}

// IsComposite reports whether values of this tag are backed by a Composite.
func (t Tag) IsComposite() bool {
	return t == TagObject || t == TagArray
}

// Value is the universal currency passed between compiled code, the
// operators and the host. The tag decides which payload arm is live.
type Value struct {
	tag  Tag
	num  float64
	str  *String
	comp *Composite
}

// String is a heap-owned character buffer. Two Values referring to the same
// *String are identical; equal contents in distinct buffers are not.
type String struct {
	data string
}

//-----------------------------------------------------------------------------
// Constructors
//-----------------------------------------------------------------------------

func Void() Value { return Value{tag: TagVoid} }

func Null() Value { return Value{tag: TagNull} }

// Bool returns a Boolean carrying the canonical 1.0/0.0 encoding.
func Bool(b bool) Value {
	if b {
		return Value{tag: TagBoolean, num: 1}
	}
	return Value{tag: TagBoolean, num: 0}
}

// Boolean wraps a raw truthiness payload. Any nonzero payload reads as true.
func Boolean(payload float64) Value {
	return Value{tag: TagBoolean, num: payload}
}

func Number(f float64) Value { return Value{tag: TagNumber, num: f} }

// NewString allocates a fresh buffer holding s up to its first NUL byte.
func NewString(s string) Value {
	if idx := strings.IndexByte(s, 0); idx >= 0 {
		s = s[:idx]
	}
	return Value{tag: TagString, str: &String{data: s}}
}

//-----------------------------------------------------------------------------
// Accessors
//-----------------------------------------------------------------------------

func (v Value) Tag() Tag { return v.tag }

// Float returns the numeric payload of a Number or Boolean, zero otherwise.
func (v Value) Float() float64 {
	if v.tag == TagNumber || v.tag == TagBoolean {
		return v.num
	}
	return 0
}

// Truth reports the truthiness of a Boolean payload.
func (v Value) Truth() bool {
	return v.tag == TagBoolean && v.num != 0
}

// Str returns the characters of a String value, "" for other tags.
func (v Value) Str() string {
	if v.tag != TagString || v.str == nil {
		return ""
	}
	return v.str.data
}

// Composite returns the store behind an Object or Array value.
func (v Value) Composite() *Composite {
	if !v.tag.IsComposite() {
		return nil
	}
	return v.comp
}

// identity compares the live payload arm bit for bit (pointer identity for
// heap-backed tags). Callers guarantee both tags match.
func (v Value) identity(other Value) bool {
	switch v.tag {
	case TagString:
		return v.str == other.str
	case TagObject, TagArray:
		return v.comp == other.comp
	default:
		return v.num == other.num
	}
}
