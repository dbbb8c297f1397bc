package runtime

// Assert returns cond when it is a true Boolean and fails otherwise. A
// String msg is used as the failure message.
func Assert(cond, msg Value) Value {
	if cond.tag == TagBoolean && cond.num != 0 {
		return cond
	}
	text := "unspecified"
	if msg.tag == TagString {
		text = msg.Str()
	}
	Fatalf(ErrAssert, "assertion failed: %s", text)
	return cond
}
