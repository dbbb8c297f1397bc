package runtime

// compositeIncrement is the block size, in slots, by which composite
// storage grows.
const compositeIncrement = 16

// Element is one keyed slot of a Composite.
type Element struct {
	Key   int
	Value Value
}

// Composite is the sparse, integer-keyed, insertion-ordered store behind
// both object and array values. Keys are assigned by the compiler and need
// not be contiguous.
type Composite struct {
	elements []Element
}

func (c *Composite) find(key int) *Element {
	for i := range c.elements {
		if c.elements[i].Key == key {
			return &c.elements[i]
		}
	}
	return nil
}

// Get returns the value stored under key.
func (c *Composite) Get(key int) (Value, bool) {
	if elem := c.find(key); elem != nil {
		return elem.Value, true
	}
	return Value{}, false
}

// Set stores v under key. An existing key keeps its slot; a new key is
// appended. Set reports whether a slot was appended.
func (c *Composite) Set(key int, v Value) bool {
	if elem := c.find(key); elem != nil {
		elem.Value = v
		return false
	}
	if len(c.elements)%compositeIncrement == 0 {
		grown := make([]Element, len(c.elements), len(c.elements)+compositeIncrement)
		copy(grown, c.elements)
		c.elements = grown
	}
	c.elements = append(c.elements, Element{Key: key, Value: v})
	return true
}

// Len returns the number of occupied slots.
func (c *Composite) Len() int { return len(c.elements) }

// MaxKey returns the largest key present, or 0 for an empty composite.
func (c *Composite) MaxKey() int {
	maxKey := 0
	for _, elem := range c.elements {
		if elem.Key > maxKey {
			maxKey = elem.Key
		}
	}
	return maxKey
}

// Elements returns the slots in storage order.
func (c *Composite) Elements() []Element {
	out := make([]Element, len(c.elements))
	copy(out, c.elements)
	return out
}

//-----------------------------------------------------------------------------
// Value-level composite operations
//-----------------------------------------------------------------------------

// NewComposite creates an empty object or array value.
func NewComposite(tag Tag) Value {
	if !tag.IsComposite() {
		Fatalf(ErrType, "wrong type for composite: %s", tag)
	}
	return Value{tag: tag, comp: &Composite{}}
}

func NewObject() Value { return NewComposite(TagObject) }

func NewArray() Value { return NewComposite(TagArray) }

// GetElement returns the value stored under id, or Null when absent.
func GetElement(comp Value, id int) Value {
	c := checkComposite(comp)
	if v, ok := c.Get(id); ok {
		return v
	}
	return Null()
}

// SetElement stores val under id and reports whether a new slot was appended.
func SetElement(comp Value, id int, val Value) bool {
	return checkComposite(comp).Set(id, val)
}
