package runtime

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// Print renders v to standard output and returns the number of bytes written.
func Print(v Value) int {
	return Fprint(os.Stdout, v)
}

// Fprint renders v to w. Strings are written raw; composites list their
// integer keys in storage order.
func Fprint(w io.Writer, v Value) int {
	switch v.tag {
	case TagVoid:
		return 0
	case TagNull:
		return writeString(w, "null")
	case TagBoolean:
		if v.num != 0 {
			return writeString(w, "true")
		}
		return writeString(w, "false")
	case TagNumber:
		return writeString(w, formatNumber(v.num))
	case TagString:
		return writeString(w, v.Str())
	case TagObject:
		return writeString(w, "{ ") + printComposite(w, v) + writeString(w, " }")
	case TagArray:
		return writeString(w, "[ ") + printComposite(w, v) + writeString(w, " ]")
	default:
		Fatalf(ErrBug, "unknown type code: %d", v.tag)
		return 0
	}
}

func printComposite(w io.Writer, comp Value) int {
	c := checkComposite(comp)
	count := 0
	for i, elem := range c.elements {
		if i > 0 {
			count += writeString(w, ", ")
		}
		count += writeString(w, strconv.Itoa(elem.Key)+": ")
		count += Fprint(w, elem.Value)
	}
	return count
}

// formatNumber prints integral values without a fraction and everything
// else with six fraction digits.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		return "0"
	case math.Ceil(f) == f:
		return strconv.FormatFloat(f, 'f', 0, 64)
	default:
		return strconv.FormatFloat(f, 'f', 6, 64)
	}
}

func writeString(w io.Writer, s string) int {
	n, _ := fmt.Fprint(w, s)
	return n
}
