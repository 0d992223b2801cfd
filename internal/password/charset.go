package password

import "strings"

// Class identifies one group of characters a password may draw from.
type Class int

const (
	ClassNumber Class = iota
	ClassLowercase
	ClassUppercase
	ClassSymbol
	ClassSpace
)

const (
	numbers   = "0123456789"
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	symbols   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	space     = " "

	// similar characters are easy to misread in most fonts.
	similar = "iI1loO0\"'`|"
)

func (c Class) String() string {
	switch c {
	case ClassNumber:
		return "number"
	case ClassLowercase:
		return "lowercase"
	case ClassUppercase:
		return "uppercase"
	case ClassSymbol:
		return "symbol"
	case ClassSpace:
		return "space"
	default:
		return "unknown"
	}
}

// Chars returns the full character set for the class.
func (c Class) Chars() string {
	switch c {
	case ClassNumber:
		return numbers
	case ClassLowercase:
		return lowercase
	case ClassUppercase:
		return uppercase
	case ClassSymbol:
		return symbols
	case ClassSpace:
		return space
	default:
		return ""
	}
}

// ClassOf reports which class r belongs to.
func ClassOf(r rune) (Class, bool) {
	for _, c := range []Class{ClassNumber, ClassLowercase, ClassUppercase, ClassSymbol, ClassSpace} {
		if strings.ContainsRune(c.Chars(), r) {
			return c, true
		}
	}
	return 0, false
}

// IsSimilar reports whether r is one of the easily confused characters.
func IsSimilar(r rune) bool {
	return strings.ContainsRune(similar, r)
}

func charsFor(c Class, excludeSimilar bool) []byte {
	set := c.Chars()
	if !excludeSimilar {
		return []byte(set)
	}
	out := make([]byte, 0, len(set))
	for i := 0; i < len(set); i++ {
		if IsSimilar(rune(set[i])) {
			continue
		}
		out = append(out, set[i])
	}
	return out
}
