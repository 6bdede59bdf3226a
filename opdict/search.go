package opdict

import (
	"cmp"
	"iter"
	"slices"
)

func compareKey(r row, k row) int {
	if c := cmp.Compare(r.ch, k.ch); c != 0 {
		return c
	}
	return cmp.Compare(r.form, k.form)
}

func compareChar(r row, ch rune) int {
	return cmp.Compare(r.ch, ch)
}

// Search looks up the properties of operator ch in form form.
//
// If the dictionary has no entry for (ch, form) and explicitForm is false,
// Search returns the entry of ch with the highest priority form, where
// Infix > Prefix > Postfix. With explicitForm set, only an exact match is
// returned. The zero character is never an operator.
//
// The boolean result is false if no entry applies. Callers then use
// DefaultProperty.
func Search(ch rune, form Form, explicitForm bool) (Property, bool) {
	if ch == 0 {
		return Property{}, false
	}
	if i, ok := slices.BinarySearchFunc(dictionary[:], row{ch: ch, form: form}, compareKey); ok {
		return dictionary[i].property(), true
	}
	if explicitForm {
		return Property{}, false
	}
	// The lower bound for ch is the first row of its run, which holds the
	// highest priority form present.
	if i, ok := slices.BinarySearchFunc(dictionary[:], ch, compareChar); ok {
		return dictionary[i].property(), true
	}
	return Property{}, false
}

// IsVertical reports whether operator ch stretches vertically. This is true
// for every character not in the set of horizontal operators, including
// characters which are not stretchy at all.
func IsVertical(ch rune) bool {
	_, horizontal := slices.BinarySearch(horizontalOperators[:], ch)
	return !horizontal
}

// Forms returns the forms present in the dictionary for ch, in priority
// order. It returns nil for characters which are not operators.
func Forms(ch rune) []Form {
	i, ok := slices.BinarySearchFunc(dictionary[:], ch, compareChar)
	if !ok {
		return nil
	}
	var forms []Form
	for ; i < len(dictionary) && dictionary[i].ch == ch; i++ {
		forms = append(forms, dictionary[i].form)
	}
	return forms
}

// Len returns the number of dictionary entries.
func Len() int {
	return len(dictionary)
}

// Entries iterates over all dictionary entries in table order.
func Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, r := range dictionary {
			if !yield(Entry{Char: r.ch, Property: r.property()}) {
				return
			}
		}
	}
}

// HorizontalOperators iterates over the operators which stretch
// horizontally, in ascending order.
func HorizontalOperators() iter.Seq[rune] {
	return slices.Values(horizontalOperators[:])
}
