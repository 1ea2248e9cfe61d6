package arabic

// Unit is a base letter together with the marks written on it. Start and End
// are rune offsets into the word the unit was cut from.
type Unit struct {
	Letter rune
	Marks  []rune
	Start  int
	End    int
}

// Base returns the folded base letter.
func (u Unit) Base() rune {
	return FoldLetter(u.Letter)
}

// Has reports whether the unit carries mark r.
func (u Unit) Has(r rune) bool {
	for _, m := range u.Marks {
		if m == r {
			return true
		}
	}
	return false
}

// HasAny reports whether any mark satisfies pred.
func (u Unit) HasAny(pred func(rune) bool) bool {
	for _, m := range u.Marks {
		if pred(m) {
			return true
		}
	}
	return false
}

// MarksOf returns the unit's marks of the given kind, in written order.
func (u Unit) MarksOf(kind MarkKind) []rune {
	var out []rune
	for _, m := range u.Marks {
		if KindOf(m) == kind {
			out = append(out, m)
		}
	}
	return out
}

// Vowel returns the short vowel (fatha, damma, kasra) on the unit, or 0.
func (u Unit) Vowel() rune {
	for _, m := range u.Marks {
		switch m {
		case Fatha, Damma, Kasra:
			return m
		}
	}
	return 0
}

// IsMaddLetter reports whether units[k] lengthens the vowel before it: a
// bare alef, alef maqsura, waw or yeh that is not the first letter, carries
// no vowel, shadda or tanween (a sukun is allowed), and agrees with the
// previous letter's vowel when that letter is diacritized.
func IsMaddLetter(units []Unit, k int) bool {
	if k <= 0 || k >= len(units) {
		return false
	}
	u := units[k]
	switch u.Letter {
	case '\u0627', '\u0649', '\u0648', '\u064A', '\u06CC':
	default:
		return false
	}
	for _, m := range u.Marks {
		if KindOf(m) == MarkHaraka && !IsSukun(m) {
			return false
		}
	}
	switch units[k-1].Vowel() {
	case 0:
		return true
	case Fatha:
		return u.Letter == '\u0627' || u.Letter == '\u0649'
	case Damma:
		return u.Letter == '\u0648'
	default:
		return u.Letter == '\u064A' || u.Letter == '\u0649' || u.Letter == '\u06CC'
	}
}

// Units cuts a full-form word into letter units. Marks before the first
// letter have nothing to sit on and are skipped, but still count toward
// offsets.
func Units(word string) []Unit {
	var units []Unit
	pos := 0
	for _, r := range word {
		if IsMark(r) {
			if len(units) > 0 {
				last := &units[len(units)-1]
				last.Marks = append(last.Marks, r)
				last.End = pos + 1
			}
			pos++
			continue
		}
		units = append(units, Unit{Letter: r, Start: pos, End: pos + 1})
		pos++
	}
	return units
}

// HasMarks reports whether any rune of word is a mark.
func HasMarks(word string) bool {
	for _, r := range word {
		if IsMark(r) {
			return true
		}
	}
	return false
}
