package arabic

// Harakat and other marks referenced by the classifier and the tajweed
// scanner.
const (
	Fathatan        = '\u064B'
	Dammatan        = '\u064C'
	Kasratan        = '\u064D'
	Fatha           = '\u064E'
	Damma           = '\u064F'
	Kasra           = '\u0650'
	Shadda          = '\u0651'
	Sukun           = '\u0652'
	Maddah          = '\u0653'
	HamzaAbove      = '\u0654'
	HamzaBelow      = '\u0655'
	SuperscriptAlef = '\u0670'
	SmallHighMadda  = '\u06E4'
	QuranicSukun    = '\u06E1' // small high dotless head of khah
	OpenFathatan    = '\u08F0'
	OpenDammatan    = '\u08F1'
	OpenKasratan    = '\u08F2'

	smallWaw = '\u06E5'
	smallYeh = '\u06E6'
)

// MarkKind groups marks by what a mistake in them means.
type MarkKind int

// Mark kinds.
const (
	MarkOther MarkKind = iota
	MarkHaraka
	MarkMadd
)

// KindOf classifies a mark. Marks that are reading hints rather than
// pronounced vowels (small high meem, rounded zero, ...) are MarkOther.
func KindOf(r rune) MarkKind {
	switch r {
	case Fathatan, Dammatan, Kasratan, Fatha, Damma, Kasra, Shadda, Sukun,
		QuranicSukun, OpenFathatan, OpenDammatan, OpenKasratan, HamzaAbove, HamzaBelow:
		return MarkHaraka
	case Maddah, SuperscriptAlef, SmallHighMadda, smallWaw, smallYeh, '\u06E7':
		return MarkMadd
	}
	return MarkOther
}

// IsTanween reports whether r is a tanween (nunation) mark.
func IsTanween(r rune) bool {
	switch r {
	case Fathatan, Dammatan, Kasratan, OpenFathatan, OpenDammatan, OpenKasratan:
		return true
	}
	return false
}

// IsSukun reports whether r marks a vowelless letter.
func IsSukun(r rune) bool {
	return r == Sukun || r == QuranicSukun
}
