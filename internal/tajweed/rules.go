// Package tajweed annotates reference words with the pronunciation rules
// that apply to them.
//
// The rule registry is built once at package initialization and is never
// modified afterwards, so it is safe for unrestricted concurrent reads.
// Accessors hand out copies.
package tajweed

import (
	"strings"

	"github.com/verte-zerg/tartil/internal/arabic"
	"github.com/verte-zerg/tartil/internal/model"
)

// Rule identifiers, as shown to the user.
const (
	RuleGhunnah  = "Ghunnah"
	RuleIqlab    = "Iqlab"
	RuleIdgham   = "Idgham"
	RuleIkhfa    = "Ikhfa"
	RuleIzhar    = "Izhar"
	RuleQalqalah = "Qalqalah"
	RuleMadd     = "Madd"
)

const (
	idghamLetters   = "يرملون"
	ikhfaLetters    = "تثجدذزسشصضطظفقك"
	throatLetters   = "ءأإؤئهعحغخ"
	qalqalahLetters = "قطبجد"
)

// detector reports whether the rule applies at unit k, and the exclusive
// unit index where its span ends.
type detector func(units []arabic.Unit, k int) (end int, ok bool)

type rule struct {
	id     string
	info   model.RuleInfo
	detect detector
}

// registry order is the tie-break order for annotations that start at the
// same letter.
var registry = []rule{
	{
		id:     RuleGhunnah,
		info:   model.RuleInfo{Color: "#FF7E1E", Description: "Nasal sound held for two counts on a doubled noon or meem"},
		detect: detectGhunnah,
	},
	{
		id:     RuleIqlab,
		info:   model.RuleInfo{Color: "#26BFFD", Description: "Noon sakinah or tanween before ب is turned into a hidden meem"},
		detect: nasalBefore("ب", anyWord),
	},
	{
		id:     RuleIdgham,
		info:   model.RuleInfo{Color: "#169777", Description: "Noon sakinah or tanween merges into ي ر م ل و ن at the start of the next word"},
		detect: nasalBefore(idghamLetters, nextWord),
	},
	{
		id:     RuleIkhfa,
		info:   model.RuleInfo{Color: "#9400A8", Description: "Noon sakinah or tanween is hidden with nasalization before an ikhfa letter"},
		detect: nasalBefore(ikhfaLetters, anyWord),
	},
	{
		id:     RuleIzhar,
		info:   model.RuleInfo{Color: "#AAAAAA", Description: "Noon sakinah or tanween is pronounced clearly before a throat letter, or before ي و in the same word"},
		detect: detectIzhar,
	},
	{
		id:     RuleQalqalah,
		info:   model.RuleInfo{Color: "#DD0008", Description: "Echoing bounce on ق ط ب ج د when vowelless or stopped on"},
		detect: detectQalqalah,
	},
	{
		id:     RuleMadd,
		info:   model.RuleInfo{Color: "#537FFF", Description: "Vowel lengthened by an elongation letter or madd sign"},
		detect: detectMadd,
	},
}

var registryIndex = func() map[string]model.RuleInfo {
	index := make(map[string]model.RuleInfo, len(registry))
	for _, r := range registry {
		index[r.id] = r.info
	}
	return index
}()

// NamedRule is a registry entry with its identifier.
type NamedRule struct {
	ID   string
	Info model.RuleInfo
}

// Lookup returns the display metadata of a rule.
func Lookup(id string) (model.RuleInfo, bool) {
	info, ok := registryIndex[id]
	return info, ok
}

// Rules returns every rule in registry order.
func Rules() []NamedRule {
	out := make([]NamedRule, len(registry))
	for i, r := range registry {
		out[i] = NamedRule{ID: r.id, Info: r.info}
	}
	return out
}

func detectGhunnah(units []arabic.Unit, k int) (int, bool) {
	u := units[k]
	if (u.Base() == 'ن' || u.Base() == 'م') && u.Has(arabic.Shadda) {
		return k + 1, true
	}
	return 0, false
}

// reach limits where the letter after a noon sakinah or tanween may sit.
type reach int

const (
	anyWord reach = iota
	sameWord
	nextWord
)

// nasalBefore matches a noon sakinah or tanween followed by one of letters.
func nasalBefore(letters string, where reach) detector {
	return func(units []arabic.Unit, k int) (int, bool) {
		next, crossed := nasalFollower(units, k)
		if next < 0 {
			return 0, false
		}
		if (where == sameWord && crossed) || (where == nextWord && !crossed) {
			return 0, false
		}
		if !strings.ContainsRune(letters, units[next].Letter) {
			return 0, false
		}
		return next + 1, true
	}
}

var (
	izharThroat = nasalBefore(throatLetters, anyWord)
	izharInWord = nasalBefore(idghamLetters, sameWord)
)

// detectIzhar also covers a noon sakinah before an idgham letter inside one
// word (الدنيا, صنوان), which is never merged.
func detectIzhar(units []arabic.Unit, k int) (int, bool) {
	if end, ok := izharThroat(units, k); ok {
		return end, true
	}
	return izharInWord(units, k)
}

// nasalFollower returns the index of the letter that decides the fate of a
// noon sakinah or tanween at k, or -1, and whether that letter starts the
// next word.
func nasalFollower(units []arabic.Unit, k int) (int, bool) {
	u := units[k]
	next := k + 1
	switch {
	case isNoonSakinah(u):
	case u.HasAny(arabic.IsTanween):
		// The alef (or alef maqsura) written after fathatan is silent.
		if next < len(units) && (units[next].Letter == 'ا' || units[next].Letter == 'ى') && isVowelless(units[next]) {
			next++
		}
		// Tanween ends its word, so it only has a follower in phrase input.
	default:
		return -1, false
	}
	crossed := false
	if next < len(units) && isWordBreak(units[next]) {
		next++
		crossed = true
	}
	if next >= len(units) || isWordBreak(units[next]) {
		return -1, false
	}
	return next, crossed
}

func isWordBreak(u arabic.Unit) bool {
	return u.Letter == ' '
}

func isNoonSakinah(u arabic.Unit) bool {
	if u.Letter != 'ن' || u.Has(arabic.Shadda) {
		return false
	}
	return u.HasAny(arabic.IsSukun) || len(u.MarksOf(arabic.MarkHaraka)) == 0
}

func isVowelless(u arabic.Unit) bool {
	return !u.Has(arabic.Shadda) && u.Vowel() == 0 && !u.HasAny(arabic.IsTanween)
}

func detectQalqalah(units []arabic.Unit, k int) (int, bool) {
	u := units[k]
	if !strings.ContainsRune(qalqalahLetters, u.Letter) {
		return 0, false
	}
	if u.HasAny(arabic.IsSukun) || k == len(units)-1 || isWordBreak(units[k+1]) {
		return k + 1, true
	}
	return 0, false
}

func detectMadd(units []arabic.Unit, k int) (int, bool) {
	u := units[k]
	if len(u.MarksOf(arabic.MarkMadd)) > 0 {
		return k + 1, true
	}
	if k+1 >= len(units) || !isVowelless(units[k+1]) {
		return 0, false
	}
	next := units[k+1].Letter
	switch u.Vowel() {
	case arabic.Fatha:
		if next == 'ا' || next == 'ى' {
			return k + 2, true
		}
	case arabic.Damma:
		if next == 'و' {
			return k + 2, true
		}
	case arabic.Kasra:
		if next == 'ي' {
			return k + 2, true
		}
	}
	return 0, false
}
