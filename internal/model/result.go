package model

// Status classifies how a reference word was recited.
type Status string

// Word statuses.
const (
	StatusCorrect Status = "correct"
	StatusPartial Status = "partial"
	StatusWrong   Status = "wrong"
	StatusMissed  Status = "missed"
	StatusExtra   Status = "extra"
)

// Statuses lists every status in display order. Each call returns a new
// slice.
func Statuses() []Status {
	return []Status{StatusCorrect, StatusPartial, StatusWrong, StatusMissed, StatusExtra}
}

// MistakeType names a kind of recitation mistake.
type MistakeType string

// Mistake types.
const (
	MistakeLetterSubstitution MistakeType = "letter-substitution"
	MistakeLetterOmission     MistakeType = "letter-omission"
	MistakeLetterInsertion    MistakeType = "letter-insertion"
	MistakeHaraka             MistakeType = "haraka-error"
	MistakeMadd               MistakeType = "madd-error"
	MistakeWordOmission       MistakeType = "word-omission"
)

// Mistake is one localized divergence inside a word.
type Mistake struct {
	Type        MistakeType `json:"type" yaml:"type"`
	Description string      `json:"description" yaml:"description"`
}

// Span is a half-open rune range [Start, End) in a full-form word.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// RuleInfo is the display metadata of a tajweed rule.
type RuleInfo struct {
	Color       string `json:"color" yaml:"color"`
	Description string `json:"description" yaml:"description"`
}

// TajweedAnnotation marks where a tajweed rule applies in a word.
type TajweedAnnotation struct {
	Rule string   `json:"rule" yaml:"rule"`
	Span Span     `json:"span" yaml:"span"`
	Info RuleInfo `json:"info" yaml:"info"`
}

// Tajweed groups the annotations of a word.
type Tajweed struct {
	Annotations []TajweedAnnotation `json:"annotations" yaml:"annotations"`
}

// WordResult is the outcome for one aligned word. Original is empty for an
// extra spoken word, Spoken is empty for a missed one.
type WordResult struct {
	Original   string    `json:"original" yaml:"original"`
	Spoken     string    `json:"spoken" yaml:"spoken"`
	Status     Status    `json:"status" yaml:"status"`
	Similarity int       `json:"similarity" yaml:"similarity"`
	Mistakes   []Mistake `json:"mistakes" yaml:"mistakes"`
	Tajweed    Tajweed   `json:"tajweed" yaml:"tajweed"`
}

// RecitationResult is the full comparison of a recitation against a verse.
type RecitationResult struct {
	OverallScore       int          `json:"overallScore" yaml:"overallScore"`
	Grade              string       `json:"grade" yaml:"grade"`
	GradeArabic        string       `json:"gradeArabic" yaml:"gradeArabic"`
	CorrectCount       int          `json:"correctCount" yaml:"correctCount"`
	PartialCount       int          `json:"partialCount" yaml:"partialCount"`
	WrongCount         int          `json:"wrongCount" yaml:"wrongCount"`
	MissedCount        int          `json:"missedCount" yaml:"missedCount"`
	ExtraCount         int          `json:"extraCount" yaml:"extraCount"`
	TotalOriginalWords int          `json:"totalOriginalWords" yaml:"totalOriginalWords"`
	LetterScore        int          `json:"letterScore" yaml:"letterScore"`
	MaddScore          int          `json:"maddScore" yaml:"maddScore"`
	HarakaScore        int          `json:"harakaScore" yaml:"harakaScore"`
	CompletenessScore  int          `json:"completenessScore" yaml:"completenessScore"`
	WordResults        []WordResult `json:"wordResults" yaml:"wordResults"`
}
