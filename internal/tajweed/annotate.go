package tajweed

import (
	"github.com/verte-zerg/tartil/internal/arabic"
	"github.com/verte-zerg/tartil/internal/model"
)

// Annotate scans a full-form word letter by letter and returns every rule
// that applies, ordered by the first letter of its span and then by registry
// order. Spans are rune offsets into word. The result never depends on
// anything but word.
//
// word may also be a phrase of words joined by single spaces. Rules that
// need the start of the next word, such as idgham, only fire on phrases.
func Annotate(word string) []model.TajweedAnnotation {
	units := arabic.Units(word)
	annotations := []model.TajweedAnnotation{}
	for k := range units {
		for _, r := range registry {
			end, ok := r.detect(units, k)
			if !ok {
				continue
			}
			annotations = append(annotations, model.TajweedAnnotation{
				Rule: r.id,
				Span: model.Span{Start: units[k].Start, End: units[end-1].End},
				Info: r.info,
			})
		}
	}
	return annotations
}
