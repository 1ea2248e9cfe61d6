package recitation

import "github.com/verte-zerg/tartil/internal/model"

var statusIcons = map[model.Status]string{
	model.StatusCorrect: "✅",
	model.StatusPartial: "⚠️",
	model.StatusWrong:   "❌",
	model.StatusMissed:  "⭕",
	model.StatusExtra:   "➕",
}

// StatusIcon returns the icon shown next to a word with the given status.
// Unknown statuses get a neutral bullet.
func StatusIcon(s model.Status) string {
	if icon, ok := statusIcons[s]; ok {
		return icon
	}
	return "•"
}

// StatusClass returns the style class of a status, "word-<status>", or
// "word-unknown".
func StatusClass(s model.Status) string {
	if _, ok := statusIcons[s]; ok {
		return "word-" + string(s)
	}
	return "word-unknown"
}
