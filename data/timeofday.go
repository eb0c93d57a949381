package data

import "strings"

// Time-of-day labels, in match priority order.
const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
	TimeOfDayNight     = "night"
	TimeOfDayUnknown   = "unknown"
)

// Dayparts lists the labels the collector searches for, in the order the
// classifier tests them.
var Dayparts = []string{
	TimeOfDayMorning,
	TimeOfDayAfternoon,
	TimeOfDayEvening,
	TimeOfDayNight,
}

// ClassifyTimeOfDay derives a playlist's daypart label from its name and
// description. The scan is first-match-wins over the lowercased
// concatenation, so a playlist mentioning several dayparts gets the
// earliest one in Dayparts order, regardless of position in the text.
func ClassifyTimeOfDay(name, description string) string {
	text := strings.ToLower(name + " " + description)
	for _, label := range Dayparts {
		if strings.Contains(text, label) {
			return label
		}
	}
	return TimeOfDayUnknown
}
