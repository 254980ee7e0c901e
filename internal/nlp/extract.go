package nlp

import (
	"strings"
	"time"
)

// EntitySet holds the structured values extracted from a query. Empty
// strings mean the category was not found. At most one value per category.
type EntitySet struct {
	Department string `json:"department,omitempty"`
	Day        string `json:"day,omitempty"`
	Facility   string `json:"facility,omitempty"`
}

// aliasEntry maps a surface alias to its canonical value. Tables are ordered
// slices, not maps: first alias found in the text wins.
type aliasEntry struct {
	alias     string
	canonical string
}

// departmentAliases maps alias substrings to canonical department codes.
var departmentAliases = []aliasEntry{
	{"cse", "CSE"}, {"computer", "CSE"}, {"computer science", "CSE"}, {"cs", "CSE"},
	{"ece", "ECE"}, {"electronics", "ECE"}, {"communication", "ECE"}, {"ec", "ECE"},
	{"mech", "MECH"}, {"mechanical", "MECH"}, {"me", "MECH"},
	{"civil", "CIVIL"}, {"ce", "CIVIL"},
	{"eee", "EEE"}, {"electrical", "EEE"}, {"ee", "EEE"},
}

// dayAliases maps day words to lowercase weekday names. The relative words
// "today" and "tomorrow" are resolved against the clock at extraction time.
var dayAliases = []aliasEntry{
	{"today", ""}, {"tomorrow", ""},
	{"monday", "monday"}, {"mon", "monday"},
	{"tuesday", "tuesday"}, {"tue", "tuesday"},
	{"wednesday", "wednesday"}, {"wed", "wednesday"},
	{"thursday", "thursday"}, {"thu", "thursday"},
	{"friday", "friday"}, {"fri", "friday"},
	{"saturday", "saturday"}, {"sat", "saturday"},
	{"sunday", "sunday"}, {"sun", "sunday"},
}

// facilityAliases maps facility words to canonical facility keys.
var facilityAliases = []aliasEntry{
	{"library", "library"},
	{"canteen", "canteen"},
	{"hostel", "hostel"},
	{"sports", "sports"},
	{"gym", "sports"},
	{"medical", "medical"},
	{"hospital", "medical"},
	{"bus", "transport"},
	{"transport", "transport"},
}

// Extractor scans normalized text for department, day, and facility
// entities. Day resolution for "today"/"tomorrow" depends on the wall clock,
// so the extractor carries an injectable clock for deterministic tests.
//
// Alias matching is naive substring search: short aliases like "ee" or "ce"
// can match inside unrelated words. That behavior is intentional and kept
// unit-testable here rather than silently spread through callers.
type Extractor struct {
	now func() time.Time
}

// NewExtractor creates an extractor using the system clock.
func NewExtractor() *Extractor {
	return &Extractor{now: time.Now}
}

// NewExtractorWithClock creates an extractor using the provided clock.
func NewExtractorWithClock(now func() time.Time) *Extractor {
	return &Extractor{now: now}
}

// Extract returns the entities found in the normalized text. Each category
// stops at its first alias hit; categories are independent.
func (e *Extractor) Extract(normalized string) EntitySet {
	var entities EntitySet

	for _, entry := range departmentAliases {
		if strings.Contains(normalized, entry.alias) {
			entities.Department = entry.canonical
			break
		}
	}

	for _, entry := range dayAliases {
		if strings.Contains(normalized, entry.alias) {
			entities.Day = e.resolveDay(entry)
			break
		}
	}

	for _, entry := range facilityAliases {
		if strings.Contains(normalized, entry.alias) {
			entities.Facility = entry.canonical
			break
		}
	}

	return entities
}

// resolveDay turns a matched day alias into a lowercase weekday name,
// resolving relative words against the current date.
func (e *Extractor) resolveDay(entry aliasEntry) string {
	switch entry.alias {
	case "today":
		return Weekday(e.now())
	case "tomorrow":
		return Weekday(e.now().AddDate(0, 0, 1))
	default:
		return entry.canonical
	}
}

// Weekday returns the lowercase weekday name for t.
func Weekday(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}
