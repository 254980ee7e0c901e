package nlp

import "testing"

func TestProcess(t *testing.T) {
	t.Parallel()
	p := NewProcessorWithClock(fixedClock())

	result := p.Process("What are today's classes for CSE?")

	if result.OriginalText != "What are today's classes for CSE?" {
		t.Errorf("OriginalText = %q", result.OriginalText)
	}
	if result.NormalizedText != "what are today's classes for cse" {
		t.Errorf("NormalizedText = %q", result.NormalizedText)
	}
	if result.Intent != IntentTimetable {
		t.Errorf("Intent = %v, want timetable", result.Intent)
	}
	if result.Confidence <= 0 || result.Confidence > 1 {
		t.Errorf("Confidence = %v, out of (0,1]", result.Confidence)
	}
	if result.Entities.Department != "CSE" {
		t.Errorf("Department = %q, want CSE", result.Entities.Department)
	}
	if result.Entities.Day != "wednesday" {
		t.Errorf("Day = %q, want wednesday (fixed clock)", result.Entities.Day)
	}
}

func TestProcessEmpty(t *testing.T) {
	t.Parallel()
	p := NewProcessorWithClock(fixedClock())

	result := p.Process("")
	if result.Intent != IntentUnknown {
		t.Errorf("Intent = %v, want unknown", result.Intent)
	}
	if result.Confidence != 0.0 {
		t.Errorf("Confidence = %v, want 0.0", result.Confidence)
	}
	if result.Entities != (EntitySet{}) {
		t.Errorf("Entities = %+v, want empty", result.Entities)
	}
}
