package nlp

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()
	c := NewClassifier()

	tests := []struct {
		name       string
		text       string
		wantIntent Intent
	}{
		{"timetable query", Normalize("What are today's classes for CSE?"), IntentTimetable},
		{"exam query", Normalize("When is the next exam?"), IntentExam},
		{"department query", Normalize("Who is the HOD of ECE department?"), IntentDepartment},
		{"facility query", Normalize("Where is the library?"), IntentFacility},
		{"event query", Normalize("What are the upcoming events?"), IntentEvent},
		{"faq query", Normalize("How to apply for leave?"), IntentFAQ},
		{"greeting", Normalize("Hello, can you help me?"), IntentGreeting},
		{"farewell", Normalize("Thank you, bye!"), IntentExit},
		{"gibberish", Normalize("asdkjasd nonsense"), IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			intent, confidence := c.Classify(tt.text)
			if intent != tt.wantIntent {
				t.Errorf("Classify(%q) intent = %v, want %v", tt.text, intent, tt.wantIntent)
			}
			if tt.wantIntent == IntentUnknown {
				if confidence != 0.0 {
					t.Errorf("Classify(%q) confidence = %v, want 0.0", tt.text, confidence)
				}
			} else if confidence <= 0.0 {
				t.Errorf("Classify(%q) confidence = %v, want > 0", tt.text, confidence)
			}
		})
	}
}

func TestClassifyEmpty(t *testing.T) {
	t.Parallel()
	c := NewClassifier()
	intent, confidence := c.Classify("")
	if intent != IntentUnknown || confidence != 0.0 {
		t.Errorf("Classify(\"\") = (%v, %v), want (unknown, 0.0)", intent, confidence)
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	t.Parallel()
	c := NewClassifier()

	texts := []string{
		"",
		"timetable class schedule lecture period timing classes today tomorrow when what class",
		"exam examination test internal semester exams when exam exam schedule exam date",
		"hello hi hey good morning help assist",
		"random words with no meaning whatsoever",
		"library canteen hostel sports gym medical hospital bus transport wifi",
	}

	for _, text := range texts {
		_, confidence := c.Classify(Normalize(text))
		if confidence < 0.0 || confidence > 1.0 {
			t.Errorf("Classify(%q) confidence = %v, out of [0,1]", text, confidence)
		}
	}
}

func TestClassifyScoring(t *testing.T) {
	t.Parallel()
	c := NewClassifier()

	// "bye" matches one exit keyword (1) and one exit pattern (2): 3 of 14.
	intent, confidence := c.Classify("bye")
	if intent != IntentExit {
		t.Fatalf("intent = %v, want exit", intent)
	}
	want := 3.0 / 14.0
	if diff := confidence - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("confidence = %v, want %v", confidence, want)
	}
}

func TestClassifyTieBreak(t *testing.T) {
	t.Parallel()
	c := NewClassifier()

	// "stop" is an exit keyword and "program" is an event keyword; both
	// intents score 1. The table declares event before exit, so the earlier
	// entry wins. First-declared-wins is a deliberate, documented tie-break.
	intent, _ := c.Classify("stop program")
	if intent != IntentEvent {
		t.Errorf("tie-break intent = %v, want event (first declared)", intent)
	}

	// "tomorrow's exam schedule" scores 4 for both timetable (schedule,
	// tomorrow, tomorrow.*schedule) and exam (exam, exam schedule,
	// exam.*schedule). Timetable is declared first and wins.
	intent, _ = c.Classify(Normalize("What is tomorrow's exam schedule?"))
	if intent != IntentTimetable {
		t.Errorf("tie-break intent = %v, want timetable (first declared)", intent)
	}
}
