// Package nlp provides the natural-language front end of the assistant:
// text normalization, keyword/pattern intent classification, and entity
// extraction. All matching is substring and regex based over normalized
// text; there is no statistical model involved.
package nlp

import "regexp"

// Intent is the closed-set category describing what kind of information a
// query seeks.
type Intent string

// The full set of recognized intents.
const (
	IntentTimetable  Intent = "timetable"
	IntentExam       Intent = "exam"
	IntentDepartment Intent = "department"
	IntentFacility   Intent = "facility"
	IntentEvent      Intent = "event"
	IntentFAQ        Intent = "faq"
	IntentGreeting   Intent = "greeting"
	IntentExit       Intent = "exit"
	IntentUnknown    Intent = "unknown"
)

// String returns the intent name.
func (i Intent) String() string { return string(i) }

// intentDef holds the static keyword and pattern table for one intent.
type intentDef struct {
	intent   Intent
	keywords []string
	patterns []*regexp.Regexp
}

// maxScore returns the highest score this definition can produce: one point
// per keyword, two per pattern.
func (d intentDef) maxScore() int {
	return len(d.keywords) + 2*len(d.patterns)
}

func compileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}

// intentTable is the fixed, ordered intent definition table. Order matters:
// on equal scores the classifier keeps the earlier entry, so declaration
// order is the tie-break.
var intentTable = []intentDef{
	{
		intent: IntentTimetable,
		keywords: []string{
			"timetable", "class", "schedule", "lecture", "period",
			"timing", "classes", "today", "tomorrow", "when",
		},
		patterns: compileAll(
			`what.*class`,
			`when.*class`,
			`today.*schedule`,
			`tomorrow.*schedule`,
			`class.*timing`,
			`schedule.*for`,
		),
	},
	{
		intent: IntentExam,
		keywords: []string{
			"exam", "examination", "test", "internal", "semester",
			"exam schedule", "exam date", "exam time", "exams",
		},
		patterns: compileAll(
			`when.*exam`,
			`exam.*schedule`,
			`exam.*date`,
			`next.*exam`,
			`upcoming.*exam`,
		),
	},
	{
		intent: IntentDepartment,
		keywords: []string{
			"department", "hod", "head", "faculty", "professor",
			"teacher", "staff", "office", "contact", "phone",
		},
		patterns: compileAll(
			`who.*hod`,
			`department.*info`,
			`contact.*department`,
			`about.*department`,
		),
	},
	{
		intent: IntentFacility,
		keywords: []string{
			"library", "canteen", "hostel", "sports", "gym",
			"medical", "hospital", "bus", "transport", "wifi",
		},
		patterns: compileAll(
			`where.*library`,
			`library.*timing`,
			`canteen.*open`,
			`hostel.*timing`,
			`bus.*route`,
		),
	},
	{
		intent: IntentEvent,
		keywords: []string{
			"event", "fest", "cultural", "technical", "seminar",
			"workshop", "placement", "drive", "program",
		},
		patterns: compileAll(
			`upcoming.*event`,
			`next.*fest`,
			`when.*placement`,
		),
	},
	{
		intent: IntentFAQ,
		keywords: []string{
			"leave", "fee", "certificate", "attendance", "scholarship",
			"apply", "bonafide", "rules", "how to", "procedure",
		},
		patterns: compileAll(
			`how.*apply`,
			`what.*fee`,
			`attendance.*requirement`,
		),
	},
	{
		intent: IntentGreeting,
		keywords: []string{
			"hello", "hi", "hey", "good morning", "good afternoon",
			"good evening", "help", "assist",
		},
		patterns: compileAll(
			`^hello`,
			`^hi\b`,
			`^hey`,
		),
	},
	{
		intent: IntentExit,
		keywords: []string{
			"bye", "goodbye", "exit", "quit", "stop", "thank you",
			"thanks", "done",
		},
		patterns: compileAll(
			`bye`,
			`exit`,
			`quit`,
		),
	},
}
