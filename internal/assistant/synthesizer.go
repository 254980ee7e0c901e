package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campusvoice/campus-assistant-go/internal/knowledge"
	"github.com/campusvoice/campus-assistant-go/internal/nlp"
)

// Synthesizer turns a classified query into a response, pulling data from
// the knowledge store for data-backed intents and cycling through fixed
// phrase lists for conversational ones.
type Synthesizer struct {
	store knowledge.Store
	now   func() time.Time

	greetings *Cycler
	farewells *Cycler
	unknowns  *Cycler
}

// NewSynthesizer builds a synthesizer over store using the real clock.
func NewSynthesizer(store knowledge.Store) *Synthesizer {
	return NewSynthesizerWithClock(store, time.Now)
}

// NewSynthesizerWithClock injects the clock used for today/tomorrow
// resolution.
func NewSynthesizerWithClock(store knowledge.Store, now func() time.Time) *Synthesizer {
	return &Synthesizer{
		store:     store,
		now:       now,
		greetings: NewCycler(greetingResponses...),
		farewells: NewCycler(farewellResponses...),
		unknowns:  NewCycler(unknownResponses...),
	}
}

// Respond renders the response for a processed query. An error is returned
// only when the knowledge store fails; missing data renders as text.
func (s *Synthesizer) Respond(ctx context.Context, result nlp.QueryResult) (string, error) {
	switch result.Intent {
	case nlp.IntentGreeting:
		return s.greetings.Next(), nil
	case nlp.IntentExit:
		return s.farewells.Next(), nil
	case nlp.IntentTimetable:
		return s.timetable(ctx, result)
	case nlp.IntentExam:
		return s.exam(ctx, result)
	case nlp.IntentDepartment:
		return s.store.DepartmentInfo(ctx, result.Entities.Department)
	case nlp.IntentFacility:
		return s.store.FacilityInfo(ctx, result.Entities.Facility)
	case nlp.IntentEvent:
		return s.store.Events(ctx)
	case nlp.IntentFAQ:
		return s.faq(ctx, result)
	default:
		return s.unknown(ctx, result)
	}
}

// asksTomorrow reports whether the raw query mentions tomorrow, which
// overrides any extracted day.
func asksTomorrow(raw string) bool {
	return strings.Contains(strings.ToLower(raw), "tomorrow")
}

func (s *Synthesizer) timetable(ctx context.Context, result nlp.QueryResult) (string, error) {
	day := result.Entities.Day
	if asksTomorrow(result.OriginalText) {
		day = nlp.Weekday(s.now().AddDate(0, 0, 1))
	}
	if day == "" {
		day = nlp.Weekday(s.now())
	}
	return s.store.Timetable(ctx, day, result.Entities.Department)
}

func (s *Synthesizer) exam(ctx context.Context, result nlp.QueryResult) (string, error) {
	if !asksTomorrow(result.OriginalText) {
		return s.store.ExamSchedule(ctx, result.Entities.Department)
	}

	date := s.now().AddDate(0, 0, 1).Format("2006-01-02")
	exams, err := s.store.ExamsOnDate(ctx, date, result.Entities.Department)
	if err != nil {
		return "", err
	}
	if len(exams) == 0 {
		return "No exams scheduled for tomorrow.", nil
	}

	var b strings.Builder
	b.WriteString("Tomorrow's Exams:\n")
	for _, exam := range exams {
		fmt.Fprintf(&b, "\n%s - %s\n", exam.Department, exam.Subject)
		fmt.Fprintf(&b, "  Time: %s\n", exam.Time)
		fmt.Fprintf(&b, "  Room: %s\n", exam.Room)
	}
	return b.String(), nil
}

func (s *Synthesizer) faq(ctx context.Context, result nlp.QueryResult) (string, error) {
	answer, found, err := s.store.SearchFAQ(ctx, result.OriginalText)
	if err != nil {
		return "", err
	}
	if !found {
		return faqFallbackResponse, nil
	}
	return answer, nil
}

// unknown tries the FAQ index before giving up with a cycled fallback.
func (s *Synthesizer) unknown(ctx context.Context, result nlp.QueryResult) (string, error) {
	answer, found, err := s.store.SearchFAQ(ctx, result.OriginalText)
	if err != nil {
		return "", err
	}
	if found {
		return answer, nil
	}
	return s.unknowns.Next(), nil
}
