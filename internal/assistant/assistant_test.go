package assistant

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerrors "github.com/campusvoice/campus-assistant-go/internal/errors"
	"github.com/campusvoice/campus-assistant-go/internal/logger"
	"github.com/campusvoice/campus-assistant-go/internal/storage"
)

// fakeStore answers knowledge queries with strings that encode the
// arguments, so routing can be asserted without a database.
type fakeStore struct {
	faqAnswer   string
	faqFound    bool
	examsOnDate []storage.Exam
	err         error
}

func (f *fakeStore) Timetable(ctx context.Context, day, department string) (string, error) {
	return "timetable:" + day + ":" + department, f.err
}

func (f *fakeStore) ExamSchedule(ctx context.Context, department string) (string, error) {
	return "exams:" + department, f.err
}

func (f *fakeStore) ExamsOnDate(ctx context.Context, date, department string) ([]storage.Exam, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []storage.Exam
	for _, exam := range f.examsOnDate {
		if exam.Date == date && (department == "" || exam.Department == department) {
			matched = append(matched, exam)
		}
	}
	return matched, nil
}

func (f *fakeStore) DepartmentInfo(ctx context.Context, department string) (string, error) {
	return "department:" + department, f.err
}

func (f *fakeStore) FacilityInfo(ctx context.Context, facility string) (string, error) {
	return "facility:" + facility, f.err
}

func (f *fakeStore) Events(ctx context.Context) (string, error) {
	return "events", f.err
}

func (f *fakeStore) SearchFAQ(ctx context.Context, queryText string) (string, bool, error) {
	return f.faqAnswer, f.faqFound, f.err
}

func (f *fakeStore) ImportantContacts(ctx context.Context) (string, error) {
	return "contacts", f.err
}

// fixedClock pins today to Wednesday 2026-01-07.
func fixedClock() time.Time {
	return time.Date(2026, time.January, 7, 10, 0, 0, 0, time.UTC)
}

func newTestAssistant(store *fakeStore) *Assistant {
	log := logger.NewWithWriter("error", io.Discard)
	return NewWithClock(store, nil, log, fixedClock)
}

func TestCyclerWrapsAround(t *testing.T) {
	t.Parallel()

	c := NewCycler("a", "b", "c")
	got := []string{c.Next(), c.Next(), c.Next(), c.Next()}
	assert.Equal(t, []string{"a", "b", "c", "a"}, got)
}

func TestCyclerConcurrent(t *testing.T) {
	t.Parallel()

	c := NewCycler("a", "b", "c")
	const rounds = 30

	results := make(chan string, rounds)
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- c.Next()
		}()
	}
	wg.Wait()
	close(results)

	counts := map[string]int{}
	for phrase := range results {
		counts[phrase]++
	}
	// 30 calls over 3 phrases: every phrase is served exactly 10 times.
	assert.Equal(t, map[string]int{"a": 10, "b": 10, "c": 10}, counts)
}

func TestGreetingAndFarewellCountersAreIndependent(t *testing.T) {
	t.Parallel()

	a := newTestAssistant(&fakeStore{})
	ctx := context.Background()

	first, err := a.ProcessQuery(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, greetingResponses[0], first)

	second, err := a.ProcessQuery(ctx, "hi there")
	require.NoError(t, err)
	assert.Equal(t, greetingResponses[1], second)

	// The farewell counter has not moved.
	farewell, err := a.ProcessQuery(ctx, "bye")
	require.NoError(t, err)
	assert.Equal(t, farewellResponses[0], farewell)
}

func TestTimetableRouting(t *testing.T) {
	t.Parallel()

	a := newTestAssistant(&fakeStore{})
	ctx := context.Background()

	t.Run("explicit day and department", func(t *testing.T) {
		got, err := a.ProcessQuery(ctx, "CSE schedule for Monday")
		require.NoError(t, err)
		assert.Equal(t, "timetable:monday:CSE", got)
	})

	t.Run("defaults to current weekday", func(t *testing.T) {
		got, err := a.ProcessQuery(ctx, "what classes do I have")
		require.NoError(t, err)
		assert.Equal(t, "timetable:wednesday:", got)
	})

	t.Run("tomorrow overrides extracted day", func(t *testing.T) {
		got, err := a.ProcessQuery(ctx, "tomorrow's classes for ECE")
		require.NoError(t, err)
		assert.Equal(t, "timetable:thursday:ECE", got)
	})
}

func TestExamRouting(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		examsOnDate: []storage.Exam{
			{Department: "CSE", Subject: "Data Structures", Date: "2026-01-08", Time: "10:00 AM", Room: "Hall A"},
		},
	}
	a := newTestAssistant(store)
	ctx := context.Background()

	t.Run("schedule by department", func(t *testing.T) {
		got, err := a.ProcessQuery(ctx, "when is the next exam for CSE")
		require.NoError(t, err)
		assert.Equal(t, "exams:CSE", got)
	})

	t.Run("tomorrow with matching exam", func(t *testing.T) {
		got, err := a.ProcessQuery(ctx, "tomorrow's exams")
		require.NoError(t, err)
		assert.Contains(t, got, "Tomorrow's Exams:")
		assert.Contains(t, got, "CSE - Data Structures")
		assert.Contains(t, got, "Room: Hall A")
	})

	t.Run("tomorrow with no exams", func(t *testing.T) {
		empty := newTestAssistant(&fakeStore{})
		got, err := empty.ProcessQuery(ctx, "are there exams tomorrow")
		require.NoError(t, err)
		assert.Equal(t, "No exams scheduled for tomorrow.", got)
	})
}

func TestEntityRouting(t *testing.T) {
	t.Parallel()

	a := newTestAssistant(&fakeStore{})
	ctx := context.Background()

	tests := []struct {
		query string
		want  string
	}{
		{"tell me about the cse department hod", "department:CSE"},
		{"where is the library", "facility:library"},
		{"library timings please", "facility:library"},
		{"what events are happening", "events"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := a.ProcessQuery(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFAQFallback(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("match found", func(t *testing.T) {
		a := newTestAssistant(&fakeStore{faqAnswer: "Submit the leave form.", faqFound: true})
		got, err := a.ProcessQuery(ctx, "how do I apply for leave")
		require.NoError(t, err)
		assert.Equal(t, "Submit the leave form.", got)
	})

	t.Run("no match falls back to generic sentence", func(t *testing.T) {
		a := newTestAssistant(&fakeStore{})
		got, err := a.ProcessQuery(ctx, "how do I apply for leave")
		require.NoError(t, err)
		assert.Equal(t, faqFallbackResponse, got)
	})
}

func TestUnknownTriesFAQFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("faq hit", func(t *testing.T) {
		a := newTestAssistant(&fakeStore{faqAnswer: "Connect to CampusNet.", faqFound: true})
		got, err := a.ProcessQuery(ctx, "xyzzy internet")
		require.NoError(t, err)
		assert.Equal(t, "Connect to CampusNet.", got)
	})

	t.Run("faq miss cycles unknown responses", func(t *testing.T) {
		a := newTestAssistant(&fakeStore{})
		first, err := a.ProcessQuery(ctx, "xyzzy")
		require.NoError(t, err)
		assert.Equal(t, unknownResponses[0], first)

		second, err := a.ProcessQuery(ctx, "xyzzy")
		require.NoError(t, err)
		assert.Equal(t, unknownResponses[1], second)
	})
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()

	a := newTestAssistant(&fakeStore{})

	for _, raw := range []string{"", "   ", "\t\n"} {
		got, err := a.ProcessQuery(context.Background(), raw)
		require.NoError(t, err)
		assert.Equal(t, emptyInputResponse, got)
	}
}

func TestHelpCommands(t *testing.T) {
	t.Parallel()

	a := newTestAssistant(&fakeStore{})
	ctx := context.Background()

	for _, raw := range []string{"help", "Commands", "what can you do"} {
		got, err := a.ProcessQuery(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, helpResponse, got, "query %q", raw)
	}

	// A sentence merely containing a help word is classified normally.
	got, err := a.ProcessQuery(ctx, "help me find the library")
	require.NoError(t, err)
	assert.NotEqual(t, helpResponse, got)
}

func TestEmergencyRoutesToContacts(t *testing.T) {
	t.Parallel()

	a := newTestAssistant(&fakeStore{})
	got, err := a.ProcessQuery(context.Background(), "emergency phone numbers")
	require.NoError(t, err)
	assert.Equal(t, "contacts", got)
}

func TestStoreFailurePropagates(t *testing.T) {
	t.Parallel()

	cause := domerrors.ErrStoreUnavailable
	a := newTestAssistant(&fakeStore{err: cause})

	_, err := a.ProcessQuery(context.Background(), "what events are happening")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domerrors.ErrStoreUnavailable))
}

func TestAnswerExposesClassification(t *testing.T) {
	t.Parallel()

	a := newTestAssistant(&fakeStore{})
	reply, err := a.Answer(context.Background(), "CSE schedule for Monday")
	require.NoError(t, err)
	assert.Equal(t, "timetable", string(reply.Result.Intent))
	assert.Equal(t, "CSE", reply.Result.Entities.Department)
	assert.Equal(t, "monday", reply.Result.Entities.Day)
	assert.Greater(t, reply.Result.Confidence, 0.0)
}
