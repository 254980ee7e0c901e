package knowledge

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerrors "github.com/campusvoice/campus-assistant-go/internal/errors"
	"github.com/campusvoice/campus-assistant-go/internal/logger"
	"github.com/campusvoice/campus-assistant-go/internal/storage"
)

func newTestStore(t *testing.T) (*SQLStore, *storage.DB) {
	t.Helper()

	db, err := storage.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, db.SaveClassSlotsBatch(ctx, []storage.ClassSlot{
		{Day: "monday", Department: "CSE", Ordinal: 0, Time: "9:00-10:00", Subject: "Data Structures", Room: "CS-101", Faculty: "Dr. Sharma"},
		{Day: "monday", Department: "CSE", Ordinal: 1, Time: "10:00-11:00", Subject: "Operating Systems", Room: "CS-102", Faculty: "Prof. Rao"},
		{Day: "monday", Department: "ECE", Ordinal: 0, Time: "9:00-10:00", Subject: "Signals and Systems", Room: "EC-201", Faculty: "Dr. Iyer"},
	}))
	require.NoError(t, db.SaveExamsBatch(ctx, []storage.Exam{
		{Department: "CSE", Ordinal: 0, Subject: "Data Structures", Date: "2026-01-08", Day: "Thursday", Time: "10:00 AM", Room: "Hall A", Type: "Internal"},
		{Department: "CSE", Ordinal: 1, Subject: "Operating Systems", Date: "2026-01-10", Day: "Saturday", Time: "10:00 AM", Room: "Hall A", Type: "Internal"},
		{Department: "ECE", Ordinal: 0, Subject: "Digital Circuits", Date: "2026-01-08", Day: "Thursday", Time: "2:00 PM", Room: "Hall B", Type: "Internal"},
	}))
	require.NoError(t, db.SaveExamRulesBatch(ctx, []storage.ExamRule{
		{Ordinal: 0, Rule: "Carry your ID card and hall ticket"},
		{Ordinal: 1, Rule: "Reach the exam hall 15 minutes early"},
	}))
	require.NoError(t, db.SaveDepartmentsBatch(ctx, []storage.Department{
		{
			Code: "CSE", FullName: "Computer Science and Engineering",
			HOD: "Dr. A. Kumar", HODContact: "hod.cse@campus.edu",
			Office: "Block A, Room 101", Phone: "080-1234-5601",
			Established: 1998, TotalFaculty: 42, TotalStudents: 480,
			Labs:           []string{"AI Lab", "Networks Lab"},
			AveragePackage: "8.5 LPA", HighestPackage: "44 LPA", PlacementRate: "92%",
		},
		{Code: "ECE", FullName: "Electronics and Communication Engineering", HOD: "Dr. B. Iyer", Office: "Block B"},
	}))
	require.NoError(t, db.SaveFacilitiesBatch(ctx, []storage.Facility{
		{Key: "library", Name: "Central Library", Location: "Main Block", Timings: "8:00 AM - 10:00 PM", Services: []string{"Book lending", "Reading hall"}},
		{Key: "sports", Name: "Sports Complex", Location: "North Campus", Timings: "6:00 AM - 9:00 PM"},
	}))
	require.NoError(t, db.SaveEventsBatch(ctx, []storage.Event{
		{Ordinal: 0, Name: "TechFest 2026", Date: "2026-02-15", Venue: "Main Auditorium", Description: "Annual technical festival"},
	}))
	require.NoError(t, db.SaveFAQsBatch(ctx, []storage.FAQ{
		{Ordinal: 0, Keywords: []string{"wifi", "internet"}, Question: "How do I connect to campus WiFi?", Answer: "Connect to CampusNet with your student credentials."},
		{Ordinal: 1, Keywords: []string{"leave", "apply"}, Question: "How do I apply for leave?", Answer: "Submit the leave form to your HOD."},
		{Ordinal: 2, Keywords: []string{"internet", "apply"}, Question: "How do I apply for internet access?", Answer: "Raise a ticket with the IT cell."},
	}))
	require.NoError(t, db.SaveImportantContactsBatch(ctx, []storage.ImportantContact{
		{Ordinal: 0, Name: "Campus Security", Number: "080-1234-5600"},
		{Ordinal: 1, Name: "Medical Emergency", Number: "080-1234-5611"},
	}))

	log := logger.NewWithWriter("error", io.Discard)
	return NewSQLStore(db, time.Minute, nil, log), db
}

func TestTimetable(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("department schedule", func(t *testing.T) {
		text, err := store.Timetable(ctx, "monday", "CSE")
		require.NoError(t, err)
		assert.Contains(t, text, "CSE Schedule for Monday:")
		assert.Contains(t, text, "Data Structures")
		assert.Contains(t, text, "Faculty: Prof. Rao")
		assert.NotContains(t, text, "Signals and Systems")
	})

	t.Run("all departments", func(t *testing.T) {
		text, err := store.Timetable(ctx, "monday", "")
		require.NoError(t, err)
		assert.Contains(t, text, "Timetable for Monday:")
		assert.Contains(t, text, "CSE Department:")
		assert.Contains(t, text, "ECE Department:")
		assert.Contains(t, text, "Signals and Systems")
	})

	t.Run("sunday holiday", func(t *testing.T) {
		text, err := store.Timetable(ctx, "sunday", "")
		require.NoError(t, err)
		assert.Equal(t, "Sunday is a holiday. No classes scheduled.", text)
	})

	t.Run("unknown day", func(t *testing.T) {
		text, err := store.Timetable(ctx, "friday", "CSE")
		require.NoError(t, err)
		assert.Equal(t, "No timetable available for Friday.", text)
	})

	t.Run("department with no slots that day", func(t *testing.T) {
		text, err := store.Timetable(ctx, "monday", "MECH")
		require.NoError(t, err)
		assert.Equal(t, "No schedule found for MECH department on Monday.", text)
	})

	t.Run("lowercases day and uppercases department", func(t *testing.T) {
		text, err := store.Timetable(ctx, "Monday", "cse")
		require.NoError(t, err)
		assert.Contains(t, text, "CSE Schedule for Monday:")
	})
}

func TestExamSchedule(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("department exams", func(t *testing.T) {
		text, err := store.ExamSchedule(ctx, "CSE")
		require.NoError(t, err)
		assert.Contains(t, text, "Upcoming Exams for CSE:")
		assert.Contains(t, text, "Date: 2026-01-08 (Thursday)")
		assert.Contains(t, text, "Type: Internal")
	})

	t.Run("summary with rules", func(t *testing.T) {
		text, err := store.ExamSchedule(ctx, "")
		require.NoError(t, err)
		assert.Contains(t, text, "Upcoming Examination Schedule:")
		assert.Contains(t, text, "CSE Department:")
		assert.Contains(t, text, "ECE Department:")
		assert.Contains(t, text, "Important Rules:")
		assert.Contains(t, text, "Carry your ID card and hall ticket")
	})

	t.Run("unknown department", func(t *testing.T) {
		text, err := store.ExamSchedule(ctx, "MECH")
		require.NoError(t, err)
		assert.Equal(t, "No exam schedule found for MECH department.", text)
	})
}

func TestExamsOnDate(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	exams, err := store.ExamsOnDate(ctx, "2026-01-08", "")
	require.NoError(t, err)
	assert.Len(t, exams, 2)

	exams, err = store.ExamsOnDate(ctx, "2026-01-08", "ECE")
	require.NoError(t, err)
	require.Len(t, exams, 1)
	assert.Equal(t, "Digital Circuits", exams[0].Subject)

	exams, err = store.ExamsOnDate(ctx, "2026-06-01", "")
	require.NoError(t, err)
	assert.Empty(t, exams)
}

func TestDepartmentInfo(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("full record", func(t *testing.T) {
		text, err := store.DepartmentInfo(ctx, "CSE")
		require.NoError(t, err)
		assert.Contains(t, text, "Computer Science and Engineering (CSE)")
		assert.Contains(t, text, "HOD: Dr. A. Kumar")
		assert.Contains(t, text, "Labs: AI Lab, Networks Lab")
		assert.Contains(t, text, "Placement Rate: 92%")
	})

	t.Run("unknown code lists valid ones", func(t *testing.T) {
		text, err := store.DepartmentInfo(ctx, "AERO")
		require.NoError(t, err)
		assert.Equal(t, "Department 'AERO' not found. Available: CSE, ECE, MECH, CIVIL, EEE", text)
	})

	t.Run("directory", func(t *testing.T) {
		text, err := store.DepartmentInfo(ctx, "")
		require.NoError(t, err)
		assert.Contains(t, text, "Available Departments:")
		assert.Contains(t, text, "CSE - Computer Science and Engineering")
		assert.Contains(t, text, "ECE - Electronics and Communication Engineering")
	})
}

func TestFacilityInfo(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("canonical key", func(t *testing.T) {
		text, err := store.FacilityInfo(ctx, "library")
		require.NoError(t, err)
		assert.Contains(t, text, "Central Library")
		assert.Contains(t, text, "Services: Book lending, Reading hall")
	})

	t.Run("alias resolves to canonical record", func(t *testing.T) {
		text, err := store.FacilityInfo(ctx, "gym")
		require.NoError(t, err)
		assert.Contains(t, text, "Sports Complex")
	})

	t.Run("unknown facility", func(t *testing.T) {
		text, err := store.FacilityInfo(ctx, "pool")
		require.NoError(t, err)
		assert.Equal(t, "Information about 'pool' is not available.", text)
	})

	t.Run("alias with no record", func(t *testing.T) {
		text, err := store.FacilityInfo(ctx, "bus")
		require.NoError(t, err)
		assert.Equal(t, "Information about 'bus' is not available.", text)
	})

	t.Run("directory", func(t *testing.T) {
		text, err := store.FacilityInfo(ctx, "")
		require.NoError(t, err)
		assert.Contains(t, text, "Campus Facilities:")
		assert.Contains(t, text, "- Central Library")
		assert.Contains(t, text, "Say 'Tell me about [facility name]' for details.")
	})
}

func TestEvents(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	text, err := store.Events(context.Background())
	require.NoError(t, err)
	assert.Contains(t, text, "Upcoming Events:")
	assert.Contains(t, text, "TechFest 2026")
	assert.Contains(t, text, "Venue: Main Auditorium")
}

func TestEventsEmpty(t *testing.T) {
	t.Parallel()

	db, err := storage.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewSQLStore(db, time.Minute, nil, logger.NewWithWriter("error", io.Discard))
	text, err := store.Events(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "No upcoming events scheduled.", text)
}

func TestSearchFAQ(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("best keyword overlap wins", func(t *testing.T) {
		text, found, err := store.SearchFAQ(ctx, "how do i apply for internet access")
		require.NoError(t, err)
		require.True(t, found)
		assert.Contains(t, text, "How do I apply for internet access?")
		assert.Contains(t, text, "Raise a ticket with the IT cell.")
	})

	t.Run("tie keeps first declared record", func(t *testing.T) {
		// "internet" alone scores 1 for both the wifi FAQ and the
		// internet-access FAQ.
		text, found, err := store.SearchFAQ(ctx, "internet")
		require.NoError(t, err)
		require.True(t, found)
		assert.Contains(t, text, "How do I connect to campus WiFi?")
	})

	t.Run("no overlap", func(t *testing.T) {
		_, found, err := store.SearchFAQ(ctx, "where is the parking lot")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestImportantContacts(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	text, err := store.ImportantContacts(context.Background())
	require.NoError(t, err)
	assert.Contains(t, text, "Important Contacts:")
	assert.Contains(t, text, "Campus Security: 080-1234-5600")
	assert.Contains(t, text, "Medical Emergency: 080-1234-5611")
}

func TestCachedResponses(t *testing.T) {
	t.Parallel()

	store, db := newTestStore(t)
	ctx := context.Background()

	first, err := store.Events(ctx)
	require.NoError(t, err)

	// New data is invisible until the cache entry expires.
	require.NoError(t, db.SaveEventsBatch(ctx, []storage.Event{
		{Ordinal: 1, Name: "Sports Day", Date: "2026-03-01", Venue: "Sports Ground"},
	}))
	second, err := store.Events(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotContains(t, second, "Sports Day")
}

type failingReader struct {
	storage.Reader
}

var errDiskGone = errors.New("disk I/O error")

func (failingReader) GetDaySlots(ctx context.Context, day string) ([]storage.ClassSlot, error) {
	return nil, errDiskGone
}

func TestStoreFailure(t *testing.T) {
	t.Parallel()

	store := NewSQLStore(failingReader{}, time.Minute, nil, logger.NewWithWriter("error", io.Discard))

	_, err := store.Timetable(context.Background(), "monday", "CSE")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domerrors.ErrStoreUnavailable))
	assert.Equal(t, "Sorry, I'm having trouble accessing campus information right now.", domerrors.GetUserMessage(err))
	assert.True(t, strings.Contains(err.Error(), "knowledge"))
}
