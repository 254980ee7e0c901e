// Package knowledge exposes the read-only query contract the response
// synthesizer consumes. Missing data never produces an error: lookups render
// a user-facing sentence instead. Errors signal genuine store failures only.
package knowledge

import (
	"context"

	"github.com/campusvoice/campus-assistant-go/internal/storage"
)

// Store answers formatted knowledge queries for the assistant.
type Store interface {
	// Timetable renders the class schedule for a lowercase weekday and an
	// optional department code. An empty department renders all departments.
	Timetable(ctx context.Context, day, department string) (string, error)

	// ExamSchedule renders upcoming exams for a department, or a
	// cross-department summary with exam rules when department is empty.
	ExamSchedule(ctx context.Context, department string) (string, error)

	// ExamsOnDate returns the raw exams scheduled on a YYYY-MM-DD date,
	// optionally filtered by department.
	ExamsOnDate(ctx context.Context, date, department string) ([]storage.Exam, error)

	// DepartmentInfo renders a department record, or the department
	// directory when department is empty.
	DepartmentInfo(ctx context.Context, department string) (string, error)

	// FacilityInfo renders a facility record, or the facility directory
	// when facility is empty. Alias names (food, gym, hospital, bus) are
	// accepted alongside canonical keys.
	FacilityInfo(ctx context.Context, facility string) (string, error)

	// Events renders the upcoming events list.
	Events(ctx context.Context) (string, error)

	// SearchFAQ scores FAQ records by keyword overlap against the query
	// text and renders the best match. The boolean reports whether any
	// record matched.
	SearchFAQ(ctx context.Context, queryText string) (string, bool, error)

	// ImportantContacts renders the emergency contact directory.
	ImportantContacts(ctx context.Context) (string, error)
}
