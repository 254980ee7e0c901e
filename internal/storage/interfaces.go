package storage

import "context"

// Reader defines the read-side interface over campus knowledge data.
// It decouples the knowledge layer from the concrete SQLite implementation
// and facilitates testing with in-memory fakes.
type Reader interface {
	// Timetable
	GetClassSlots(ctx context.Context, day, department string) ([]ClassSlot, error)
	GetDaySlots(ctx context.Context, day string) ([]ClassSlot, error)
	CountClassSlots(ctx context.Context) (int, error)

	// Exams
	GetExamsByDepartment(ctx context.Context, department string) ([]Exam, error)
	GetAllExams(ctx context.Context) ([]Exam, error)
	GetExamsOnDate(ctx context.Context, date, department string) ([]Exam, error)
	GetExamRules(ctx context.Context) ([]ExamRule, error)

	// Departments
	GetDepartment(ctx context.Context, code string) (*Department, error)
	GetAllDepartments(ctx context.Context) ([]Department, error)

	// Facilities
	GetFacility(ctx context.Context, key string) (*Facility, error)
	GetAllFacilities(ctx context.Context) ([]Facility, error)

	// Events, FAQs, contacts
	GetEvents(ctx context.Context) ([]Event, error)
	GetFAQs(ctx context.Context) ([]FAQ, error)
	GetImportantContacts(ctx context.Context) ([]ImportantContact, error)
}

// Writer defines the write-side interface used by the seed loader and tests.
type Writer interface {
	SaveClassSlotsBatch(ctx context.Context, slots []ClassSlot) error
	SaveExamsBatch(ctx context.Context, exams []Exam) error
	SaveExamRulesBatch(ctx context.Context, rules []ExamRule) error
	SaveDepartmentsBatch(ctx context.Context, departments []Department) error
	SaveFacilitiesBatch(ctx context.Context, facilities []Facility) error
	SaveEventsBatch(ctx context.Context, events []Event) error
	SaveFAQsBatch(ctx context.Context, faqs []FAQ) error
	SaveImportantContactsBatch(ctx context.Context, contacts []ImportantContact) error
}

// Compile-time checks that DB satisfies both interfaces.
var (
	_ Reader = (*DB)(nil)
	_ Writer = (*DB)(nil)
)
