package knowledge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	domerrors "github.com/campusvoice/campus-assistant-go/internal/errors"
	"github.com/campusvoice/campus-assistant-go/internal/logger"
	"github.com/campusvoice/campus-assistant-go/internal/metrics"
	"github.com/campusvoice/campus-assistant-go/internal/storage"
	"github.com/campusvoice/campus-assistant-go/internal/stringutil"
)

const storeFailureMessage = "Sorry, I'm having trouble accessing campus information right now."

// DepartmentCodes lists the valid codes in directory order. Used in the
// unknown-department sentence and by startup cache warming.
var DepartmentCodes = []string{"CSE", "ECE", "MECH", "CIVIL", "EEE"}

// facilityAliasKeys maps accepted facility names to canonical record keys.
// Canonical keys map to themselves.
var facilityAliasKeys = map[string]string{
	"library":       "library",
	"canteen":       "canteen",
	"food":          "canteen",
	"hostel":        "hostel",
	"accommodation": "hostel",
	"sports":        "sports",
	"gym":           "sports",
	"medical":       "medical",
	"hospital":      "medical",
	"health":        "medical",
	"bus":           "transport",
	"transport":     "transport",
}

// SQLStore implements Store over the SQLite repositories. Rendered responses
// for key-addressable lookups are memoized in a TTL cache.
type SQLStore struct {
	reader  storage.Reader
	cache   *gocache.Cache
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewSQLStore builds a Store over reader. cacheTTL bounds how long rendered
// responses are served without re-reading the database. metrics may be nil.
func NewSQLStore(reader storage.Reader, cacheTTL time.Duration, m *metrics.Metrics, log *logger.Logger) *SQLStore {
	return &SQLStore{
		reader:  reader,
		cache:   gocache.New(cacheTTL, 2*cacheTTL),
		metrics: m,
		log:     log.WithModule("knowledge"),
	}
}

var _ Store = (*SQLStore)(nil)

// storeErr classifies a repository failure as a store-unavailable error.
func (s *SQLStore) storeErr(operation string, err error) error {
	s.log.WithError(err).Errorf("knowledge lookup %s failed", operation)
	s.metrics.RecordKnowledgeLookup(operation, "error")
	return domerrors.Wrap("knowledge", operation,
		fmt.Errorf("%w: %v", domerrors.ErrStoreUnavailable, err), storeFailureMessage)
}

// cached serves a rendered response from the TTL cache, rendering and
// storing it on a miss.
func (s *SQLStore) cached(operation, key string, render func() (string, error)) (string, error) {
	if text, ok := s.cache.Get(key); ok {
		s.metrics.RecordCacheHit(operation)
		return text.(string), nil
	}
	s.metrics.RecordCacheMiss(operation)

	text, err := render()
	if err != nil {
		return "", err
	}
	s.cache.Set(key, text, gocache.DefaultExpiration)
	return text, nil
}

func titleDay(day string) string {
	return stringutil.Title(day)
}

// Timetable renders the class schedule for a lowercase weekday. An empty
// department renders every department's schedule for that day.
func (s *SQLStore) Timetable(ctx context.Context, day, department string) (string, error) {
	day = strings.ToLower(day)
	department = strings.ToUpper(department)
	key := "timetable|" + day + "|" + department

	return s.cached("timetable", key, func() (string, error) {
		slots, err := s.reader.GetDaySlots(ctx, day)
		if err != nil {
			return "", s.storeErr("timetable", err)
		}

		if len(slots) == 0 {
			s.metrics.RecordKnowledgeLookup("timetable", "missing")
			if day == "sunday" {
				return "Sunday is a holiday. No classes scheduled.", nil
			}
			return fmt.Sprintf("No timetable available for %s.", titleDay(day)), nil
		}

		if department != "" {
			var deptSlots []storage.ClassSlot
			for _, slot := range slots {
				if slot.Department == department {
					deptSlots = append(deptSlots, slot)
				}
			}
			if len(deptSlots) == 0 {
				s.metrics.RecordKnowledgeLookup("timetable", "missing")
				return fmt.Sprintf("No schedule found for %s department on %s.", department, titleDay(day)), nil
			}

			s.metrics.RecordKnowledgeLookup("timetable", "found")
			var b strings.Builder
			fmt.Fprintf(&b, "%s Schedule for %s:\n", department, titleDay(day))
			for _, slot := range deptSlots {
				fmt.Fprintf(&b, "\n%s\n", slot.Time)
				fmt.Fprintf(&b, "  Subject: %s\n", slot.Subject)
				fmt.Fprintf(&b, "  Room: %s\n", slot.Room)
				fmt.Fprintf(&b, "  Faculty: %s\n", slot.Faculty)
			}
			return b.String(), nil
		}

		s.metrics.RecordKnowledgeLookup("timetable", "found")
		var b strings.Builder
		fmt.Fprintf(&b, "Timetable for %s:\n", titleDay(day))
		current := ""
		for _, slot := range slots {
			if slot.Department != current {
				current = slot.Department
				fmt.Fprintf(&b, "\n%s Department:\n", current)
			}
			fmt.Fprintf(&b, "  %s - %s (%s)\n", slot.Time, slot.Subject, slot.Room)
		}
		return b.String(), nil
	})
}

// ExamSchedule renders upcoming exams for a department, or a summary of the
// first three exams per department plus the top exam rules when department
// is empty.
func (s *SQLStore) ExamSchedule(ctx context.Context, department string) (string, error) {
	department = strings.ToUpper(department)
	key := "exam|" + department

	return s.cached("exam", key, func() (string, error) {
		if department != "" {
			exams, err := s.reader.GetExamsByDepartment(ctx, department)
			if err != nil {
				return "", s.storeErr("exam", err)
			}
			if len(exams) == 0 {
				s.metrics.RecordKnowledgeLookup("exam", "missing")
				return fmt.Sprintf("No exam schedule found for %s department.", department), nil
			}

			s.metrics.RecordKnowledgeLookup("exam", "found")
			var b strings.Builder
			fmt.Fprintf(&b, "Upcoming Exams for %s:\n", department)
			for _, exam := range exams {
				fmt.Fprintf(&b, "\n%s\n", exam.Subject)
				fmt.Fprintf(&b, "  Date: %s (%s)\n", exam.Date, exam.Day)
				fmt.Fprintf(&b, "  Time: %s\n", exam.Time)
				fmt.Fprintf(&b, "  Room: %s\n", exam.Room)
				fmt.Fprintf(&b, "  Type: %s\n", exam.Type)
			}
			return b.String(), nil
		}

		exams, err := s.reader.GetAllExams(ctx)
		if err != nil {
			return "", s.storeErr("exam", err)
		}
		if len(exams) == 0 {
			s.metrics.RecordKnowledgeLookup("exam", "missing")
			return "Sorry, exam schedule is not available.", nil
		}

		s.metrics.RecordKnowledgeLookup("exam", "found")
		var b strings.Builder
		b.WriteString("Upcoming Examination Schedule:\n")
		current := ""
		shown := 0
		for _, exam := range exams {
			if exam.Department != current {
				current = exam.Department
				shown = 0
				fmt.Fprintf(&b, "\n%s Department:\n", current)
			}
			if shown < 3 {
				fmt.Fprintf(&b, "  - %s - %s (%s)\n", exam.Subject, exam.Date, exam.Time)
				shown++
			}
		}

		rules, err := s.reader.GetExamRules(ctx)
		if err != nil {
			return "", s.storeErr("exam", err)
		}
		if len(rules) > 0 {
			b.WriteString("\nImportant Rules:\n")
			for i, rule := range rules {
				if i == 3 {
					break
				}
				fmt.Fprintf(&b, "  - %s\n", rule.Rule)
			}
		}
		return b.String(), nil
	})
}

// ExamsOnDate returns the exams scheduled on a YYYY-MM-DD date, optionally
// filtered by department. Not cached: callers derive the date from the clock.
func (s *SQLStore) ExamsOnDate(ctx context.Context, date, department string) ([]storage.Exam, error) {
	exams, err := s.reader.GetExamsOnDate(ctx, date, strings.ToUpper(department))
	if err != nil {
		return nil, s.storeErr("exam", err)
	}
	if len(exams) == 0 {
		s.metrics.RecordKnowledgeLookup("exam", "missing")
	} else {
		s.metrics.RecordKnowledgeLookup("exam", "found")
	}
	return exams, nil
}

// DepartmentInfo renders a department record, or the directory of all
// departments when department is empty.
func (s *SQLStore) DepartmentInfo(ctx context.Context, department string) (string, error) {
	department = strings.ToUpper(department)
	key := "department|" + department

	return s.cached("department", key, func() (string, error) {
		if department != "" {
			dept, err := s.reader.GetDepartment(ctx, department)
			if errors.Is(err, domerrors.ErrNotFound) {
				s.metrics.RecordKnowledgeLookup("department", "missing")
				return fmt.Sprintf("Department '%s' not found. Available: %s",
					department, strings.Join(DepartmentCodes, ", ")), nil
			}
			if err != nil {
				return "", s.storeErr("department", err)
			}

			s.metrics.RecordKnowledgeLookup("department", "found")
			var b strings.Builder
			fmt.Fprintf(&b, "%s (%s)\n\n", dept.FullName, dept.Code)
			fmt.Fprintf(&b, "HOD: %s\n", dept.HOD)
			fmt.Fprintf(&b, "Email: %s\n", dept.HODContact)
			fmt.Fprintf(&b, "Office: %s\n", dept.Office)
			fmt.Fprintf(&b, "Phone: %s\n", dept.Phone)
			fmt.Fprintf(&b, "Established: %d\n", dept.Established)
			fmt.Fprintf(&b, "Total Faculty: %d\n", dept.TotalFaculty)
			fmt.Fprintf(&b, "Total Students: %d\n", dept.TotalStudents)
			fmt.Fprintf(&b, "\nLabs: %s\n", strings.Join(dept.Labs, ", "))
			b.WriteString("\nPlacements:\n")
			fmt.Fprintf(&b, "  Average Package: %s\n", dept.AveragePackage)
			fmt.Fprintf(&b, "  Highest Package: %s\n", dept.HighestPackage)
			fmt.Fprintf(&b, "  Placement Rate: %s\n", dept.PlacementRate)
			return b.String(), nil
		}

		departments, err := s.reader.GetAllDepartments(ctx)
		if err != nil {
			return "", s.storeErr("department", err)
		}
		if len(departments) == 0 {
			s.metrics.RecordKnowledgeLookup("department", "missing")
			return "Sorry, department information is not available.", nil
		}

		s.metrics.RecordKnowledgeLookup("department", "found")
		var b strings.Builder
		b.WriteString("Available Departments:\n")
		for _, dept := range departments {
			fmt.Fprintf(&b, "\n%s - %s\n", dept.Code, dept.FullName)
			fmt.Fprintf(&b, "  HOD: %s\n", dept.HOD)
			fmt.Fprintf(&b, "  Office: %s\n", dept.Office)
		}
		return b.String(), nil
	})
}

// FacilityInfo renders a facility record by canonical key or accepted alias,
// or the facility directory when facility is empty.
func (s *SQLStore) FacilityInfo(ctx context.Context, facility string) (string, error) {
	facility = strings.ToLower(facility)
	key := "facility|" + facility

	return s.cached("facility", key, func() (string, error) {
		if facility != "" {
			canonical, ok := facilityAliasKeys[facility]
			if !ok {
				s.metrics.RecordKnowledgeLookup("facility", "missing")
				return fmt.Sprintf("Information about '%s' is not available.", facility), nil
			}

			record, err := s.reader.GetFacility(ctx, canonical)
			if errors.Is(err, domerrors.ErrNotFound) {
				s.metrics.RecordKnowledgeLookup("facility", "missing")
				return fmt.Sprintf("Information about '%s' is not available.", facility), nil
			}
			if err != nil {
				return "", s.storeErr("facility", err)
			}

			s.metrics.RecordKnowledgeLookup("facility", "found")
			var b strings.Builder
			fmt.Fprintf(&b, "%s\n\n", record.Name)
			if record.Location != "" {
				fmt.Fprintf(&b, "Location: %s\n", record.Location)
			}
			if record.Timings != "" {
				fmt.Fprintf(&b, "Timings: %s\n", record.Timings)
			}
			if record.Incharge != "" {
				fmt.Fprintf(&b, "Incharge: %s\n", record.Incharge)
			}
			if record.Contact != "" {
				fmt.Fprintf(&b, "Contact: %s\n", record.Contact)
			}
			if len(record.Services) > 0 {
				fmt.Fprintf(&b, "Services: %s\n", strings.Join(record.Services, ", "))
			}
			for _, note := range record.Notes {
				fmt.Fprintf(&b, "%s\n", note)
			}
			return b.String(), nil
		}

		facilities, err := s.reader.GetAllFacilities(ctx)
		if err != nil {
			return "", s.storeErr("facility", err)
		}
		if len(facilities) == 0 {
			s.metrics.RecordKnowledgeLookup("facility", "missing")
			return "Sorry, facility information is not available.", nil
		}

		s.metrics.RecordKnowledgeLookup("facility", "found")
		var b strings.Builder
		b.WriteString("Campus Facilities:\n\n")
		for _, record := range facilities {
			fmt.Fprintf(&b, "- %s\n", record.Name)
		}
		b.WriteString("\nSay 'Tell me about [facility name]' for details.")
		return b.String(), nil
	})
}

// Events renders the upcoming events list.
func (s *SQLStore) Events(ctx context.Context) (string, error) {
	return s.cached("event", "event", func() (string, error) {
		events, err := s.reader.GetEvents(ctx)
		if err != nil {
			return "", s.storeErr("event", err)
		}
		if len(events) == 0 {
			s.metrics.RecordKnowledgeLookup("event", "missing")
			return "No upcoming events scheduled.", nil
		}

		s.metrics.RecordKnowledgeLookup("event", "found")
		var b strings.Builder
		b.WriteString("Upcoming Events:\n")
		for _, event := range events {
			fmt.Fprintf(&b, "\n%s\n", event.Name)
			fmt.Fprintf(&b, "  Date: %s\n", event.Date)
			fmt.Fprintf(&b, "  Venue: %s\n", event.Venue)
			if event.Description != "" {
				fmt.Fprintf(&b, "  %s\n", event.Description)
			}
		}
		return b.String(), nil
	})
}

// SearchFAQ scores FAQ records by counting how many of each record's
// keywords occur in the lowercase query text. Strictly higher scores win,
// so the first declared record keeps ties. A zero best score means no match.
func (s *SQLStore) SearchFAQ(ctx context.Context, queryText string) (string, bool, error) {
	faqs, err := s.reader.GetFAQs(ctx)
	if err != nil {
		return "", false, s.storeErr("faq", err)
	}

	queryLower := strings.ToLower(queryText)
	var best *storage.FAQ
	bestScore := 0
	for i := range faqs {
		score := 0
		for _, keyword := range faqs[i].Keywords {
			if strings.Contains(queryLower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = &faqs[i]
		}
	}

	if best == nil {
		s.metrics.RecordKnowledgeLookup("faq", "missing")
		return "", false, nil
	}

	s.metrics.RecordKnowledgeLookup("faq", "found")
	return fmt.Sprintf("%s\n\n%s", best.Question, best.Answer), true, nil
}

// ImportantContacts renders the emergency contact directory.
func (s *SQLStore) ImportantContacts(ctx context.Context) (string, error) {
	return s.cached("contact", "contact", func() (string, error) {
		contacts, err := s.reader.GetImportantContacts(ctx)
		if err != nil {
			return "", s.storeErr("contact", err)
		}
		if len(contacts) == 0 {
			s.metrics.RecordKnowledgeLookup("contact", "missing")
			return "Sorry, contact information is not available.", nil
		}

		s.metrics.RecordKnowledgeLookup("contact", "found")
		var b strings.Builder
		b.WriteString("Important Contacts:\n\n")
		for _, contact := range contacts {
			fmt.Fprintf(&b, "%s: %s\n", contact.Name, contact.Number)
		}
		return b.String(), nil
	})
}
