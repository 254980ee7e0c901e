package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	domerrors "github.com/campusvoice/campus-assistant-go/internal/errors"
)

// marshalStrings encodes a string slice as JSON for a TEXT column.
// A nil or empty slice encodes as "[]".
func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(data), nil
}

// unmarshalStrings decodes a JSON TEXT column into a string slice.
// Empty or NULL columns decode to nil.
func unmarshalStrings(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" || raw.String == "[]" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw.String), &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal string list: %w", err)
	}
	return values, nil
}

// GetClassSlots retrieves the ordered class slots for a day and department.
// Returns an empty slice when no schedule exists for the combination.
func (db *DB) GetClassSlots(ctx context.Context, day, department string) ([]ClassSlot, error) {
	query := `
		SELECT day, department, ordinal, time, subject, room, faculty
		FROM timetable_slots
		WHERE day = ? AND department = ?
		ORDER BY ordinal
	`
	return db.queryClassSlots(ctx, query, day, department)
}

// GetDaySlots retrieves all class slots for a day across departments,
// ordered by department then slot position.
func (db *DB) GetDaySlots(ctx context.Context, day string) ([]ClassSlot, error) {
	query := `
		SELECT day, department, ordinal, time, subject, room, faculty
		FROM timetable_slots
		WHERE day = ?
		ORDER BY department, ordinal
	`
	return db.queryClassSlots(ctx, query, day)
}

func (db *DB) queryClassSlots(ctx context.Context, query string, args ...any) ([]ClassSlot, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query class slots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var slots []ClassSlot
	for rows.Next() {
		var s ClassSlot
		var room, faculty sql.NullString
		if err := rows.Scan(&s.Day, &s.Department, &s.Ordinal, &s.Time, &s.Subject, &room, &faculty); err != nil {
			return nil, fmt.Errorf("failed to scan class slot: %w", err)
		}
		s.Room = room.String
		s.Faculty = faculty.String
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// CountClassSlots returns the total number of timetable slots.
func (db *DB) CountClassSlots(ctx context.Context) (int, error) {
	var count int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM timetable_slots`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count class slots: %w", err)
	}
	return count, nil
}

// GetExamsByDepartment retrieves the ordered upcoming exams for a department.
func (db *DB) GetExamsByDepartment(ctx context.Context, department string) ([]Exam, error) {
	query := `
		SELECT department, ordinal, subject, date, day, time, room, type
		FROM exams
		WHERE department = ?
		ORDER BY ordinal
	`
	return db.queryExams(ctx, query, department)
}

// GetAllExams retrieves all upcoming exams ordered by department then position.
func (db *DB) GetAllExams(ctx context.Context) ([]Exam, error) {
	query := `
		SELECT department, ordinal, subject, date, day, time, room, type
		FROM exams
		ORDER BY department, ordinal
	`
	return db.queryExams(ctx, query)
}

// GetExamsOnDate retrieves exams scheduled on the given date (YYYY-MM-DD),
// optionally filtered by department. Department matching is empty-string-or-equal.
func (db *DB) GetExamsOnDate(ctx context.Context, date, department string) ([]Exam, error) {
	query := `
		SELECT department, ordinal, subject, date, day, time, room, type
		FROM exams
		WHERE date = ? AND (? = '' OR department = ?)
		ORDER BY department, ordinal
	`
	return db.queryExams(ctx, query, date, department, department)
}

func (db *DB) queryExams(ctx context.Context, query string, args ...any) ([]Exam, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query exams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var exams []Exam
	for rows.Next() {
		var e Exam
		var day, time, room, typ sql.NullString
		if err := rows.Scan(&e.Department, &e.Ordinal, &e.Subject, &e.Date, &day, &time, &room, &typ); err != nil {
			return nil, fmt.Errorf("failed to scan exam: %w", err)
		}
		e.Day = day.String
		e.Time = time.String
		e.Room = room.String
		e.Type = typ.String
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// GetExamRules retrieves the ordered examination rules.
func (db *DB) GetExamRules(ctx context.Context) ([]ExamRule, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT ordinal, rule FROM exam_rules ORDER BY ordinal`)
	if err != nil {
		return nil, fmt.Errorf("failed to query exam rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []ExamRule
	for rows.Next() {
		var r ExamRule
		if err := rows.Scan(&r.Ordinal, &r.Rule); err != nil {
			return nil, fmt.Errorf("failed to scan exam rule: %w", err)
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

// GetDepartment retrieves a department by canonical code.
// Returns ErrNotFound when the code is unknown.
func (db *DB) GetDepartment(ctx context.Context, code string) (*Department, error) {
	query := `
		SELECT code, full_name, hod, hod_contact, office, phone,
		       established, total_faculty, total_students, labs,
		       average_package, highest_package, placement_rate
		FROM departments
		WHERE code = ?
	`
	row := db.conn.QueryRowContext(ctx, query, code)
	dept, err := scanDepartment(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get department %s: %w", code, err)
	}
	return dept, nil
}

// GetAllDepartments retrieves all departments ordered by code.
func (db *DB) GetAllDepartments(ctx context.Context) ([]Department, error) {
	query := `
		SELECT code, full_name, hod, hod_contact, office, phone,
		       established, total_faculty, total_students, labs,
		       average_package, highest_package, placement_rate
		FROM departments
		ORDER BY code
	`
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var departments []Department
	for rows.Next() {
		dept, err := scanDepartment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, *dept)
	}
	return departments, rows.Err()
}

func scanDepartment(scan func(dest ...any) error) (*Department, error) {
	var d Department
	var hod, hodContact, office, phone sql.NullString
	var established, totalFaculty, totalStudents sql.NullInt64
	var labs, avgPkg, highPkg, rate sql.NullString

	err := scan(
		&d.Code, &d.FullName, &hod, &hodContact, &office, &phone,
		&established, &totalFaculty, &totalStudents, &labs,
		&avgPkg, &highPkg, &rate,
	)
	if err != nil {
		return nil, err
	}

	d.HOD = hod.String
	d.HODContact = hodContact.String
	d.Office = office.String
	d.Phone = phone.String
	d.Established = int(established.Int64)
	d.TotalFaculty = int(totalFaculty.Int64)
	d.TotalStudents = int(totalStudents.Int64)
	d.AveragePackage = avgPkg.String
	d.HighestPackage = highPkg.String
	d.PlacementRate = rate.String

	d.Labs, err = unmarshalStrings(labs)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetFacility retrieves a facility by canonical key.
// Returns ErrNotFound when the key is unknown.
func (db *DB) GetFacility(ctx context.Context, key string) (*Facility, error) {
	query := `
		SELECT key, name, location, timings, incharge, contact, services, notes
		FROM facilities
		WHERE key = ?
	`
	row := db.conn.QueryRowContext(ctx, query, key)
	facility, err := scanFacility(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get facility %s: %w", key, err)
	}
	return facility, nil
}

// GetAllFacilities retrieves all facilities ordered by key.
func (db *DB) GetAllFacilities(ctx context.Context) ([]Facility, error) {
	query := `
		SELECT key, name, location, timings, incharge, contact, services, notes
		FROM facilities
		ORDER BY key
	`
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query facilities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var facilities []Facility
	for rows.Next() {
		facility, err := scanFacility(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan facility: %w", err)
		}
		facilities = append(facilities, *facility)
	}
	return facilities, rows.Err()
}

func scanFacility(scan func(dest ...any) error) (*Facility, error) {
	var f Facility
	var location, timings, incharge, contact, services, notes sql.NullString

	if err := scan(&f.Key, &f.Name, &location, &timings, &incharge, &contact, &services, &notes); err != nil {
		return nil, err
	}

	f.Location = location.String
	f.Timings = timings.String
	f.Incharge = incharge.String
	f.Contact = contact.String

	var err error
	if f.Services, err = unmarshalStrings(services); err != nil {
		return nil, err
	}
	if f.Notes, err = unmarshalStrings(notes); err != nil {
		return nil, err
	}
	return &f, nil
}

// GetEvents retrieves all upcoming events in declared order.
func (db *DB) GetEvents(ctx context.Context) ([]Event, error) {
	query := `SELECT ordinal, name, date, venue, description FROM events ORDER BY ordinal`
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []Event
	for rows.Next() {
		var e Event
		var date, venue, description sql.NullString
		if err := rows.Scan(&e.Ordinal, &e.Name, &date, &venue, &description); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Date = date.String
		e.Venue = venue.String
		e.Description = description.String
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetFAQs retrieves all FAQ records in declared order.
func (db *DB) GetFAQs(ctx context.Context) ([]FAQ, error) {
	query := `SELECT ordinal, keywords, question, answer FROM faqs ORDER BY ordinal`
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query faqs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var faqs []FAQ
	for rows.Next() {
		var f FAQ
		var keywords sql.NullString
		if err := rows.Scan(&f.Ordinal, &keywords, &f.Question, &f.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		var err error
		if f.Keywords, err = unmarshalStrings(keywords); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

// GetImportantContacts retrieves the emergency contact directory in declared order.
func (db *DB) GetImportantContacts(ctx context.Context) ([]ImportantContact, error) {
	query := `SELECT ordinal, name, number FROM important_contacts ORDER BY ordinal`
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query important contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var contacts []ImportantContact
	for rows.Next() {
		var c ImportantContact
		if err := rows.Scan(&c.Ordinal, &c.Name, &c.Number); err != nil {
			return nil, fmt.Errorf("failed to scan important contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
