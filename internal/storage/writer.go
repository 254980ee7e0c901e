package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SaveClassSlotsBatch upserts timetable slots in a single transaction.
func (db *DB) SaveClassSlotsBatch(ctx context.Context, slots []ClassSlot) error {
	if len(slots) == 0 {
		return nil
	}

	query := `
		INSERT INTO timetable_slots (day, department, ordinal, time, subject, room, faculty)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(day, department, ordinal) DO UPDATE SET
			time = excluded.time,
			subject = excluded.subject,
			room = excluded.room,
			faculty = excluded.faculty
	`
	return db.execBatch(ctx, query, func(stmt *sql.Stmt) error {
		for _, s := range slots {
			_, err := stmt.ExecContext(ctx, s.Day, s.Department, s.Ordinal, s.Time, s.Subject, s.Room, s.Faculty)
			if err != nil {
				return fmt.Errorf("failed to save class slot %s/%s/%d: %w", s.Day, s.Department, s.Ordinal, err)
			}
		}
		return nil
	})
}

// SaveExamsBatch upserts exams in a single transaction.
func (db *DB) SaveExamsBatch(ctx context.Context, exams []Exam) error {
	if len(exams) == 0 {
		return nil
	}

	query := `
		INSERT INTO exams (department, ordinal, subject, date, day, time, room, type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(department, ordinal) DO UPDATE SET
			subject = excluded.subject,
			date = excluded.date,
			day = excluded.day,
			time = excluded.time,
			room = excluded.room,
			type = excluded.type
	`
	return db.execBatch(ctx, query, func(stmt *sql.Stmt) error {
		for _, e := range exams {
			_, err := stmt.ExecContext(ctx, e.Department, e.Ordinal, e.Subject, e.Date, e.Day, e.Time, e.Room, e.Type)
			if err != nil {
				return fmt.Errorf("failed to save exam %s/%d: %w", e.Department, e.Ordinal, err)
			}
		}
		return nil
	})
}

// SaveExamRulesBatch upserts examination rules in a single transaction.
func (db *DB) SaveExamRulesBatch(ctx context.Context, rules []ExamRule) error {
	if len(rules) == 0 {
		return nil
	}

	query := `
		INSERT INTO exam_rules (ordinal, rule)
		VALUES (?, ?)
		ON CONFLICT(ordinal) DO UPDATE SET rule = excluded.rule
	`
	return db.execBatch(ctx, query, func(stmt *sql.Stmt) error {
		for _, r := range rules {
			if _, err := stmt.ExecContext(ctx, r.Ordinal, r.Rule); err != nil {
				return fmt.Errorf("failed to save exam rule %d: %w", r.Ordinal, err)
			}
		}
		return nil
	})
}

// SaveDepartmentsBatch upserts departments in a single transaction.
func (db *DB) SaveDepartmentsBatch(ctx context.Context, departments []Department) error {
	if len(departments) == 0 {
		return nil
	}

	query := `
		INSERT INTO departments (
			code, full_name, hod, hod_contact, office, phone,
			established, total_faculty, total_students, labs,
			average_package, highest_package, placement_rate
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			full_name = excluded.full_name,
			hod = excluded.hod,
			hod_contact = excluded.hod_contact,
			office = excluded.office,
			phone = excluded.phone,
			established = excluded.established,
			total_faculty = excluded.total_faculty,
			total_students = excluded.total_students,
			labs = excluded.labs,
			average_package = excluded.average_package,
			highest_package = excluded.highest_package,
			placement_rate = excluded.placement_rate
	`
	return db.execBatch(ctx, query, func(stmt *sql.Stmt) error {
		for _, d := range departments {
			labs, err := marshalStrings(d.Labs)
			if err != nil {
				return fmt.Errorf("failed to encode labs for %s: %w", d.Code, err)
			}
			_, err = stmt.ExecContext(ctx,
				d.Code, d.FullName, d.HOD, d.HODContact, d.Office, d.Phone,
				d.Established, d.TotalFaculty, d.TotalStudents, labs,
				d.AveragePackage, d.HighestPackage, d.PlacementRate,
			)
			if err != nil {
				return fmt.Errorf("failed to save department %s: %w", d.Code, err)
			}
		}
		return nil
	})
}

// SaveFacilitiesBatch upserts facilities in a single transaction.
func (db *DB) SaveFacilitiesBatch(ctx context.Context, facilities []Facility) error {
	if len(facilities) == 0 {
		return nil
	}

	query := `
		INSERT INTO facilities (key, name, location, timings, incharge, contact, services, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			name = excluded.name,
			location = excluded.location,
			timings = excluded.timings,
			incharge = excluded.incharge,
			contact = excluded.contact,
			services = excluded.services,
			notes = excluded.notes
	`
	return db.execBatch(ctx, query, func(stmt *sql.Stmt) error {
		for _, f := range facilities {
			services, err := marshalStrings(f.Services)
			if err != nil {
				return fmt.Errorf("failed to encode services for %s: %w", f.Key, err)
			}
			notes, err := marshalStrings(f.Notes)
			if err != nil {
				return fmt.Errorf("failed to encode notes for %s: %w", f.Key, err)
			}
			_, err = stmt.ExecContext(ctx, f.Key, f.Name, f.Location, f.Timings, f.Incharge, f.Contact, services, notes)
			if err != nil {
				return fmt.Errorf("failed to save facility %s: %w", f.Key, err)
			}
		}
		return nil
	})
}

// SaveEventsBatch upserts events in a single transaction.
func (db *DB) SaveEventsBatch(ctx context.Context, events []Event) error {
	if len(events) == 0 {
		return nil
	}

	query := `
		INSERT INTO events (ordinal, name, date, venue, description)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(ordinal) DO UPDATE SET
			name = excluded.name,
			date = excluded.date,
			venue = excluded.venue,
			description = excluded.description
	`
	return db.execBatch(ctx, query, func(stmt *sql.Stmt) error {
		for _, e := range events {
			if _, err := stmt.ExecContext(ctx, e.Ordinal, e.Name, e.Date, e.Venue, e.Description); err != nil {
				return fmt.Errorf("failed to save event %d: %w", e.Ordinal, err)
			}
		}
		return nil
	})
}

// SaveFAQsBatch upserts FAQ records in a single transaction.
func (db *DB) SaveFAQsBatch(ctx context.Context, faqs []FAQ) error {
	if len(faqs) == 0 {
		return nil
	}

	query := `
		INSERT INTO faqs (ordinal, keywords, question, answer)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(ordinal) DO UPDATE SET
			keywords = excluded.keywords,
			question = excluded.question,
			answer = excluded.answer
	`
	return db.execBatch(ctx, query, func(stmt *sql.Stmt) error {
		for _, f := range faqs {
			keywords, err := marshalStrings(f.Keywords)
			if err != nil {
				return fmt.Errorf("failed to encode keywords for faq %d: %w", f.Ordinal, err)
			}
			if _, err := stmt.ExecContext(ctx, f.Ordinal, keywords, f.Question, f.Answer); err != nil {
				return fmt.Errorf("failed to save faq %d: %w", f.Ordinal, err)
			}
		}
		return nil
	})
}

// SaveImportantContactsBatch upserts the emergency contact directory in a single transaction.
func (db *DB) SaveImportantContactsBatch(ctx context.Context, contacts []ImportantContact) error {
	if len(contacts) == 0 {
		return nil
	}

	query := `
		INSERT INTO important_contacts (ordinal, name, number)
		VALUES (?, ?, ?)
		ON CONFLICT(ordinal) DO UPDATE SET
			name = excluded.name,
			number = excluded.number
	`
	return db.execBatch(ctx, query, func(stmt *sql.Stmt) error {
		for _, c := range contacts {
			if _, err := stmt.ExecContext(ctx, c.Ordinal, c.Name, c.Number); err != nil {
				return fmt.Errorf("failed to save important contact %d: %w", c.Ordinal, err)
			}
		}
		return nil
	})
}
