// Package main loads the JSON knowledge files into the SQLite database the
// server reads from. Missing files are skipped with a warning so partial
// data sets can still be seeded.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/campusvoice/campus-assistant-go/internal/config"
	"github.com/campusvoice/campus-assistant-go/internal/logger"
	"github.com/campusvoice/campus-assistant-go/internal/sliceutil"
	"github.com/campusvoice/campus-assistant-go/internal/storage"
	"github.com/campusvoice/campus-assistant-go/internal/stringutil"
)

// timetableFile is timetable.json: day -> department -> ordered class slots.
type timetableFile map[string]map[string][]struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Room    string `json:"room"`
	Faculty string `json:"faculty"`
}

// examsFile is exams.json.
type examsFile struct {
	UpcomingExams map[string][]struct {
		Subject string `json:"subject"`
		Date    string `json:"date"`
		Day     string `json:"day"`
		Time    string `json:"time"`
		Room    string `json:"room"`
		Type    string `json:"type"`
	} `json:"upcoming_exams"`
	ExamRules []string `json:"exam_rules"`
}

// departmentsFile is departments.json.
type departmentsFile struct {
	Departments map[string]struct {
		FullName      string   `json:"full_name"`
		HOD           string   `json:"hod"`
		HODContact    string   `json:"hod_contact"`
		Office        string   `json:"office"`
		Phone         string   `json:"phone"`
		Established   int      `json:"established"`
		TotalFaculty  int      `json:"total_faculty"`
		TotalStudents int      `json:"total_students"`
		Labs          []string `json:"labs"`
		Placements    struct {
			AveragePackage string `json:"average_package"`
			HighestPackage string `json:"highest_package"`
			PlacementRate  string `json:"placement_rate"`
		} `json:"placements"`
	} `json:"departments"`
}

// campusInfoFile is campus_info.json.
type campusInfoFile struct {
	Facilities map[string]struct {
		Name     string   `json:"name"`
		Location string   `json:"location"`
		Timings  string   `json:"timings"`
		Incharge string   `json:"incharge"`
		Contact  string   `json:"contact"`
		Services []string `json:"services"`
		Notes    []string `json:"notes"`
	} `json:"facilities"`
	Events struct {
		Upcoming []struct {
			Name        string `json:"name"`
			Date        string `json:"date"`
			Venue       string `json:"venue"`
			Description string `json:"description"`
		} `json:"upcoming"`
	} `json:"events"`
	ImportantContacts map[string]string `json:"important_contacts"`
}

// faqsFile is faqs.json.
type faqsFile struct {
	FAQs []struct {
		Keywords []string `json:"keywords"`
		Question string   `json:"question"`
		Answer   string   `json:"answer"`
	} `json:"faqs"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel).WithModule("seed")

	db, err := storage.New(cfg.SQLitePath())
	if err != nil {
		log.WithError(err).Errorf("failed to open database")
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	log.WithField("seed_dir", cfg.SeedDir).
		WithField("database", cfg.SQLitePath()).
		Infof("seeding knowledge database")

	ctx := context.Background()
	failed := false

	if err := seedTimetable(ctx, db, cfg.SeedDir, log); err != nil {
		log.WithError(err).Errorf("timetable seeding failed")
		failed = true
	}
	if err := seedExams(ctx, db, cfg.SeedDir, log); err != nil {
		log.WithError(err).Errorf("exam seeding failed")
		failed = true
	}
	if err := seedDepartments(ctx, db, cfg.SeedDir, log); err != nil {
		log.WithError(err).Errorf("department seeding failed")
		failed = true
	}
	if err := seedCampusInfo(ctx, db, cfg.SeedDir, log); err != nil {
		log.WithError(err).Errorf("campus info seeding failed")
		failed = true
	}
	if err := seedFAQs(ctx, db, cfg.SeedDir, log); err != nil {
		log.WithError(err).Errorf("faq seeding failed")
		failed = true
	}

	if failed {
		os.Exit(1)
	}
	log.Infof("seeding complete")
}

// loadJSON decodes one seed file into v. A missing file is reported via the
// returned boolean, not an error.
func loadJSON(dir, name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return true, nil
}

// sortedKeys returns map keys in sorted order so ordinals are stable across
// runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func seedTimetable(ctx context.Context, db *storage.DB, dir string, log *logger.Logger) error {
	var file timetableFile
	found, err := loadJSON(dir, "timetable.json", &file)
	if err != nil {
		return err
	}
	if !found {
		log.Warnf("timetable.json not found, skipping")
		return nil
	}

	var slots []storage.ClassSlot
	for _, day := range sortedKeys(file) {
		departments := file[day]
		for _, dept := range sortedKeys(departments) {
			for i, entry := range departments[dept] {
				slots = append(slots, storage.ClassSlot{
					Day:        strings.ToLower(day),
					Department: strings.ToUpper(dept),
					Ordinal:    i,
					Time:       entry.Time,
					Subject:    entry.Subject,
					Room:       entry.Room,
					Faculty:    entry.Faculty,
				})
			}
		}
	}

	if err := db.SaveClassSlotsBatch(ctx, slots); err != nil {
		return err
	}
	log.WithField("count", len(slots)).Infof("timetable slots seeded")
	return nil
}

func seedExams(ctx context.Context, db *storage.DB, dir string, log *logger.Logger) error {
	var file examsFile
	found, err := loadJSON(dir, "exams.json", &file)
	if err != nil {
		return err
	}
	if !found {
		log.Warnf("exams.json not found, skipping")
		return nil
	}

	var exams []storage.Exam
	for _, dept := range sortedKeys(file.UpcomingExams) {
		for i, entry := range file.UpcomingExams[dept] {
			exams = append(exams, storage.Exam{
				Department: strings.ToUpper(dept),
				Ordinal:    i,
				Subject:    entry.Subject,
				Date:       entry.Date,
				Day:        entry.Day,
				Time:       entry.Time,
				Room:       entry.Room,
				Type:       entry.Type,
			})
		}
	}
	if err := db.SaveExamsBatch(ctx, exams); err != nil {
		return err
	}

	rules := make([]storage.ExamRule, 0, len(file.ExamRules))
	for i, rule := range file.ExamRules {
		rules = append(rules, storage.ExamRule{Ordinal: i, Rule: rule})
	}
	if err := db.SaveExamRulesBatch(ctx, rules); err != nil {
		return err
	}

	log.WithField("exams", len(exams)).WithField("rules", len(rules)).Infof("exams seeded")
	return nil
}

func seedDepartments(ctx context.Context, db *storage.DB, dir string, log *logger.Logger) error {
	var file departmentsFile
	found, err := loadJSON(dir, "departments.json", &file)
	if err != nil {
		return err
	}
	if !found {
		log.Warnf("departments.json not found, skipping")
		return nil
	}

	var departments []storage.Department
	for _, code := range sortedKeys(file.Departments) {
		entry := file.Departments[code]
		departments = append(departments, storage.Department{
			Code:           strings.ToUpper(code),
			FullName:       entry.FullName,
			HOD:            entry.HOD,
			HODContact:     entry.HODContact,
			Office:         entry.Office,
			Phone:          entry.Phone,
			Established:    entry.Established,
			TotalFaculty:   entry.TotalFaculty,
			TotalStudents:  entry.TotalStudents,
			Labs:           sliceutil.Deduplicate(entry.Labs, func(lab string) string { return lab }),
			AveragePackage: entry.Placements.AveragePackage,
			HighestPackage: entry.Placements.HighestPackage,
			PlacementRate:  entry.Placements.PlacementRate,
		})
	}

	if err := db.SaveDepartmentsBatch(ctx, departments); err != nil {
		return err
	}
	log.WithField("count", len(departments)).Infof("departments seeded")
	return nil
}

func seedCampusInfo(ctx context.Context, db *storage.DB, dir string, log *logger.Logger) error {
	var file campusInfoFile
	found, err := loadJSON(dir, "campus_info.json", &file)
	if err != nil {
		return err
	}
	if !found {
		log.Warnf("campus_info.json not found, skipping")
		return nil
	}

	var facilities []storage.Facility
	for _, key := range sortedKeys(file.Facilities) {
		entry := file.Facilities[key]
		facilities = append(facilities, storage.Facility{
			Key:      strings.ToLower(key),
			Name:     entry.Name,
			Location: entry.Location,
			Timings:  entry.Timings,
			Incharge: entry.Incharge,
			Contact:  entry.Contact,
			Services: entry.Services,
			Notes:    entry.Notes,
		})
	}
	if err := db.SaveFacilitiesBatch(ctx, facilities); err != nil {
		return err
	}

	var events []storage.Event
	for i, entry := range file.Events.Upcoming {
		events = append(events, storage.Event{
			Ordinal:     i,
			Name:        entry.Name,
			Date:        entry.Date,
			Venue:       entry.Venue,
			Description: entry.Description,
		})
	}
	if err := db.SaveEventsBatch(ctx, events); err != nil {
		return err
	}

	var contacts []storage.ImportantContact
	for i, name := range sortedKeys(file.ImportantContacts) {
		contacts = append(contacts, storage.ImportantContact{
			Ordinal: i,
			Name:    stringutil.TitleFromSnake(name),
			Number:  file.ImportantContacts[name],
		})
	}
	if err := db.SaveImportantContactsBatch(ctx, contacts); err != nil {
		return err
	}

	log.WithField("facilities", len(facilities)).
		WithField("events", len(events)).
		WithField("contacts", len(contacts)).
		Infof("campus info seeded")
	return nil
}

func seedFAQs(ctx context.Context, db *storage.DB, dir string, log *logger.Logger) error {
	var file faqsFile
	found, err := loadJSON(dir, "faqs.json", &file)
	if err != nil {
		return err
	}
	if !found {
		log.Warnf("faqs.json not found, skipping")
		return nil
	}

	var faqs []storage.FAQ
	for i, entry := range file.FAQs {
		faqs = append(faqs, storage.FAQ{
			Ordinal:  i,
			Keywords: sliceutil.Deduplicate(entry.Keywords, func(k string) string { return k }),
			Question: entry.Question,
			Answer:   entry.Answer,
		})
	}
	if err := db.SaveFAQsBatch(ctx, faqs); err != nil {
		return err
	}
	log.WithField("count", len(faqs)).Infof("faqs seeded")
	return nil
}
