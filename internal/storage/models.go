package storage

// ClassSlot represents one scheduled class in the weekly timetable.
// Ordinal preserves the declared order of slots within a day/department.
type ClassSlot struct {
	Day        string `json:"day"`
	Department string `json:"department"`
	Ordinal    int    `json:"ordinal"`
	Time       string `json:"time"`
	Subject    string `json:"subject"`
	Room       string `json:"room"`
	Faculty    string `json:"faculty"`
}

// Exam represents one upcoming examination for a department.
type Exam struct {
	Department string `json:"department"`
	Ordinal    int    `json:"ordinal"`
	Subject    string `json:"subject"`
	Date       string `json:"date"` // YYYY-MM-DD
	Day        string `json:"day"`
	Time       string `json:"time"`
	Room       string `json:"room"`
	Type       string `json:"type"` // e.g. "Internal", "Semester"
}

// ExamRule is one entry of the general examination rules list.
type ExamRule struct {
	Ordinal int    `json:"ordinal"`
	Rule    string `json:"rule"`
}

// Department holds the descriptive record of an academic department.
type Department struct {
	Code           string   `json:"code"`
	FullName       string   `json:"full_name"`
	HOD            string   `json:"hod"`
	HODContact     string   `json:"hod_contact"`
	Office         string   `json:"office"`
	Phone          string   `json:"phone"`
	Established    int      `json:"established"`
	TotalFaculty   int      `json:"total_faculty"`
	TotalStudents  int      `json:"total_students"`
	Labs           []string `json:"labs"`
	AveragePackage string   `json:"average_package"`
	HighestPackage string   `json:"highest_package"`
	PlacementRate  string   `json:"placement_rate"`
}

// Facility holds the descriptive record of a campus facility.
// Key is one of the fixed facility keys (library, canteen, hostel, sports,
// medical, transport).
type Facility struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Timings  string   `json:"timings"`
	Incharge string   `json:"incharge,omitempty"`
	Contact  string   `json:"contact,omitempty"`
	Services []string `json:"services,omitempty"`
	Notes    []string `json:"notes,omitempty"`
}

// Event represents one upcoming campus event.
type Event struct {
	Ordinal     int    `json:"ordinal"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
}

// FAQ is one frequently-asked-question record searched by keyword overlap.
type FAQ struct {
	Ordinal  int      `json:"ordinal"`
	Keywords []string `json:"keywords"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
}

// ImportantContact is one entry of the campus emergency contact directory.
type ImportantContact struct {
	Ordinal int    `json:"ordinal"`
	Name    string `json:"name"`
	Number  string `json:"number"`
}
