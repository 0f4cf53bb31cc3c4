package model

// Teacher is an account row. Password holds the bcrypt hash and is never
// serialized.
type Teacher struct {
	ID                int64  `json:"id"`
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Password          string `json:"-"`
	Department        string `json:"department,omitempty"`
	Designation       string `json:"designation,omitempty"`
	EmployeeID        string `json:"employeeId,omitempty"`
	Phone             string `json:"phone,omitempty"`
	OfficeAddress     string `json:"officeAddress,omitempty"`
	ResearchInterests string `json:"researchInterests,omitempty"`
	ProfilePicture    string `json:"profilePicture,omitempty"`
}

// Profile is the field projection returned by GET /api/profile/:id.
type Profile struct {
	ID                int64   `json:"id"`
	FullName          string  `json:"fullName"`
	Email             string  `json:"email"`
	Department        *string `json:"department"`
	Phone             *string `json:"phone"`
	OfficeAddress     *string `json:"officeAddress"`
	ResearchInterests *string `json:"researchInterests"`
	ProfilePicture    *string `json:"profilePicture"`
}

// Student is a roster row keyed by USN. Scores are nullable.
type Student struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	USN        string  `json:"usn"`
	Branch     *string `json:"branch"`
	Section    *string `json:"section"`
	Test1      *int    `json:"test1"`
	Test2      *int    `json:"test2"`
	Quiz       *int    `json:"quiz"`
	Assignment *int    `json:"assignment"`
}

// ClassEntry is the (name, usn) pair returned by the class-list lookup.
type ClassEntry struct {
	Name string `json:"name"`
	USN  string `json:"usn"`
}

// Task is a to-do item. IsCompleted is stored as 0/1 in SQLite.
type Task struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
	IsCompleted int     `json:"isCompleted"`
}

// Assignment tracks a class assignment and its free-text status
// (e.g. Pending / Completed).
type Assignment struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Deadline string `json:"deadline"`
	Status   string `json:"status"`
}

// AttendanceMark is one submitted attendance entry; (USN, Date) is the
// upsert key.
type AttendanceMark struct {
	USN    string `json:"usn"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// SectionNote is an append-only note attached to a section.
type SectionNote struct {
	Note      string `json:"note"`
	CreatedAt string `json:"createdAt"`
}
