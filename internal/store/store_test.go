package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"academix/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "academix.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestSeedRunsOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "academix.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	s.Close()

	// Reopening must not duplicate the demo rows.
	s, err = New(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s.Close()

	tasks, err := s.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 seeded tasks, got %d", len(tasks))
	}
	assignments, err := s.ListAssignments(context.Background())
	if err != nil {
		t.Fatalf("list assignments: %v", err)
	}
	if len(assignments) != 2 {
		t.Fatalf("expected 2 seeded assignments, got %d", len(assignments))
	}
}

func TestCreateStudentDuplicateUSN(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	st := model.Student{Name: "Asha", USN: "1AB21CS001", Branch: strPtr("CSE"), Section: strPtr("A")}
	if _, err := s.CreateStudent(ctx, st); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	st.Name = "Someone Else"
	if _, err := s.CreateStudent(ctx, st); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	students, err := s.ListStudents(ctx)
	if err != nil {
		t.Fatalf("list students: %v", err)
	}
	if len(students) != 1 {
		t.Fatalf("duplicate insert created a row: %d students", len(students))
	}
}

func TestCreateTeacherDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	teacher := model.Teacher{FullName: "Dr. Rao", Email: "rao@univ.edu", Password: "hash", EmployeeID: "EMP-1"}
	if _, err := s.CreateTeacher(ctx, teacher); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	teacher.Email = "other@univ.edu"
	if _, err := s.CreateTeacher(ctx, teacher); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate employeeId: expected ErrConflict, got %v", err)
	}
	teacher.Email = "rao@univ.edu"
	teacher.EmployeeID = "EMP-2"
	if _, err := s.CreateTeacher(ctx, teacher); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email: expected ErrConflict, got %v", err)
	}
}

func TestTeacherByEmployeeIDNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.TeacherByEmployeeID(context.Background(), "NOPE"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResetPasswordUnknownIDIsSilent(t *testing.T) {
	s := newTestStore(t)
	if err := s.ResetPassword(context.Background(), "NOPE", "hash"); err != nil {
		t.Fatalf("reset for unknown id must not error: %v", err)
	}
}

func TestSubmitAttendanceUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	day := "2026-03-02"

	marks := []model.AttendanceMark{{USN: "1AB21CS001", Date: day, Status: "Present"}}
	if err := s.SubmitAttendance(ctx, marks); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	pct, err := s.LatestAttendancePercent(ctx)
	if err != nil {
		t.Fatalf("attendance percent: %v", err)
	}
	if pct != 100 {
		t.Fatalf("expected 100%%, got %d", pct)
	}

	// Same (usn, date) resubmitted overwrites the status in place.
	marks[0].Status = "Absent"
	if err := s.SubmitAttendance(ctx, marks); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	pct, err = s.LatestAttendancePercent(ctx)
	if err != nil {
		t.Fatalf("attendance percent: %v", err)
	}
	if pct != 0 {
		t.Fatalf("status not overwritten: got %d%%", pct)
	}
}

func TestLatestAttendancePercentRounds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	day := "2026-03-02"

	err := s.SubmitAttendance(ctx, []model.AttendanceMark{
		{USN: "U1", Date: day, Status: "Present"},
		{USN: "U2", Date: day, Status: "Present"},
		{USN: "U3", Date: day, Status: "Absent"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	pct, err := s.LatestAttendancePercent(ctx)
	if err != nil {
		t.Fatalf("attendance percent: %v", err)
	}
	if pct != 67 {
		t.Fatalf("expected 67 (2/3 rounded), got %d", pct)
	}
}

func TestLatestAttendancePercentEmpty(t *testing.T) {
	s := newTestStore(t)
	pct, err := s.LatestAttendancePercent(context.Background())
	if err != nil {
		t.Fatalf("attendance percent: %v", err)
	}
	if pct != 0 {
		t.Fatalf("expected 0 with no records, got %d", pct)
	}
}

func TestPendingAssignmentCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// The seed contributes exactly one Pending assignment.
	count, err := s.PendingAssignmentCount(ctx)
	if err != nil {
		t.Fatalf("pending count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 pending after seed, got %d", count)
	}

	if _, err := s.CreateAssignment(ctx, model.Assignment{Name: "Essay", Deadline: "2026-09-01", Status: "Pending"}); err != nil {
		t.Fatalf("create assignment: %v", err)
	}
	if _, err := s.CreateAssignment(ctx, model.Assignment{Name: "Quiz Prep", Deadline: "2026-09-02", Status: "pending"}); err != nil {
		t.Fatalf("create assignment: %v", err)
	}

	count, err = s.PendingAssignmentCount(ctx)
	if err != nil {
		t.Fatalf("pending count: %v", err)
	}
	// Lowercase "pending" must not match: the status comparison is exact.
	if count != 2 {
		t.Fatalf("expected 2 pending, got %d", count)
	}
}

func TestUpcomingTaskOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	today := time.Now().UTC().Format("2006-01-02")

	// Nearer than the seeded tasks (due tomorrow and next week).
	if _, err := s.CreateTask(ctx, model.Task{Name: "Grade Quizzes", Priority: strPtr("low"), DueDate: strPtr(today)}); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := s.CreateTask(ctx, model.Task{Name: "Book Lab Slot", Priority: strPtr("medium"), DueDate: strPtr(today)}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	name, due, ok, err := s.UpcomingTask(ctx)
	if err != nil {
		t.Fatalf("upcoming task: %v", err)
	}
	if !ok {
		t.Fatal("expected an upcoming task")
	}
	if due != today {
		t.Fatalf("expected due %s, got %s", today, due)
	}
	// Same due date: priority descending lexically, "medium" > "low".
	if name != "Book Lab Slot" {
		t.Fatalf("tie-break picked %q", name)
	}
}

func TestDeleteTaskNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.DeleteTask(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	tasks, err := s.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("delete of missing id changed rows: %d tasks", len(tasks))
	}
}

func TestUpdateAssignmentNotFound(t *testing.T) {
	s := newTestStore(t)
	err := s.UpdateAssignment(context.Background(), 9999,
		model.Assignment{Name: "X", Deadline: "2026-01-01", Status: "Pending"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAveragesBySection(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	students := []model.Student{
		{Name: "A", USN: "U1", Section: strPtr("A"), Test1: intPtr(10), Test2: intPtr(20), Quiz: intPtr(5), Assignment: intPtr(8)},
		{Name: "B", USN: "U2", Section: strPtr("A"), Test1: intPtr(20), Test2: intPtr(40), Quiz: intPtr(15), Assignment: intPtr(12)},
	}
	for _, st := range students {
		if _, err := s.CreateStudent(ctx, st); err != nil {
			t.Fatalf("create student: %v", err)
		}
	}

	avgs, err := s.AveragesBySection(ctx, "A")
	if err != nil {
		t.Fatalf("averages: %v", err)
	}
	if avgs.StudentCount != 2 {
		t.Fatalf("expected 2 students, got %d", avgs.StudentCount)
	}
	if avgs.Test1 != 15 || avgs.Test2 != 30 || avgs.Quiz != 10 || avgs.Assignment != 10 {
		t.Fatalf("unexpected averages: %+v", avgs)
	}
	if got := avgs.TestAverage(); got != 22.5 {
		t.Fatalf("test average: expected 22.5, got %v", got)
	}
	if got := avgs.CompositeScore(); got != 42.5 {
		t.Fatalf("composite: expected 42.5, got %v", got)
	}
}

func TestAveragesEmptySection(t *testing.T) {
	s := newTestStore(t)
	avgs, err := s.AveragesBySection(context.Background(), "Z")
	if err != nil {
		t.Fatalf("averages: %v", err)
	}
	if avgs.StudentCount != 0 {
		t.Fatalf("expected 0 students, got %d", avgs.StudentCount)
	}
	if avgs.Test1 != 0 || avgs.Test2 != 0 || avgs.Quiz != 0 || avgs.Assignment != 0 {
		t.Fatalf("empty section must average to zero, got %+v", avgs)
	}
}

func TestNotesNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// createdAt has second precision, so force distinct timestamps.
	if _, err := s.CreateNote(ctx, "A", "first"); err != nil {
		t.Fatalf("create note: %v", err)
	}
	time.Sleep(1100 * time.Millisecond)
	if _, err := s.CreateNote(ctx, "A", "second"); err != nil {
		t.Fatalf("create note: %v", err)
	}
	if _, err := s.CreateNote(ctx, "B", "other section"); err != nil {
		t.Fatalf("create note: %v", err)
	}

	notes, err := s.NotesBySection(ctx, "A")
	if err != nil {
		t.Fatalf("notes: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes for section A, got %d", len(notes))
	}
	if notes[0].Note != "second" || notes[1].Note != "first" {
		t.Fatalf("notes not newest-first: %+v", notes)
	}
}

func TestClassListRequiresBothKeysAndOrders(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, st := range []model.Student{
		{Name: "Zed", USN: "U2", Branch: strPtr("CSE"), Section: strPtr("A")},
		{Name: "Amy", USN: "U1", Branch: strPtr("CSE"), Section: strPtr("A")},
		{Name: "Bob", USN: "U3", Branch: strPtr("ECE"), Section: strPtr("A")},
	} {
		if _, err := s.CreateStudent(ctx, st); err != nil {
			t.Fatalf("create student: %v", err)
		}
	}

	entries, err := s.ClassList(ctx, "CSE", "A")
	if err != nil {
		t.Fatalf("class list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].USN != "U1" || entries[1].USN != "U2" {
		t.Fatalf("entries not ordered by usn: %+v", entries)
	}
}
