package store

import (
	"context"

	"academix/internal/model"
)

// ListStudents returns every roster row ordered by name.
func (s *Store) ListStudents(ctx context.Context) ([]model.Student, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, usn, branch, section, test1, test2, quiz, assignment
		FROM students ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var st model.Student
		if err := rows.Scan(&st.ID, &st.Name, &st.USN, &st.Branch, &st.Section,
			&st.Test1, &st.Test2, &st.Quiz, &st.Assignment); err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

// CreateStudent inserts a roster row. A duplicate USN yields ErrConflict.
func (s *Store) CreateStudent(ctx context.Context, st model.Student) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO students (name, usn, branch, section, test1, test2, quiz, assignment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, st.Name, st.USN, st.Branch, st.Section, st.Test1, st.Test2, st.Quiz, st.Assignment)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrConflict
		}
		return 0, err
	}
	return res.LastInsertId()
}

// ClassList returns (name, usn) pairs for one branch and section, ordered
// by usn.
func (s *Store) ClassList(ctx context.Context, branch, section string) ([]model.ClassEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, usn FROM students WHERE branch = ? AND section = ? ORDER BY usn
	`, branch, section)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.ClassEntry
	for rows.Next() {
		var e model.ClassEntry
		if err := rows.Scan(&e.Name, &e.USN); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SubmitAttendance applies a batch of marks in one transaction. Each mark is
// an upsert keyed on (student_usn, date) that overwrites the status. The
// method returns only after the commit has completed, so a success seen by
// the caller always reflects durable rows.
func (s *Store) SubmitAttendance(ctx context.Context, marks []model.AttendanceMark) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO attendance_records (student_usn, date, status)
		VALUES (?, ?, ?)
		ON CONFLICT(student_usn, date) DO UPDATE SET status = excluded.status
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range marks {
		if _, err := stmt.ExecContext(ctx, m.USN, m.Date, m.Status); err != nil {
			return err
		}
	}
	return tx.Commit()
}
