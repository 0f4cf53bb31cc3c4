package store

import (
	"context"

	"academix/internal/model"
)

// -------- Tasks --------

// ListTasks returns every task, latest due date first, then priority.
func (s *Store) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, priority, dueDate, isCompleted FROM tasks ORDER BY dueDate DESC, priority`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Priority, &t.DueDate, &t.IsCompleted); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// CreateTask inserts a task, not completed by default.
func (s *Store) CreateTask(ctx context.Context, t model.Task) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (name, priority, dueDate, isCompleted) VALUES (?, ?, ?, 0)`,
		t.Name, t.Priority, t.DueDate)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DeleteTask removes a task; ErrNotFound when the id matched nothing.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// -------- Assignments --------

// ListAssignments returns every assignment ordered by deadline.
func (s *Store) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, deadline, status FROM assignments ORDER BY deadline`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.ID, &a.Name, &a.Deadline, &a.Status); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// CreateAssignment inserts an assignment and returns the new id.
func (s *Store) CreateAssignment(ctx context.Context, a model.Assignment) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO assignments (name, deadline, status) VALUES (?, ?, ?)`,
		a.Name, a.Deadline, a.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateAssignment replaces all fields; ErrNotFound when the id matched
// nothing.
func (s *Store) UpdateAssignment(ctx context.Context, id int64, a model.Assignment) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE assignments SET name = ?, deadline = ?, status = ? WHERE id = ?`,
		a.Name, a.Deadline, a.Status, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteAssignment removes an assignment; ErrNotFound when the id matched
// nothing.
func (s *Store) DeleteAssignment(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// -------- Section notes --------

// CreateNote appends a note to a section and returns its id.
func (s *Store) CreateNote(ctx context.Context, section, note string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO section_notes (section, note) VALUES (?, ?)`, section, note)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// NotesBySection returns a section's notes, newest first.
func (s *Store) NotesBySection(ctx context.Context, section string) ([]model.SectionNote, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT note, createdAt FROM section_notes WHERE section = ? ORDER BY createdAt DESC`, section)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.SectionNote
	for rows.Next() {
		var n model.SectionNote
		if err := rows.Scan(&n.Note, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
