package store

import (
	"context"
	"database/sql"
	"errors"

	"academix/internal/model"
)

// CreateTeacher inserts a new account and returns the row id. A duplicate
// email or employee id yields ErrConflict.
func (s *Store) CreateTeacher(ctx context.Context, t model.Teacher) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO teachers (fullName, email, password, department, designation, employeeId)
		VALUES (?, ?, ?, ?, ?, ?)
	`, t.FullName, t.Email, t.Password, t.Department, t.Designation, t.EmployeeID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrConflict
		}
		return 0, err
	}
	return res.LastInsertId()
}

// TeacherByEmployeeID looks up an account for login. Returns ErrNotFound
// when the employee id is unknown.
func (s *Store) TeacherByEmployeeID(ctx context.Context, employeeID string) (model.Teacher, error) {
	var t model.Teacher
	err := s.db.QueryRowContext(ctx, `
		SELECT id, fullName, email, password FROM teachers WHERE employeeId = ?
	`, employeeID).Scan(&t.ID, &t.FullName, &t.Email, &t.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Teacher{}, ErrNotFound
	}
	return t, err
}

// ResetPassword overwrites the stored hash for an employee id. Matching no
// row is not an error: the caller must not learn whether the id exists.
func (s *Store) ResetPassword(ctx context.Context, employeeID, passwordHash string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE teachers SET password = ? WHERE employeeId = ?`, passwordHash, employeeID)
	return err
}

// Profile returns the projection served by the profile page.
func (s *Store) Profile(ctx context.Context, id int64) (model.Profile, error) {
	var p model.Profile
	err := s.db.QueryRowContext(ctx, `
		SELECT id, fullName, email, department, phone, officeAddress, researchInterests, profilePicture
		FROM teachers WHERE id = ?
	`, id).Scan(&p.ID, &p.FullName, &p.Email, &p.Department, &p.Phone,
		&p.OfficeAddress, &p.ResearchInterests, &p.ProfilePicture)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, ErrNotFound
	}
	return p, err
}

// ProfilePicturePath returns the currently stored picture path, which may be
// empty. ErrNotFound when the teacher does not exist.
func (s *Store) ProfilePicturePath(ctx context.Context, id int64) (string, error) {
	var path sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT profilePicture FROM teachers WHERE id = ?`, id).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return path.String, err
}

// UpdateProfile replaces the editable profile fields, including the stored
// picture path.
func (s *Store) UpdateProfile(ctx context.Context, id int64, fullName, email, phone, department, officeAddress, researchInterests, picturePath string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE teachers
		SET fullName = ?, email = ?, phone = ?, department = ?, officeAddress = ?, researchInterests = ?, profilePicture = ?
		WHERE id = ?
	`, fullName, email, phone, department, officeAddress, researchInterests, picturePath, id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return requireRow(res)
}
