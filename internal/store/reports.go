package store

import (
	"context"
	"database/sql"
	"errors"
	"math"
)

// PendingAssignmentCount counts assignments whose status is exactly
// "Pending".
func (s *Store) PendingAssignmentCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM assignments WHERE status = 'Pending'`).Scan(&count)
	return count, err
}

// LatestAttendancePercent computes present/total on the most recent recorded
// date, rounded to the nearest integer. Returns 0 when no attendance has
// ever been recorded.
func (s *Store) LatestAttendancePercent(ctx context.Context) (int, error) {
	var latest sql.NullString
	if err := s.db.QueryRowContext(ctx,
		`SELECT MAX(date) FROM attendance_records`).Scan(&latest); err != nil {
		return 0, err
	}
	if !latest.Valid {
		return 0, nil
	}

	var total, present int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendance_records WHERE date = ?`, latest.String).Scan(&total); err != nil {
		return 0, err
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendance_records WHERE date = ? AND status = 'Present'`, latest.String).Scan(&present); err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return int(math.Round(float64(present) / float64(total) * 100)), nil
}

// UpcomingTask returns the nearest non-completed task due today or later,
// ties broken by earliest due date then priority descending. The second
// return is false when no such task exists.
func (s *Store) UpcomingTask(ctx context.Context) (name, dueDate string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT name, dueDate FROM tasks
		WHERE isCompleted = 0 AND dueDate >= date('now')
		ORDER BY dueDate ASC, priority DESC
		LIMIT 1
	`).Scan(&name, &dueDate)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", false, nil
	}
	if err != nil {
		return "", "", false, err
	}
	return name, dueDate, true, nil
}

// SectionAverages holds per-section score averages with NULLs (empty
// section) already coalesced to 0.
type SectionAverages struct {
	StudentCount int
	Test1        float64
	Test2        float64
	Quiz         float64
	Assignment   float64
}

// TestAverage is the mean of the two test averages.
func (a SectionAverages) TestAverage() float64 {
	return (a.Test1 + a.Test2) / 2
}

// CompositeScore is test average + quiz average + assignment average, the
// figure used for cross-section comparison.
func (a SectionAverages) CompositeScore() float64 {
	return a.TestAverage() + a.Quiz + a.Assignment
}

// AveragesBySection computes the four score averages for one section. A
// section with no students yields zero averages, not an error.
func (s *Store) AveragesBySection(ctx context.Context, section string) (SectionAverages, error) {
	var (
		avgs                     SectionAverages
		t1, t2, quiz, assignment sql.NullFloat64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(test1), AVG(test2), AVG(quiz), AVG(assignment)
		FROM students WHERE section = ?
	`, section).Scan(&avgs.StudentCount, &t1, &t2, &quiz, &assignment)
	if err != nil {
		return SectionAverages{}, err
	}
	avgs.Test1 = t1.Float64
	avgs.Test2 = t2.Float64
	avgs.Quiz = quiz.Float64
	avgs.Assignment = assignment.Float64
	return avgs, nil
}
