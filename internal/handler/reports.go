package handler

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"academix/internal/model"
)

const summaryCacheKey = "academix:dashboard-summary"

// summaryPayload is the fixed-shape dashboard object, kept compatible with
// the frontend's expectations.
type summaryPayload struct {
	Attendance struct {
		Overall string `json:"overall"`
		Text    string `json:"text"`
	} `json:"attendance"`
	Assignments struct {
		Pending string `json:"pending"`
		Text    string `json:"text"`
	} `json:"assignments"`
	Events struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"events"`
}

// DashboardSummary combines the pending-assignment count, the attendance
// percentage for the most recent recorded day and the nearest upcoming task.
// The three queries run concurrently; the first failure cancels the rest.
func (h *Handler) DashboardSummary(c *gin.Context) {
	ctx := c.Request.Context()

	var cached summaryPayload
	if h.cache.GetJSON(ctx, summaryCacheKey, &cached) {
		c.JSON(http.StatusOK, gin.H{"message": "success", "data": cached})
		return
	}

	var (
		pendingCount      int
		attendancePercent int
		nextTask          string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pendingCount, err = h.store.PendingAssignmentCount(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		attendancePercent, err = h.store.LatestAttendancePercent(gctx)
		return err
	})
	g.Go(func() error {
		name, dueDate, ok, err := h.store.UpcomingTask(gctx)
		if err != nil {
			return err
		}
		if ok {
			nextTask = fmt.Sprintf("%s (Due: %s)", name, dueDate)
		} else {
			nextTask = "No upcoming tasks."
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var payload summaryPayload
	payload.Attendance.Overall = fmt.Sprintf("%d%% Overall", attendancePercent)
	if attendancePercent > 0 {
		payload.Attendance.Text = "Based on last recorded day."
	} else {
		payload.Attendance.Text = "No attendance recorded."
	}
	payload.Assignments.Pending = fmt.Sprintf("%d Pending", pendingCount)
	payload.Assignments.Text = "Track assignment submissions."
	payload.Events.Title = "Upcoming"
	payload.Events.Text = nextTask

	h.cache.SetJSON(ctx, summaryCacheKey, payload, h.cacheTTL)
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": payload})
}

// SectionDetails returns a section's score averages as labeled chart data
// alongside its notes, newest first. The two queries run concurrently and
// either failure aborts the response.
func (h *Handler) SectionDetails(c *gin.Context) {
	section := c.Param("section")

	var (
		labels = []string{"Test 1", "Test 2", "Test Average", "Quiz", "Assignment"}
		values []string
		notes  []model.SectionNote
	)
	g, gctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		avgs, err := h.store.AveragesBySection(gctx, section)
		if err != nil {
			return err
		}
		values = []string{
			fmt.Sprintf("%.2f", avgs.Test1),
			fmt.Sprintf("%.2f", avgs.Test2),
			fmt.Sprintf("%.2f", avgs.TestAverage()),
			fmt.Sprintf("%.2f", avgs.Quiz),
			fmt.Sprintf("%.2f", avgs.Assignment),
		}
		return nil
	})
	g.Go(func() error {
		var err error
		notes, err = h.store.NotesBySection(gctx, section)
		return err
	})
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if notes == nil {
		notes = []model.SectionNote{}
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data": gin.H{
			"chartData": gin.H{"labels": labels, "data": values},
			"notes":     notes,
		},
	})
}

// Colors marking whether a section has any students to aggregate.
const (
	colorHasData = "rgba(102, 153, 255, 1)"
	colorNoData  = "rgba(160, 160, 160, 0.5)"
)

// PerformanceBySection compares the fixed sections A-D by composite score.
// Sections are computed one at a time so the result arrays stay in the
// source section order.
func (h *Handler) PerformanceBySection(c *gin.Context) {
	sections := []string{"A", "B", "C", "D"}
	labels := make([]string, 0, len(sections))
	scores := make([]float64, 0, len(sections))
	colors := make([]string, 0, len(sections))

	for _, section := range sections {
		avgs, err := h.store.AveragesBySection(c.Request.Context(), section)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}

		labels = append(labels, "Section "+section)
		if avgs.StudentCount == 0 {
			scores = append(scores, 0)
			colors = append(colors, colorNoData)
			continue
		}
		// Two-decimal rounding matches the chart's displayed precision.
		score := math.Round(avgs.CompositeScore()*100) / 100
		scores = append(scores, score)
		colors = append(colors, colorHasData)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    gin.H{"labels": labels, "scores": scores, "colors": colors},
	})
}
