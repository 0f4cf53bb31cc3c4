package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"academix/internal/model"
	"academix/internal/store"
)

// ListStudents returns the full roster ordered by name.
func (h *Handler) ListStudents(c *gin.Context) {
	students, err := h.store.ListStudents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if students == nil {
		students = []model.Student{}
	}
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": students})
}

// CreateStudent adds a roster row; the USN must be unique.
func (h *Handler) CreateStudent(c *gin.Context) {
	var st model.Student
	if err := c.ShouldBindJSON(&st); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Student Name and USN are required."})
		return
	}
	if st.Name == "" || st.USN == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Student Name and USN are required."})
		return
	}

	id, err := h.store.CreateStudent(c.Request.Context(), st)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("A student with USN %s already exists.", st.USN)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "success", "id": id})
}

// ClassList returns (name, usn) pairs for a branch and section.
func (h *Handler) ClassList(c *gin.Context) {
	branch := c.Query("branch")
	section := c.Query("section")
	if branch == "" || section == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Branch and Section are required."})
		return
	}

	entries, err := h.store.ClassList(c.Request.Context(), branch, section)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []model.ClassEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": entries})
}

// SubmitAttendance applies a batch of attendance marks as one transaction.
// The success response is sent only after the commit has returned.
func (h *Handler) SubmitAttendance(c *gin.Context) {
	var marks []model.AttendanceMark
	if err := c.ShouldBindJSON(&marks); err != nil || len(marks) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be an array of records."})
		return
	}

	if err := h.store.SubmitAttendance(c.Request.Context(), marks); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attendance."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Attendance submitted successfully."})
}
