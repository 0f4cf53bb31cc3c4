package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"academix/internal/model"
	"academix/internal/store"
)

// -------- Assignments --------

// ListAssignments returns all assignments ordered by deadline.
func (h *Handler) ListAssignments(c *gin.Context) {
	assignments, err := h.store.ListAssignments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if assignments == nil {
		assignments = []model.Assignment{}
	}
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": assignments})
}

// CreateAssignment adds an assignment; all fields are required.
func (h *Handler) CreateAssignment(c *gin.Context) {
	var a model.Assignment
	if err := c.ShouldBindJSON(&a); err != nil || a.Name == "" || a.Deadline == "" || a.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields."})
		return
	}

	id, err := h.store.CreateAssignment(c.Request.Context(), a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "success", "id": id})
}

// UpdateAssignment replaces an assignment's fields.
func (h *Handler) UpdateAssignment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment id."})
		return
	}
	var a model.Assignment
	if err := c.ShouldBindJSON(&a); err != nil || a.Name == "" || a.Deadline == "" || a.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields."})
		return
	}

	if err := h.store.UpdateAssignment(c.Request.Context(), id, a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success", "updatedID": id})
}

// DeleteAssignment removes an assignment by id.
func (h *Handler) DeleteAssignment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment id."})
		return
	}

	if err := h.store.DeleteAssignment(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted", "id": id})
}

// -------- Tasks --------

// ListTasks returns all to-do tasks.
func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.store.ListTasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": tasks})
}

// CreateTask adds a task; the name must be non-blank. isCompleted always
// starts at 0.
func (h *Handler) CreateTask(c *gin.Context) {
	var t model.Task
	if err := c.ShouldBindJSON(&t); err != nil || strings.TrimSpace(t.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task name is required."})
		return
	}

	id, err := h.store.CreateTask(c.Request.Context(), t)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Task added successfully", "id": id})
}

// DeleteTask removes a task by id.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id."})
		return
	}

	if err := h.store.DeleteTask(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Task with id %d not found.", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// -------- Section notes --------

type noteRequest struct {
	Section string `json:"section"`
	Note    string `json:"note"`
}

// CreateNote appends a note to a section.
func (h *Handler) CreateNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Section == "" || req.Note == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Section and note text are required."})
		return
	}

	id, err := h.store.CreateNote(c.Request.Context(), req.Section, req.Note)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Note added successfully", "id": id})
}
