package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"academix/internal/auth"
	"academix/internal/model"
	"academix/internal/store"
)

// resetPassword is the fixed value forgot-password resets accounts to.
// There is no mail delivery; the value is returned in the response body.
const resetPassword = "password123"

type signupRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	EmployeeID  string `json:"employeeId"`
}

// Signup creates a teacher account with a bcrypt-hashed password.
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide all required fields."})
		return
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" || req.EmployeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide all required fields."})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account."})
		return
	}

	id, err := h.store.CreateTeacher(c.Request.Context(), model.Teacher{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    hash,
		Department:  req.Department,
		Designation: req.Designation,
		EmployeeID:  req.EmployeeID,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email or Employee ID already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "success", "userId": id})
}

type loginRequest struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

// Login verifies employee id and password. The 401 message never discloses
// whether the account exists or the password was wrong.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmployeeID == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide both Employee ID and password."})
		return
	}

	teacher, err := h.store.TeacherByEmployeeID(c.Request.Context(), req.EmployeeID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, store.ErrNotFound) || !auth.CheckPassword(teacher.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"user":    gin.H{"id": teacher.ID, "fullName": teacher.FullName, "email": teacher.Email},
	})
}

type forgotPasswordRequest struct {
	EmployeeID string `json:"employeeId"`
}

// ForgotPassword resets an account to the fixed temporary password. The
// response is identical whether or not the employee id exists.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmployeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide an Employee ID."})
		return
	}

	hash, err := auth.HashPassword(resetPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password."})
		return
	}
	if err := h.store.ResetPassword(c.Request.Context(), req.EmployeeID, hash); err != nil {
		log.Printf("forgot-password update failed: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "If an account with that Employee ID exists, the new temporary password is: " + resetPassword,
	})
}
