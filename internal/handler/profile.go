package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"academix/internal/store"
)

// maxPictureBytes caps profile picture uploads.
const maxPictureBytes = 1000000

var allowedPictureExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// GetProfile returns the profile projection for a teacher id.
func (h *Handler) GetProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile id."})
		return
	}
	profile, err := h.store.Profile(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": profile})
}

// UpdateProfile accepts a multipart form of text fields plus an optional
// profilePicture image. A new picture replaces the stored file; the old file
// is deleted only after the row update succeeds, so a failed write never
// loses the previous picture.
func (h *Handler) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile id."})
		return
	}

	oldPath, err := h.store.ProfilePicturePath(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	newPath := oldPath
	savedFile := ""
	file, header, err := c.Request.FormFile("profilePicture")
	if err == nil {
		defer file.Close()
		savedFile, err = h.savePicture(id, file, header)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newPath = savedFile
	}

	if err := h.store.UpdateProfile(c.Request.Context(), id,
		c.PostForm("fullName"), c.PostForm("email"), c.PostForm("phone"),
		c.PostForm("department"), c.PostForm("officeAddress"),
		c.PostForm("researchInterests"), newPath); err != nil {
		if savedFile != "" {
			os.Remove(savedFile)
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found."})
			return
		}
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if savedFile != "" && oldPath != "" {
		if err := os.Remove(oldPath); err != nil && !os.IsNotExist(err) {
			log.Printf("error deleting old profile picture %s: %v", oldPath, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "newImagePath": newPath})
}

// savePicture validates and writes an uploaded image, returning the stored
// path in the profile-<id>-<timestamp><ext> pattern.
func (h *Handler) savePicture(id int64, file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > maxPictureBytes {
		return "", fmt.Errorf("image exceeds the %d byte limit", maxPictureBytes)
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedPictureExts[ext] {
		return "", errors.New("only image files are allowed (jpeg, jpg, png, gif)")
	}

	data, err := io.ReadAll(io.LimitReader(file, maxPictureBytes+1))
	if err != nil {
		return "", errors.New("failed to read uploaded file")
	}
	if len(data) > maxPictureBytes {
		return "", fmt.Errorf("image exceeds the %d byte limit", maxPictureBytes)
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return "", errors.New("only image files are allowed (jpeg, jpg, png, gif)")
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", errors.New("failed to store uploaded file")
	}
	name := fmt.Sprintf("profile-%d-%d%s", id, time.Now().UnixMilli(), ext)
	path := filepath.Join(h.uploadDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.New("failed to store uploaded file")
	}
	return path, nil
}
