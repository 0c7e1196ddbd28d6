package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/F-Mutua/Mindfit/services"
)

var validate = validator.New()

func parseLimit(c *gin.Context, fallback int64) int64 {
	limit := fallback
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.ParseInt(l, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	return limit
}

// CreateStudySession logs a study session for the current user.
func CreateStudySession(logger *services.SessionLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Subject     string `json:"subject" validate:"required,max=100"`
			DurationMin int    `json:"duration_min" validate:"required,min=1"`
			Notes       string `json:"notes" validate:"max=2000"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session payload"})
			return
		}
		body.Subject = strings.TrimSpace(body.Subject)
		if err := validate.Struct(body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		session, err := logger.LogStudySession(c.Request.Context(), userID, body.Subject, body.DurationMin, body.Notes)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, session)
	}
}

// GetMySessions returns the current user's most recent study sessions.
func GetMySessions(logger *services.SessionLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		sessions, err := logger.StudySessions(c.Request.Context(), userID, parseLimit(c, 30))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, sessions)
	}
}

// CreateWellnessEntry logs a wellness check-in for the current user.
func CreateWellnessEntry(logger *services.SessionLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			StressLevel int      `json:"stress_level" validate:"required,min=1,max=10"`
			EnergyLevel int      `json:"energy_level" validate:"required,min=1,max=10"`
			SleepHours  *float64 `json:"sleep_hours" validate:"omitempty,min=0,max=24"`
			Notes       string   `json:"notes" validate:"max=2000"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wellness payload"})
			return
		}
		if err := validate.Struct(body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		entry, err := logger.LogWellnessEntry(c.Request.Context(), userID, body.StressLevel, body.EnergyLevel, body.SleepHours, body.Notes)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

// GetMyWellnessEntries returns the current user's most recent check-ins.
func GetMyWellnessEntries(logger *services.SessionLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		entries, err := logger.WellnessEntries(c.Request.Context(), userID, parseLimit(c, 30))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
