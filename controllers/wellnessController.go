package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/F-Mutua/Mindfit/models"
	"github.com/F-Mutua/Mindfit/services"
)

// GetWellnessTips returns tips matching ?stress_level (required 1-10)
// and an optional ?category.
func GetWellnessTips(store *services.MongoStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		stress, err := strconv.Atoi(c.Query("stress_level"))
		if err != nil || stress < 1 || stress > 10 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stress_level must be an integer between 1 and 10"})
			return
		}
		tips, err := store.WellnessTips(c.Request.Context(), stress, c.Query("category"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tips": tips, "mood": models.MoodFromStress(float64(stress))})
	}
}

// CreateStudyGoal creates a study goal for the current user.
func CreateStudyGoal(store *services.MongoStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Title       string     `json:"title" validate:"required,max=200"`
			Description string     `json:"description" validate:"max=2000"`
			TargetHours float64    `json:"target_hours" validate:"required,gt=0"`
			Deadline    *time.Time `json:"deadline"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal payload"})
			return
		}
		body.Title = strings.TrimSpace(body.Title)
		if err := validate.Struct(body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		goal := &models.StudyGoal{
			UserID:      userID,
			Title:       body.Title,
			Description: body.Description,
			TargetHours: body.TargetHours,
			Deadline:    body.Deadline,
		}
		if err := store.CreateStudyGoal(c.Request.Context(), goal); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, goal)
	}
}

// GetActiveGoals lists the current user's incomplete goals.
func GetActiveGoals(store *services.MongoStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		goals, err := store.ActiveGoals(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, goals)
	}
}
