package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/F-Mutua/Mindfit/services"
)

// getUserID reads the identity the outer layer attaches to the request.
// Authentication itself lives outside this service.
func getUserID(c *gin.Context) string {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID header"})
	}
	return userID
}

// GetAnalytics returns the dense daily series for ?days (default 7).
func GetAnalytics(analytics *services.Analytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		days := 7
		if d := c.Query("days"); d != "" {
			n, err := strconv.Atoi(d)
			if err != nil || n < 1 || n > 365 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer between 1 and 365"})
				return
			}
			days = n
		}
		result, err := analytics.Aggregate(c.Request.Context(), userID, days)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetProductivityScore returns the 7-day productivity score.
func GetProductivityScore(analytics *services.Analytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		score, err := analytics.ProductivityScore(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"score": score})
	}
}

// GetRecommendations returns rule-based advice from recent activity.
func GetRecommendations(analytics *services.Analytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		recs, err := analytics.Recommendations(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"recommendations": recs})
	}
}

// GetSessionStats returns totals and the weekday histogram, optionally
// bounded by ?date_from and ?date_to (YYYY-MM-DD).
func GetSessionStats(analytics *services.Analytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		from := time.Time{}
		to := time.Now().UTC()
		if v := c.Query("date_from"); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "date_from must be YYYY-MM-DD"})
				return
			}
			from = t
		}
		if v := c.Query("date_to"); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "date_to must be YYYY-MM-DD"})
				return
			}
			// Make the end date inclusive.
			to = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		stats, err := analytics.SessionStats(c.Request.Context(), userID, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
	}
}
