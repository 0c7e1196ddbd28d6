package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/F-Mutua/Mindfit/controllers"
	"github.com/F-Mutua/Mindfit/services"
)

// Deps carries the wired services the routes need.
type Deps struct {
	Store     *services.MongoStore
	Analytics *services.Analytics
	Logger    *services.SessionLogger
}

func SetupRoutes(router *gin.RouterGroup, d Deps) {
	// Data entry
	router.POST("/study-sessions", controllers.CreateStudySession(d.Logger))
	router.GET("/study-sessions", controllers.GetMySessions(d.Logger))
	router.POST("/wellness-entries", controllers.CreateWellnessEntry(d.Logger))
	router.GET("/wellness-entries", controllers.GetMyWellnessEntries(d.Logger))

	// Analytics engine
	router.GET("/analytics", controllers.GetAnalytics(d.Analytics))
	router.GET("/productivity-score", controllers.GetProductivityScore(d.Analytics))
	router.GET("/recommendations", controllers.GetRecommendations(d.Analytics))
	router.GET("/sessions/stats", controllers.GetSessionStats(d.Analytics))

	// Tips and goals
	router.GET("/wellness-tips", controllers.GetWellnessTips(d.Store))
	router.POST("/goals", controllers.CreateStudyGoal(d.Store))
	router.GET("/goals", controllers.GetActiveGoals(d.Store))
}
