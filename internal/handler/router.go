package handler

import (
	"study-tracker/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the tracker routes under /api. Shared by cmd/server
// and the tests.
func NewRouter(h *TrackerHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestID())

	api := r.Group("/api")
	api.GET("/:user", h.GetUser)
	api.GET("/:user/subjects", h.GetSubjects)
	api.POST("/:user/subjects", h.ReplaceSubjects)
	api.DELETE("/:user/subjects/:id", h.DeleteSubject)
	api.GET("/:user/dailylogs", h.GetDailyLogs)
	api.POST("/:user/dailylogs", h.ReplaceDailyLogs)

	return r
}
