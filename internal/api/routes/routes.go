package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yoockh/workmatch/internal/api/handlers"
	"github.com/yoockh/workmatch/internal/api/middleware"
	"github.com/yoockh/workmatch/internal/models"
)

type Deps struct {
	Match  *handlers.MatchHandler
	Worker *handlers.WorkerHandler
	Job    *handlers.JobHandler
	Admin  *handlers.AdminHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	clients := auth.Group("/jobs", middleware.RequireRole(models.RoleClient))
	clients.POST("", d.Job.Create)
	clients.GET("/:job_id", d.Job.Get)
	clients.PUT("/:job_id", d.Job.Update)
	clients.GET("/:job_id/matches", d.Match.WorkersForJob)

	workers := auth.Group("/workers/me", middleware.RequireRole(models.RoleWorker))
	workers.GET("", d.Worker.Me)
	workers.PUT("/profile", d.Worker.UpdateProfile)
	workers.POST("/educations", d.Worker.AddEducation)
	workers.PUT("/target-jobs", d.Worker.SetTargetJobs)
	workers.GET("/matches", d.Match.JobsForWorker)

	admin := auth.Group("/admin", middleware.RequireAdmin())
	admin.GET("/weights", d.Admin.GetWeights)
	admin.PUT("/weights", d.Admin.UpdateWeights)
	admin.GET("/matching/metrics", d.Admin.Metrics)
	admin.POST("/matching/cache/flush", d.Admin.FlushMatches)
	admin.PUT("/synonyms", d.Admin.PutSynonyms)
	admin.PUT("/locations", d.Admin.PutLocation)
}
