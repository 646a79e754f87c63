package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     app.Config.GetCORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if app.Config.Limiter.Enabled {
		r.Use(app.RateLimitMiddleware())
	}

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", app.Handler.Register)
		authRoutes.POST("/login", app.Handler.Login)
		authRoutes.GET("/me", app.AuthMiddleware(), app.Handler.Me)
	}

	jobs := r.Group("/jobPostings")
	jobs.Use(app.AuthMiddleware())
	{
		jobs.GET("/jobs", app.Handler.ListJobs)
		jobs.POST("/jobs", app.Handler.CreateJob)
		jobs.GET("/jobs/:id", app.Handler.GetJob)
		jobs.PATCH("/jobs/:id", app.Handler.PatchJob)
		jobs.DELETE("/jobs/:id", app.Handler.DeleteJob)
		jobs.GET("/jobs/:id/interviews", app.Handler.ListJobInterviews)
	}

	candidates := r.Group("/candidates")
	candidates.Use(app.AuthMiddleware())
	{
		candidates.GET("/jobs/:jobId/candidates", app.Handler.ListCandidates)
		candidates.POST("/jobs/:jobId/candidates", app.Handler.CreateCandidate)
		candidates.GET("/candidates/:id", app.Handler.GetCandidate)
		candidates.PATCH("/candidates/:id/status", app.Handler.UpdateCandidateStatus)
	}

	questions := r.Group("/questions")
	questions.Use(app.AuthMiddleware())
	{
		questions.GET("/jobs/:jobId/questions", app.Handler.ListQuestions)
		questions.POST("/jobs/:jobId/questions", app.Handler.CreateQuestion)
		questions.PUT("/questions/:id", app.Handler.UpdateQuestion)
		questions.DELETE("/questions/:id", app.Handler.DeleteQuestion)
	}

	interviews := r.Group("/interviews")
	interviews.Use(app.AuthMiddleware())
	{
		interviews.POST("/conductInterview", app.Handler.ConductInterview)
		// :id is a vendor conversation id for status, an interview id otherwise
		interviews.GET("/:id/status", app.Handler.GetInterviewStatus)
		interviews.POST("/:id/cancel", app.Handler.CancelInterview)
		interviews.GET("/:id/responses", app.Handler.ListInterviewResponses)
	}

	return r
}
