// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "TalentBoard-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"TalentBoard-backend/internal/controller"
	"TalentBoard-backend/internal/middleware"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	ct := controller.NewController(s.Core)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.EnvRateLimitMiddleware())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		// Access is intentionally open: single-tenant internal deployment.
		jobRoute := v1.Group("/jobs")
		{
			jobRoute.GET("", ct.GetJobs)
			jobRoute.POST("", ct.CreateJob)
			jobRoute.PATCH(":id", ct.EditJob)
			jobRoute.DELETE(":id", ct.DeleteJob)
			jobRoute.POST(":id/select", ct.SelectJob)
			jobRoute.POST(":id/jd", middleware.SizeLimit(10<<20), ct.UploadJobDescription)

			jobRoute.POST(":id/candidates", ct.CreateCandidate)
			jobRoute.PATCH(":id/candidates/:candidate_id", ct.EditCandidate)
			jobRoute.DELETE(":id/candidates/:candidate_id", ct.DeleteCandidate)
			jobRoute.POST(":id/candidates/:candidate_id/move", ct.MoveCandidate)
			jobRoute.POST(":id/candidates/:candidate_id/resume", middleware.SizeLimit(10<<20), ct.UploadResume)

			jobRoute.POST(":id/intake", middleware.SizeLimit(50<<20), ct.BulkIntake)
		}

		v1.GET("board", ct.GetBoard)
		v1.GET("attachments/*key", ct.GetAttachment)

		viewRoute := v1.Group("/views")
		{
			viewRoute.GET("", ct.ListPresets)
			viewRoute.POST("", ct.SavePreset)
			viewRoute.POST(":name/apply", ct.ApplyPreset)
			viewRoute.DELETE(":name", ct.DeletePreset)
		}

		v1.GET("export/json", ct.ExportJSON)
		v1.GET("export/csv", ct.ExportCSV)
		v1.POST("import", ct.ImportJSON)

		v1.GET("backend", ct.GetBackend)
		v1.PUT("backend", ct.SwitchBackend)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	if s.DB == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "up",
			"message": "local-only mode",
		})
		return
	}
	c.JSON(http.StatusOK, s.DB.Health())
}
