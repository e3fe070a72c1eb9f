package router

import (
	"net/http"
	"time"

	"github.com/classhub/classhub-backend/internal/config"
	"github.com/classhub/classhub-backend/internal/handler"
	"github.com/classhub/classhub-backend/internal/middleware"
	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Admin   *handler.AdminHandler
	Teacher *handler.TeacherHandler
	Student *handler.StudentHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Serve uploaded profile images statically.
	router.Static("/uploads", cfg.UploadDir)

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiters for the two abuse-prone surfaces.
	authLimiter := middleware.NewRateLimiter(30, time.Minute)
	genaiLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)

		auth.POST("/logout", middleware.RequireAuth(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireAuth(authService), handlers.Auth.Me)
	}

	// ─── 2. Admin Group ────────────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireRole(authService, model.RoleAdmin))
	{
		adminAPI.POST("/admins", handlers.Admin.RegisterAdmin)

		adminAPI.GET("/teachers", handlers.Admin.ListTeachers)
		adminAPI.POST("/teachers", handlers.Admin.CreateTeacher)
		adminAPI.PUT("/teachers/:id", handlers.Admin.UpdateTeacher)

		adminAPI.GET("/students", handlers.Admin.ListStudents)
		adminAPI.POST("/students", handlers.Admin.CreateStudent)
		adminAPI.PUT("/students/:id", handlers.Admin.UpdateStudent)
		adminAPI.DELETE("/students/:id/session", handlers.Admin.ResetStudentSession)

		adminAPI.PATCH("/accounts/:kind/:id/suspend", handlers.Admin.ToggleSuspend)
		adminAPI.DELETE("/accounts/:kind/:id", handlers.Admin.Terminate)

		adminAPI.GET("/exams", handlers.Admin.ListAllExams)

		adminAPI.PUT("/profile", handlers.Admin.UpdateProfile)
	}

	// ─── 3. Teacher Group ──────────────────────────────────────────────
	teacherAPI := router.Group("/api/v1/teacher")
	teacherAPI.Use(middleware.RequireRole(authService, model.RoleTeacher))
	{
		teacherAPI.GET("/exams", handlers.Teacher.ListExams)
		teacherAPI.POST("/exams", handlers.Teacher.CreateExam)
		teacherAPI.PATCH("/exams/:id", handlers.Teacher.UpdateExam)
		teacherAPI.DELETE("/exams/:id", handlers.Teacher.DeleteExam)
		teacherAPI.GET("/exams/:id/results", handlers.Teacher.ExamResults)

		teacherAPI.POST("/results", handlers.Teacher.PublishResult)

		teacherAPI.GET("/students", handlers.Teacher.ListStudents)
		teacherAPI.POST("/students", handlers.Teacher.CreateStudent)
		teacherAPI.PATCH("/students/:id/suspend", handlers.Teacher.ToggleStudentSuspend)

		teacherAPI.PUT("/profile", handlers.Teacher.UpdateProfile)
	}

	// ─── 4. Student Group ──────────────────────────────────────────────
	studentAPI := router.Group("/api/v1/student")
	studentAPI.Use(middleware.RequireRole(authService, model.RoleStudent))
	{
		studentAPI.GET("/exams", handlers.Student.AvailableExams)
		studentAPI.POST("/exams/:id/submit", handlers.Student.SubmitExam)

		studentAPI.GET("/results", handlers.Student.MyResults)

		studentAPI.POST("/notes/generate", genaiLimiter.Middleware(), handlers.Student.GenerateNotes)
		studentAPI.POST("/notes/ask", genaiLimiter.Middleware(), handlers.Student.AskQuestion)
		studentAPI.POST("/notes", handlers.Student.SaveNote)
		studentAPI.GET("/notes", handlers.Student.ListNotes)

		studentAPI.PUT("/profile", handlers.Student.UpdateProfile)
	}

	return router
}
