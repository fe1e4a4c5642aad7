package routes

import (
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/controllers"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/middleware"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all application routes. The engine must already
// carry the session middleware and middleware.LoadSession.
func SetupRouter(
	router *gin.Engine,
	pageController *controllers.PageController,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	achievementController *controllers.AchievementController,
	healthController *controllers.HealthController,
) {
	// --- Public pages ---
	router.GET("/", pageController.Home)
	router.GET("/index", pageController.Index)
	router.GET("/teacher-achievements", pageController.TeacherAchievements)

	// --- Login, registration and logout ---
	for _, role := range []models.Role{models.RoleStudent, models.RoleTeacher} {
		login := controllers.LoginPath(role)
		router.GET(login, authController.LoginForm(role))
		router.POST(login, authController.Login(role))
		router.GET(login+"-new", authController.RegisterForm(role))
		router.POST(login+"-new", authController.Register(role))
	}
	router.GET("/logout", authController.Logout)

	// --- Student session routes ---
	student := router.Group("")
	student.Use(middleware.RequireRole(models.RoleStudent, controllers.LoginPath(models.RoleStudent)))
	{
		student.GET("/student-dashboard", dashboardController.StudentDashboard)
		student.GET("/student-achievements", dashboardController.StudentAchievements)
	}

	// --- Teacher session routes ---
	teacher := router.Group("")
	teacher.Use(middleware.RequireRole(models.RoleTeacher, controllers.LoginPath(models.RoleTeacher)))
	{
		teacher.GET("/teacher-dashboard", dashboardController.TeacherDashboard)
		teacher.GET("/submit_achievements", achievementController.Form)
		teacher.POST("/submit_achievements", achievementController.Submit)
		teacher.GET("/all-achievements", achievementController.List)
		teacher.GET("/all-achievements/export", achievementController.Export)
	}

	// --- Operations ---
	router.GET("/healthz", healthController.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}
