package controllers

import (
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models/dto"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/middleware"
	"github.com/gin-gonic/gin"
)

// DashboardController renders the student and teacher dashboards
type DashboardController struct {
	achievementService AchievementService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(achievementService AchievementService) *DashboardController {
	return &DashboardController{
		achievementService: achievementService,
	}
}

// StudentDashboard renders the session student's dashboard
func (c *DashboardController) StudentDashboard(ctx *gin.Context) {
	render(ctx, "student_dashboard.html", gin.H{
		"student": middleware.CurrentIdentity(ctx, models.RoleStudent),
	})
}

// StudentAchievements renders the session student's achievements page
func (c *DashboardController) StudentAchievements(ctx *gin.Context) {
	render(ctx, "student_achievements.html", gin.H{
		"student": middleware.CurrentIdentity(ctx, models.RoleStudent),
	})
}

// TeacherDashboard renders the aggregates for the session teacher
func (c *DashboardController) TeacherDashboard(ctx *gin.Context) {
	teacher := middleware.CurrentIdentity(ctx, models.RoleTeacher)

	view := &dto.TeacherDashboard{
		TeacherID:   teacher.ID,
		TeacherName: teacher.Name,
		TeacherDept: teacher.Dept,
	}

	stats, err := c.achievementService.Dashboard(ctx.Request.Context(), teacher.ID)
	if err != nil {
		render(ctx, "teacher_dashboard.html", gin.H{
			"dashboard": view,
			"error":     middleware.PageMessage(err, middleware.MsgGenericError),
		})
		return
	}

	view.TotalAchievements = stats.TotalAchievements
	view.StudentsManaged = stats.StudentsManaged
	view.ThisWeek = stats.ThisWeek
	view.Recent = dto.NewAchievementViews(stats.Recent)

	render(ctx, "teacher_dashboard.html", gin.H{"dashboard": view})
}
