// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/gin-gonic/gin"
)

// rolePages holds the per-role paths, templates and login field name
type rolePages struct {
	loginPath     string
	loginPage     string
	loginField    string
	registerPage  string
	dashboardPath string
}

var pagesByRole = map[models.Role]rolePages{
	models.RoleStudent: {
		loginPath:     "/student",
		loginPage:     "student.html",
		loginField:    "sname",
		registerPage:  "student_new.html",
		dashboardPath: "/student-dashboard",
	},
	models.RoleTeacher: {
		loginPath:     "/teacher",
		loginPage:     "teacher.html",
		loginField:    "tname",
		registerPage:  "teacher_new.html",
		dashboardPath: "/teacher-dashboard",
	},
}

// LoginPath returns the login page a guard for role redirects to
func LoginPath(role models.Role) string {
	return pagesByRole[role].loginPath
}

// render writes an HTML page with status 200. data is never nil so templates
// can look up optional keys.
func render(ctx *gin.Context, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	ctx.HTML(http.StatusOK, page, data)
}

// optionalForm returns nil when the field was not posted at all
func optionalForm(ctx *gin.Context, key string) *string {
	if v, ok := ctx.GetPostForm(key); ok {
		return &v
	}
	return nil
}

// PageController serves the pages that need no data
type PageController struct{}

// NewPageController creates a new PageController
func NewPageController() *PageController {
	return &PageController{}
}

// Home renders the landing page
func (c *PageController) Home(ctx *gin.Context) {
	render(ctx, "home.html", nil)
}

// Index renders the portal selection page
func (c *PageController) Index(ctx *gin.Context) {
	render(ctx, "index.html", nil)
}

// TeacherAchievements renders the submission entry page
func (c *PageController) TeacherAchievements(ctx *gin.Context) {
	render(ctx, "teacher_achievements.html", nil)
}
