package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models/dto"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var achievementTypes = []string{
	models.AchievementTypeCompetition,
	models.AchievementTypePublication,
	models.AchievementTypeProject,
	models.AchievementTypeCertification,
	models.AchievementTypeSymposium,
	models.AchievementTypeConference,
	models.AchievementTypeOther,
}

// AchievementService is the achievement logic the teacher pages depend on
type AchievementService interface {
	Submit(ctx context.Context, teacherID string, req *dto.AchievementRequest) (*models.Achievement, error)
	Dashboard(ctx context.Context, teacherID string) (*models.TeacherStats, error)
	ListForTeacher(ctx context.Context, teacherID string) ([]*models.Achievement, error)
	Export(ctx context.Context, teacherID string) (*excelize.File, string, error)
}

// AchievementController handles achievement submission and listings
type AchievementController struct {
	achievementService AchievementService
	logger             zerolog.Logger
}

// NewAchievementController creates a new AchievementController
func NewAchievementController(achievementService AchievementService, logger zerolog.Logger) *AchievementController {
	return &AchievementController{
		achievementService: achievementService,
		logger:             logger,
	}
}

func (c *AchievementController) renderForm(ctx *gin.Context, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["types"] = achievementTypes
	render(ctx, "submit_achievements.html", data)
}

// Form renders the submission form
func (c *AchievementController) Form(ctx *gin.Context) {
	c.renderForm(ctx, nil)
}

// Submit records an achievement for the session teacher
func (c *AchievementController) Submit(ctx *gin.Context) {
	teacher := middleware.CurrentIdentity(ctx, models.RoleTeacher)

	var req dto.AchievementRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Str("teacher_id", teacher.ID).Msg("Unreadable achievement form")
		c.renderForm(ctx, gin.H{"error": middleware.MsgGenericError})
		return
	}

	fh, err := ctx.FormFile("certificate")
	switch {
	case err == nil:
		req.Certificate = fh
	case !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
		c.logger.Warn().Err(err).Str("teacher_id", teacher.ID).Msg("Unreadable certificate upload")
		c.renderForm(ctx, gin.H{"error": middleware.MsgGenericError})
		return
	}

	achievement, err := c.achievementService.Submit(ctx.Request.Context(), teacher.ID, &req)
	if err != nil {
		c.renderForm(ctx, gin.H{"error": middleware.PageMessage(err, middleware.MsgGenericError)})
		return
	}

	c.renderForm(ctx, gin.H{
		"success": fmt.Sprintf("Achievement of %s has been successfully registered!!", achievement.StudentName),
	})
}

// List renders every achievement recorded by the session teacher
func (c *AchievementController) List(ctx *gin.Context) {
	teacher := middleware.CurrentIdentity(ctx, models.RoleTeacher)

	achievements, err := c.achievementService.ListForTeacher(ctx.Request.Context(), teacher.ID)
	if err != nil {
		render(ctx, "all_achievements.html", gin.H{"error": middleware.PageMessage(err, middleware.MsgGenericError)})
		return
	}

	render(ctx, "all_achievements.html", gin.H{
		"achievements": dto.NewAchievementViews(achievements),
	})
}

// Export downloads the session teacher's listing as a spreadsheet
func (c *AchievementController) Export(ctx *gin.Context) {
	teacher := middleware.CurrentIdentity(ctx, models.RoleTeacher)

	f, filename, err := c.achievementService.Export(ctx.Request.Context(), teacher.ID)
	if err != nil {
		render(ctx, "all_achievements.html", gin.H{"error": middleware.PageMessage(err, middleware.MsgGenericError)})
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.logger.Error().Err(err).Str("teacher_id", teacher.ID).Msg("Failed to write workbook")
		render(ctx, "all_achievements.html", gin.H{"error": middleware.MsgGenericError})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
