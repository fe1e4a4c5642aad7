package controllers

import (
	"context"
	"net/http"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models/dto"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/middleware"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/session"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AccountService is the account logic the auth pages depend on
type AccountService interface {
	Register(ctx context.Context, role models.Role, req *dto.RegisterRequest) (*models.Account, error)
	Authenticate(ctx context.Context, role models.Role, req *dto.LoginRequest) (*models.Account, error)
}

// AuthController handles login, registration and logout for both roles
type AuthController struct {
	accountService AccountService
	logger         zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(accountService AccountService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		accountService: accountService,
		logger:         logger,
	}
}

// LoginForm renders the login page for role
func (c *AuthController) LoginForm(role models.Role) gin.HandlerFunc {
	pages := pagesByRole[role]
	return func(ctx *gin.Context) {
		render(ctx, pages.loginPage, nil)
	}
}

// Login checks the posted credentials and starts a session for role
func (c *AuthController) Login(role models.Role) gin.HandlerFunc {
	pages := pagesByRole[role]
	return func(ctx *gin.Context) {
		req := &dto.LoginRequest{
			Identifier: ctx.PostForm(pages.loginField),
			Password:   ctx.PostForm("password"),
		}

		account, err := c.accountService.Authenticate(ctx.Request.Context(), role, req)
		if err != nil {
			render(ctx, pages.loginPage, gin.H{"error": middleware.PageMessage(err, middleware.MsgDatabaseError)})
			return
		}

		identity := session.Identity{ID: account.ID, Name: account.Name, Dept: account.DeptOrEmpty()}
		if err := session.SignIn(sessions.Default(ctx), role, identity); err != nil {
			c.logger.Error().Err(err).Str("role", role.String()).Str("identifier", account.ID).Msg("Failed to save session")
			render(ctx, pages.loginPage, gin.H{"error": middleware.MsgGenericError})
			return
		}

		ctx.Redirect(http.StatusFound, pages.dashboardPath)
	}
}

// RegisterForm renders the registration page for role
func (c *AuthController) RegisterForm(role models.Role) gin.HandlerFunc {
	pages := pagesByRole[role]
	return func(ctx *gin.Context) {
		render(ctx, pages.registerPage, nil)
	}
}

// Register creates an account from the posted form and redirects to login
func (c *AuthController) Register(role models.Role) gin.HandlerFunc {
	pages := pagesByRole[role]
	prefix := role.String() + "_"
	return func(ctx *gin.Context) {
		req := &dto.RegisterRequest{
			ID:       ctx.PostForm(prefix + "id"),
			Name:     ctx.PostForm(prefix + "name"),
			Email:    ctx.PostForm("email"),
			Phone:    optionalForm(ctx, "phone_number"),
			Password: ctx.PostForm("password"),
			Gender:   optionalForm(ctx, prefix+"gender"),
			Dept:     optionalForm(ctx, prefix+"dept"),
		}

		if _, err := c.accountService.Register(ctx.Request.Context(), role, req); err != nil {
			render(ctx, pages.registerPage, gin.H{"error": middleware.PageMessage(err, middleware.MsgDatabaseError)})
			return
		}

		ctx.Redirect(http.StatusFound, pages.loginPath)
	}
}

// Logout clears the session and returns to the landing page
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := session.Clear(sessions.Default(ctx)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to clear session")
	}
	ctx.Redirect(http.StatusFound, "/")
}
