package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/models"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContextKey is the gin context key holding the request's *Data
const ContextKey = "sessionData"

// RecommendedSecretLength is the minimum secret length (32 bytes, hex encoded)
const RecommendedSecretLength = 64

const keyLoggedIn = "logged_in"

// Identity is the denormalized copy of a logged-in account kept in the cookie
type Identity struct {
	ID   string
	Name string
	Dept string
}

// Data is the request-scoped view of the session
type Data struct {
	LoggedIn bool
	Student  *Identity
	Teacher  *Identity
}

// For returns the identity logged in under role, or nil
func (d *Data) For(role models.Role) *Identity {
	if d == nil || !d.LoggedIn {
		return nil
	}
	switch role {
	case models.RoleStudent:
		return d.Student
	case models.RoleTeacher:
		return d.Teacher
	default:
		return nil
	}
}

// Options configures the session cookie
type Options struct {
	MaxAge int
	Secure bool
}

// NewStore creates the signed cookie store backing all sessions
func NewStore(secret string, opts Options) sessions.Store {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   opts.MaxAge,
		Secure:   opts.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// ResolveSecret returns the configured secret, or a freshly generated one
// when it is unset. Sessions signed with a generated key do not survive a restart.
func ResolveSecret(configured string, lgr zerolog.Logger) (string, error) {
	if configured != "" {
		if len(configured) < RecommendedSecretLength {
			lgr.Warn().Msg("SECRET_KEY is shorter than recommended 64 characters (32 bytes)")
		}
		return configured, nil
	}

	buf := make([]byte, RecommendedSecretLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	lgr.Warn().Msg("Using generated secret key. Set SECRET_KEY environment variable for production.")
	return hex.EncodeToString(buf), nil
}

// Load reads the session payload into a Data value
func Load(s sessions.Session) *Data {
	data := &Data{}
	if loggedIn, ok := s.Get(keyLoggedIn).(bool); ok {
		data.LoggedIn = loggedIn
	}
	data.Student = loadIdentity(s, models.RoleStudent)
	data.Teacher = loadIdentity(s, models.RoleTeacher)
	return data
}

// SignIn marks the session as logged in and stores the role's identity.
// Fields of the other role are left as they are.
func SignIn(s sessions.Session, role models.Role, identity Identity) error {
	s.Set(keyLoggedIn, true)
	s.Set(key(role, "id"), identity.ID)
	s.Set(key(role, "name"), identity.Name)
	s.Set(key(role, "dept"), identity.Dept)
	return s.Save()
}

// Clear drops every value of every role
func Clear(s sessions.Session) error {
	s.Clear()
	return s.Save()
}

// FromContext returns the Data stored by the session middleware.
// It never returns nil.
func FromContext(c *gin.Context) *Data {
	if v, ok := c.Get(ContextKey); ok {
		if data, ok := v.(*Data); ok && data != nil {
			return data
		}
	}
	return &Data{}
}

func loadIdentity(s sessions.Session, role models.Role) *Identity {
	id, _ := s.Get(key(role, "id")).(string)
	if id == "" {
		return nil
	}
	name, _ := s.Get(key(role, "name")).(string)
	dept, _ := s.Get(key(role, "dept")).(string)
	return &Identity{ID: id, Name: name, Dept: dept}
}

func key(role models.Role, field string) string {
	return string(role) + "_" + field
}
