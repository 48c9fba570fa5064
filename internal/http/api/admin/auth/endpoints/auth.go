package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/nakai/internal/http/api"
	"github.com/Nixie-Tech-LLC/nakai/internal/http/api/admin/auth/packets"
	"github.com/Nixie-Tech-LLC/nakai/internal/http/middleware"
)

// AuthPublicModule mounts the public login endpoint (/auth/login)
func AuthPublicModule(jwtSecret, passwordHash string, now func() time.Time) api.Module {
	ctl := newAccountManager(jwtSecret, passwordHash, now)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/login", ctl.adminLogin)
	})
}

// AuthSessionModule mounts the token check endpoint (JWT required)
func AuthSessionModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/session", func(ctx *gin.Context, admin *middleware.Admin) (any, *api.APIError) {
			return gin.H{"subject": admin.Subject}, nil
		})
	})
}

type AccountManager struct {
	jwtSecret    string
	passwordHash string
	now          func() time.Time
}

func newAccountManager(secret, passwordHash string, now func() time.Time) *AccountManager {
	return &AccountManager{jwtSecret: secret, passwordHash: passwordHash, now: now}
}

// POST /api/admin/auth/login
func (a *AccountManager) adminLogin(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if !middleware.CheckPassword(a.passwordHash, request.Password) {
		log.Warn().Str("ip", ctx.ClientIP()).Msg("admin login rejected")
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: middleware.ErrInvalidCredentials.Error()}
	}

	token, err := middleware.GenerateJWT(middleware.AdminSubject, a.jwtSecret, a.now())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return packets.TokenResponse{Token: token, ExpiresIn: int(middleware.TokenTTL.Seconds())}, nil
}
