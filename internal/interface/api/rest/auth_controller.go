package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profile-manager-api/internal/application/ports"
	"profile-manager-api/internal/domain/user"
	"profile-manager-api/internal/infrastructure/jwt"
	"profile-manager-api/internal/interface/api/rest/dto/auth"
)

const tokenTTL = time.Hour

type AuthController struct {
	logger         *zap.Logger
	profileService ports.ProfileService
	jwtService     *jwt.Service
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	profileService ports.ProfileService,
	jwtService *jwt.Service,
) *AuthController {
	ac := &AuthController{
		logger:         logger,
		profileService: profileService,
		jwtService:     jwtService,
	}

	r.POST(RouteToken, ac.TokenHandler)

	return ac
}

// TokenHandler issues a bearer token for a registered identity key. The
// identity provider upstream has already authenticated the caller; this
// service only checks the account is live.
func (ac *AuthController) TokenHandler(c *gin.Context) {
	var req auth.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	identityKey := strings.TrimSpace(req.IdentityKey)
	if identityKey == "" {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "identity_key is required"},
		)
		return
	}

	u, err := ac.profileService.FindByIdentityKey(c.Request.Context(), identityKey)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindByIdentityKey() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}
	if u.Status() != user.StatusActive {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "user is not active"},
		)
		return
	}

	token, err := ac.jwtService.GenerateJWT(u.IdentityKey, u.Email, u.Role.String(), tokenTTL)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to generate token"},
		)
		ac.logger.Error("GenerateJWT() error", zap.Error(err), zap.Stringer("user_uuid", u.UUID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}
