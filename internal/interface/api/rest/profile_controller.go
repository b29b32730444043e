package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profile-manager-api/internal/application/ports"
	userDomain "profile-manager-api/internal/domain/user"
	"profile-manager-api/internal/infrastructure/jwt"
	"profile-manager-api/internal/interface/api/rest/dto/profile"
	"profile-manager-api/internal/interface/api/rest/middleware"
	"profile-manager-api/internal/interface/api/rest/validator"
)

type ProfileController struct {
	profileService ports.ProfileService
	logger         *zap.Logger
	maxPageSize    int
}

func NewProfileController(
	r *gin.Engine,
	profileService ports.ProfileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	maxPageSize int,
) *ProfileController {
	pc := &ProfileController{
		profileService: profileService,
		logger:         logger,
		maxPageSize:    maxPageSize,
	}

	auth := middleware.AuthMiddleware(jwtService)

	r.GET(RouteUsers, pc.SearchUsersHandler)
	r.GET(RouteUser, pc.GetUserHandler)
	r.POST(RouteUsers, auth, pc.RegisterHandler)
	r.POST(RouteUserProfile, auth, pc.CreateProfileHandler)
	r.PATCH(RouteUserProfile, auth, pc.UpdateProfileHandler)
	r.POST(RouteUserActivate, auth, pc.ActivateHandler)
	r.POST(RouteUserDeactivate, auth, pc.DeactivateHandler)
	r.POST(RouteUserRestore, auth, pc.RestoreHandler)
	r.DELETE(RouteUser, auth, pc.SoftDeleteHandler)
	r.DELETE(RouteUserHardDelete, auth, pc.HardDeleteHandler)

	return pc
}

func (pc *ProfileController) SearchUsersHandler(c *gin.Context) {
	filter, errs := validator.ValidateUserSearch(c.Request.URL.Query(), pc.maxPageSize)
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid query",
			"details": errs,
		})
		return
	}

	users, total, err := pc.profileService.Search(c.Request.Context(), filter)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to search users"},
		)
		pc.logger.Error("Search() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, profile.ResponseData{
		Data:   profile.ToResponseUsers(users),
		Total:  total,
		Offset: filter.Offset,
		Limit:  filter.Limit,
	})
}

func (pc *ProfileController) GetUserHandler(c *gin.Context) {
	ok, userUUID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	u, a, err := pc.profileService.FindByID(c.Request.Context(), userUUID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		pc.logger.Error("FindByID() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, profile.ToResponseUser(*u, a))
}

func (pc *ProfileController) RegisterHandler(c *gin.Context) {
	var req profile.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	identityKey, email, role, errs := validator.ValidateRegister(req)
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := pc.profileService.Register(c.Request.Context(), identityKey, email, role)
	if err != nil {
		pc.respondError(c, err, "Register()")
		return
	}

	c.JSON(http.StatusCreated, profile.ToResponseUser(*u, nil))
}

func (pc *ProfileController) CreateProfileHandler(c *gin.Context) {
	ok, userUUID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	var req profile.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	in, errs := validator.ValidateProfileCreate(req, time.Now().UTC())
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, a, err := pc.profileService.CreateProfile(c.Request.Context(), userUUID, in)
	if err != nil {
		pc.respondError(c, err, "CreateProfile()")
		return
	}

	c.JSON(http.StatusCreated, profile.ToResponseUser(*u, a))
}

func (pc *ProfileController) UpdateProfileHandler(c *gin.Context) {
	ok, userUUID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	var req profile.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	in, errs := validator.ValidateProfileUpdate(req, time.Now().UTC())
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, a, err := pc.profileService.UpdateProfile(c.Request.Context(), userUUID, in)
	if err != nil {
		pc.respondError(c, err, "UpdateProfile()")
		return
	}

	c.JSON(http.StatusOK, profile.ToResponseUser(*u, a))
}

func (pc *ProfileController) ActivateHandler(c *gin.Context) {
	pc.lifecycleHandler(c, pc.profileService.Activate, "Activate()")
}

func (pc *ProfileController) DeactivateHandler(c *gin.Context) {
	pc.lifecycleHandler(c, pc.profileService.Deactivate, "Deactivate()")
}

func (pc *ProfileController) RestoreHandler(c *gin.Context) {
	pc.lifecycleHandler(c, pc.profileService.Restore, "Restore()")
}

func (pc *ProfileController) SoftDeleteHandler(c *gin.Context) {
	pc.lifecycleHandler(c, pc.profileService.SoftDelete, "SoftDelete()")
}

func (pc *ProfileController) HardDeleteHandler(c *gin.Context) {
	ok, userUUID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	if err := pc.profileService.HardDelete(c.Request.Context(), userUUID); err != nil {
		pc.respondError(c, err, "HardDelete()")
		return
	}

	c.Status(http.StatusNoContent)
}

func (pc *ProfileController) lifecycleHandler(
	c *gin.Context,
	op func(ctx context.Context, id userDomain.UUID) (*userDomain.User, error),
	name string,
) {
	ok, userUUID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	u, err := op(c.Request.Context(), userUUID)
	if err != nil {
		pc.respondError(c, err, name)
		return
	}
	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, profile.ToResponseUser(*u, nil))
}

func (pc *ProfileController) respondError(c *gin.Context, err error, op string) {
	var conflict *userDomain.ConflictError
	var transition *userDomain.InvalidTransitionError

	switch {
	case errors.Is(err, userDomain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, userDomain.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &transition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, userDomain.ErrAddressReference):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "internal error"},
		)
		pc.logger.Error(op+" error", zap.Error(err))
	}
}
