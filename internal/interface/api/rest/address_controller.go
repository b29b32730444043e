package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profile-manager-api/internal/application/ports"
	addressDomain "profile-manager-api/internal/domain/address"
	"profile-manager-api/internal/infrastructure/jwt"
	"profile-manager-api/internal/interface/api/rest/dto/address"
	"profile-manager-api/internal/interface/api/rest/middleware"
	"profile-manager-api/internal/interface/api/rest/validator"
)

type AddressController struct {
	addressService ports.AddressService
	logger         *zap.Logger
}

func NewAddressController(
	r *gin.Engine,
	addressService ports.AddressService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AddressController {
	ac := &AddressController{
		addressService: addressService,
		logger:         logger,
	}

	auth := middleware.AuthMiddleware(jwtService)

	r.GET(RouteAddresses, ac.SearchAddressesHandler)
	r.GET(RouteAddressesNearby, ac.NearbyHandler)
	r.GET(RouteAddress, ac.GetAddressHandler)
	r.POST(RouteAddresses, auth, ac.CreateAddressHandler)
	r.PATCH(RouteAddress, auth, ac.UpdateAddressHandler)
	r.DELETE(RouteAddress, auth, ac.DeleteAddressHandler)

	return ac
}

func (ac *AddressController) SearchAddressesHandler(c *gin.Context) {
	filter := addressDomain.SearchFilter{
		Text:       strings.TrimSpace(c.Query("q")),
		City:       strings.TrimSpace(c.Query("city")),
		State:      strings.TrimSpace(c.Query("state")),
		PostalCode: strings.TrimSpace(c.Query("postal_code")),
		Country:    strings.TrimSpace(c.Query("country")),
	}

	as, err := ac.addressService.Search(c.Request.Context(), filter)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to search addresses"},
		)
		ac.logger.Error("Search() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, address.ResponseData{
		Data: address.ToResponseAddresses(as),
	})
}

func (ac *AddressController) NearbyHandler(c *gin.Context) {
	center, radiusKM, err := validator.ValidateNearbyQuery(
		c.Query("lat"),
		c.Query("lng"),
		c.Query("radius_km"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matches, err := ac.addressService.Nearby(c.Request.Context(), center, radiusKM)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to search nearby addresses"},
		)
		ac.logger.Error("Nearby() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, address.NearbyResponseData{
		Data: address.ToNearbyResponses(matches),
	})
}

func (ac *AddressController) GetAddressHandler(c *gin.Context) {
	ok, addressUUID := validator.IsUUID(c.Param("address_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "address_id must be a valid UUID"},
		)
		return
	}

	a, err := ac.addressService.FindByID(c.Request.Context(), addressUUID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get an address"},
		)
		ac.logger.Error("FindByID() error", zap.Error(err))
		return
	}
	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "address not found"},
		)
		return
	}

	c.JSON(http.StatusOK, address.ToResponseAddress(*a))
}

func (ac *AddressController) CreateAddressHandler(c *gin.Context) {
	var req address.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	in, errs := validator.ValidateAddress(req)
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	a, err := ac.addressService.Create(c.Request.Context(), in)
	if err != nil {
		ac.respondError(c, err, "Create()")
		return
	}

	c.JSON(http.StatusCreated, address.ToResponseAddress(*a))
}

func (ac *AddressController) UpdateAddressHandler(c *gin.Context) {
	ok, addressUUID := validator.IsUUID(c.Param("address_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "address_id must be a valid UUID"},
		)
		return
	}

	var req address.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	in, errs := validator.ValidateAddressUpdate(req)
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	a, err := ac.addressService.Update(c.Request.Context(), addressUUID, in)
	if err != nil {
		ac.respondError(c, err, "Update()")
		return
	}
	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "address not found"},
		)
		return
	}

	c.JSON(http.StatusOK, address.ToResponseAddress(*a))
}

func (ac *AddressController) DeleteAddressHandler(c *gin.Context) {
	ok, addressUUID := validator.IsUUID(c.Param("address_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "address_id must be a valid UUID"},
		)
		return
	}

	if err := ac.addressService.Delete(c.Request.Context(), addressUUID); err != nil {
		ac.respondError(c, err, "Delete()")
		return
	}

	c.Status(http.StatusNoContent)
}

func (ac *AddressController) respondError(c *gin.Context, err error, op string) {
	var conflict *addressDomain.ConflictError

	switch {
	case errors.Is(err, addressDomain.ErrAddressNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
	case errors.Is(err, addressDomain.ErrAddressInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "internal error"},
		)
		ac.logger.Error(op+" error", zap.Error(err))
	}
}
