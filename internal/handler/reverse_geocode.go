package handler

import (
	"context"
	"errors"
	"net/http"

	"geocache/internal/apperr"
	"geocache/internal/geo"
	"geocache/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ReverseGeocodeHandler handles reverse geocoding requests
type ReverseGeocodeHandler struct {
	service GeoCodingService
}

// Service interface for dependency injection
type GeoCodingService interface {
	ReverseGeocode(ctx context.Context, lat, lon string) ([]models.ResolvedAddress, error)
	ReverseGeocodeBulk(ctx context.Context, requests []models.BulkReverseRequest) ([]models.ResolvedAddress, error)
}

// NewReverseGeocodeHandler creates a new reverse geocode handler
func NewReverseGeocodeHandler(svc GeoCodingService) *ReverseGeocodeHandler {
	return &ReverseGeocodeHandler{service: svc}
}

// RegisterRoutes mounts the reverse geocoding endpoints on r
func (h *ReverseGeocodeHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/geocode/reverse", h.ReverseGeocode)
	r.POST("/geocode/reverse/bulk", h.ReverseGeocodeBulk)
}

// ReverseGeocode godoc
//
//	@Summary	Reverse geocode a coordinate
//	@Tags		geocode
//	@Produce	json
//	@Param		lat	query		string	true	"Latitude in decimal degrees"
//	@Param		lon	query		string	true	"Longitude in decimal degrees"
//	@Success	200	{array}		models.ResolvedAddress
//	@Failure	400	{string}	string
//	@Failure	500	{string}	string
//	@Router		/geocode/reverse [get]
func (h *ReverseGeocodeHandler) ReverseGeocode(c *gin.Context) {
	lat, ok := c.GetQuery("lat")
	if !ok {
		c.JSON(http.StatusBadRequest, "missing lat")
		return
	}
	lon, ok := c.GetQuery("lon")
	if !ok {
		c.JSON(http.StatusBadRequest, "missing lon")
		return
	}

	addresses, err := h.service.ReverseGeocode(c.Request.Context(), lat, lon)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}

// ReverseGeocodeBulk godoc
//
//	@Summary	Reverse geocode several coordinates
//	@Description	Results of all items are concatenated in request order.
//	@Tags		geocode
//	@Accept		json
//	@Produce	json
//	@Param		body	body		[]models.BulkReverseRequest	true	"Coordinates"
//	@Success	200		{array}		models.ResolvedAddress
//	@Failure	400		{string}	string
//	@Failure	500		{string}	string
//	@Router		/geocode/reverse/bulk [post]
func (h *ReverseGeocodeHandler) ReverseGeocodeBulk(c *gin.Context) {
	var requests []models.BulkReverseRequest
	if err := c.ShouldBindJSON(&requests); err != nil {
		c.JSON(http.StatusBadRequest, "invalid request body")
		return
	}

	addresses, err := h.service.ReverseGeocodeBulk(c.Request.Context(), requests)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}

func (h *ReverseGeocodeHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)

	status := apperr.HTTPStatus(err)
	if status != http.StatusBadRequest {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("reverse geocoding failed")
		c.JSON(status, "internal server error")
		return
	}

	var coordErr *geo.CoordinateError
	if errors.As(err, &coordErr) {
		c.JSON(status, "invalid "+coordErr.Field)
		return
	}
	c.JSON(status, "invalid coordinate")
}
