package handlers

import (
	"errors"
	"net/http"

	request "nextops_proposals/internal/adapter/http/dto/request"
	"nextops_proposals/internal/usecase"
	"nextops_proposals/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidConfigPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_CONFIG", "Invalid pricing config payload", http.StatusBadRequest)
)

// PricingConfigHandler exposes the settings overlay. The response body is the
// overlay itself (complete, defaults filled in), so the settings form can be
// round-tripped through PUT unchanged.

type PricingConfigHandler struct {
	usecase usecase.IPricingConfigUseCase
}

func NewPricingConfigHandler(uc usecase.IPricingConfigUseCase) *PricingConfigHandler {
	return &PricingConfigHandler{usecase: uc}
}

func (h *PricingConfigHandler) GetPricingConfig(c *gin.Context) {
	cfg, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapPricingConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *PricingConfigHandler) UpdatePricingConfig(c *gin.Context) {
	var payload request.PricingConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	cfg, err := h.usecase.Update(c.Request.Context(), payload.ToConfig(), c.GetHeader("X-User"))
	if err != nil {
		appErr := mapPricingConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func mapPricingConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPricingConfig):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
