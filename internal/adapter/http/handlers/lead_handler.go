package handlers

import (
	"errors"
	"net/http"

	request "nextops_proposals/internal/adapter/http/dto/request"
	response "nextops_proposals/internal/adapter/http/dto/response"
	"nextops_proposals/internal/domain/entities"
	"nextops_proposals/internal/usecase"
	"nextops_proposals/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
)

// LeadHandler handles the public lead intake endpoint plus the backoffice
// pipeline operations.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	l, err := h.usecase.Create(c.Request.Context(), usecase.CreateLeadCommand{
		Company:     payload.Company,
		ContactName: payload.Name,
		Email:       payload.Email,
		Phone:       payload.Phone,
		Employees:   payload.Employees,
		Industry:    payload.Industry,
		Message:     payload.Message,
		Source:      payload.ResolveSource(),
		Consent:     payload.Consent,
	})
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(l))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	l, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLead(l))
}

func (h *LeadHandler) ListLeads(c *gin.Context) {
	ls, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(ls))
}

func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	var payload request.LeadStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	l, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.LeadStatus(payload.Status))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLead(l))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID),
		errors.Is(err, usecase.ErrInvalidLeadInput),
		errors.Is(err, usecase.ErrInvalidLeadStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConsentRequired):
		return pkg.NewDomainErrorSimple("CONSENT_REQUIRED", "Consent is required for website submissions", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
