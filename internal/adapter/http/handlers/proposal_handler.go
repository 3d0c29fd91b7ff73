package handlers

import (
	"context"
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
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
)

// ProposalHandler handles HTTP requests for commercial proposals: the
// creation wizard endpoints (quote, recommend, create), the backoffice list
// and lifecycle transitions, and the PDF download.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	validUntil, err := payload.ResolveValidUntil()
	if err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.CreateProposal(c.Request.Context(), usecase.CreateProposalCommand{
		Title:        payload.Title,
		Product:      payload.Product,
		Profile:      payload.CompanyProfile.ToEntity(),
		Modules:      payload.Modules,
		PaymentTerms: payload.PaymentTerms,
		ValidUntil:   validUntil,
		Notes:        payload.Notes,
		CreatedBy:    payload.CreatedBy,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(p))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

func (h *ProposalHandler) ListProposals(c *gin.Context) {
	ps, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(ps))
}

func (h *ProposalHandler) SendProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.Send)
}

func (h *ProposalHandler) AcceptProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.Accept)
}

func (h *ProposalHandler) RefuseProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.Refuse)
}

func (h *ProposalHandler) patchProposalStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Proposal, error),
) {
	p, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// QuoteProposal prices a product/module selection without persisting anything.
func (h *ProposalHandler) QuoteProposal(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Quote(c.Request.Context(), usecase.QuoteCommand{
		Product:      payload.Product,
		Modules:      payload.Modules,
		Employees:    payload.Employees,
		Revenue:      payload.Revenue,
		PaymentTerms: payload.PaymentTerms,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingResult(result))
}

// RecommendModules returns the default module selection for a profile.
func (h *ProposalHandler) RecommendModules(c *gin.Context) {
	var payload request.RecommendRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	modules, err := h.usecase.Recommend(c.Request.Context(), payload.Product, payload.CompanyProfile.ToEntity())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.RecommendationResponse{Modules: modules})
}

// DownloadProposalPDF streams the rendered proposal.
func (h *ProposalHandler) DownloadProposalPDF(c *gin.Context) {
	pdf, err := h.usecase.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="proposta.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrUnknownProductKey),
		errors.Is(err, usecase.ErrInvalidCompanyProfile):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotRenderable):
		return pkg.NewDomainErrorSimple("RENDERER_UNAVAILABLE", "Proposal rendering is not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
