package routes

import (
	"nextops_proposals/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
	PathLeads     = "/leads"
	PathSettings  = "/settings"
)

func addBackofficeRoutes(
	rg *gin.RouterGroup,
	proposalHandler *handlers.ProposalHandler,
	leadHandler *handlers.LeadHandler,
	pricingConfigHandler *handlers.PricingConfigHandler,
) {
	proposals := rg.Group(PathProposals)
	{
		// Wizard endpoints: stateless preview before persisting.
		proposals.POST("/quote", proposalHandler.QuoteProposal)
		proposals.POST("/recommend", proposalHandler.RecommendModules)

		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.GET("/:id/pdf", proposalHandler.DownloadProposalPDF)
		proposals.PATCH("/:id/send", proposalHandler.SendProposal)
		proposals.PATCH("/:id/accept", proposalHandler.AcceptProposal)
		proposals.PATCH("/:id/refuse", proposalHandler.RefuseProposal)
	}

	leads := rg.Group(PathLeads)
	{
		// POST is public: the landing page posts here.
		leads.POST("", leadHandler.CreateLead)
		leads.GET("", leadHandler.ListLeads)
		leads.GET("/:id", leadHandler.GetLead)
		leads.PATCH("/:id/status", leadHandler.UpdateLeadStatus)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("/pricing", pricingConfigHandler.GetPricingConfig)
		settings.PUT("/pricing", pricingConfigHandler.UpdatePricingConfig)
	}
}
