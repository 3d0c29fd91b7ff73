package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "nextops_proposals/docs" // This will be auto-generated
	"nextops_proposals/internal/adapter/http/handlers"
	repository2 "nextops_proposals/internal/adapter/persistence/repository"
	"nextops_proposals/internal/infrastructure/database"
	"nextops_proposals/internal/infrastructure/documents"
	"nextops_proposals/internal/infrastructure/payments"
	"nextops_proposals/internal/usecase"
	"nextops_proposals/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	configRepo := repository2.NewPricingConfigDynamoRepository(ddb)

	renderer := documents.NewProposalPDFRenderer()

	var checkout interfaces.ICheckoutGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		checkout = mpGateway
	}

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, configRepo, renderer, checkout)
	leadUseCase := usecase.NewLeadUseCase(leadRepo)
	pricingConfigUseCase := usecase.NewPricingConfigUseCase(configRepo)

	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	pricingConfigHandler := handlers.NewPricingConfigHandler(pricingConfigUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBackofficeRoutes(v1, proposalHandler, leadHandler, pricingConfigHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
