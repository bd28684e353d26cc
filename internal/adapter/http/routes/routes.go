package routes

import (
	"log"
	"strconv"

	_ "recoverydesk/docs" // This will be auto-generated
	"recoverydesk/internal/adapter/http/handlers"
	"recoverydesk/internal/adapter/persistence/repository"
	"recoverydesk/internal/infrastructure/authgate"
	"recoverydesk/internal/infrastructure/database"
	"recoverydesk/internal/usecase"
	"recoverydesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

const requestIDHeader = "X-Request-ID"

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

	store := repository.NewLedgerDynamoStore(ddb)

	var gate interfaces.IAuthorizationGate
	mpGate, err := authgate.NewMasterPasswordGateFromEnv()
	if err != nil {
		log.Printf("Master password gate not configured: %v", err)
	} else {
		gate = mpGate
	}

	inwardUseCase := usecase.NewInwardUseCase(store)
	outwardUseCase := usecase.NewOutwardUseCase(store)
	hardDiskUseCase := usecase.NewHardDiskUseCase(store)
	masterUseCase := usecase.NewMasterUseCase(store)
	reportUseCase := usecase.NewReportUseCase(store)
	dataUseCase := usecase.NewDataUseCase(store, gate)

	inwardHandler := handlers.NewInwardHandler(inwardUseCase)
	outwardHandler := handlers.NewOutwardHandler(outwardUseCase)
	hardDiskHandler := handlers.NewHardDiskHandler(hardDiskUseCase)
	masterHandler := handlers.NewMasterHandler(masterUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	dataHandler := handlers.NewDataHandler(dataUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLedgerRoutes(v1, inwardHandler, outwardHandler, hardDiskHandler, masterHandler)
	addReportRoutes(v1, reportHandler)
	addDataRoutes(v1, dataHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(requestID())
}

// requestID tags each request so log lines from one call can be correlated.
// An inbound X-Request-ID is kept, otherwise a fresh one is minted.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
