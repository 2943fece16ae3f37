package routes

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	_ "fieldflow/docs" // This will be auto-generated
	"fieldflow/internal/adapter/http/handlers"
	repository2 "fieldflow/internal/adapter/persistence/repository"
	"fieldflow/internal/infrastructure/assistant"
	"fieldflow/internal/infrastructure/database"
	"fieldflow/internal/infrastructure/schedule"
	"fieldflow/internal/usecase"
	"fieldflow/internal/usecase/interfaces"

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
	repo := buildWorkOrderRepository()

	var gateway interfaces.IAssistantGateway
	ag, err := assistant.NewAnthropicGateway(os.Getenv("ANTHROPIC_API_KEY"), loadPartsCatalog())
	if err != nil {
		log.Printf("Assistant gateway not configured: %v", err)
	} else {
		gateway = ag
	}

	workOrderUseCase := usecase.NewWorkOrderUseCase(repo)
	assistantUseCase := usecase.NewAssistantUseCase(repo, gateway)
	invoiceUseCase := usecase.NewInvoiceUseCase(repo, gateway)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	assistantHandler := handlers.NewAssistantHandler(assistantUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	if gateway != nil {
		monitor := schedule.NewDeadlineMonitor(workOrderUseCase, assistantUseCase, os.Getenv("DEADLINE_CRON"), deadlineHorizon())
		if err := monitor.Start(); err != nil {
			log.Printf("Deadline monitor not started: %v", err)
		}
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, workOrderHandler, assistantHandler, invoiceHandler)
}

// buildWorkOrderRepository hydrates the in-memory store from the configured
// snapshot backend. A corrupt snapshot aborts startup so real data is never
// silently discarded; set STORE_RESET_ON_CORRUPT=true to start over instead.
func buildWorkOrderRepository() interfaces.IWorkOrderRepository {
	ctx := context.Background()
	backend := buildSnapshotBackend()

	repo, err := repository2.NewWorkOrderMemoryRepository(ctx, backend)
	if err != nil {
		if errors.Is(err, repository2.ErrCorruptSnapshot) && getenvBool("STORE_RESET_ON_CORRUPT") {
			log.Printf("Corrupt snapshot, resetting as requested: %v", err)
			if serr := backend.Save(ctx, []byte("[]")); serr != nil {
				log.Fatalf("failed to reset snapshot: %v", serr)
			}
			repo, err = repository2.NewWorkOrderMemoryRepository(ctx, backend)
		}
		if err != nil {
			log.Fatalf("failed to load work order store: %v", err)
		}
	}
	return repo
}

func buildSnapshotBackend() interfaces.ISnapshotBackend {
	slot := os.Getenv("WORKORDERS_SLOT")
	switch getenvDefault("STORE_BACKEND", "file") {
	case "memory":
		return repository2.NullSnapshotBackend{}
	case "sqlite":
		backend, err := repository2.NewSQLiteSnapshotBackend(getenvDefault("STORE_SQLITE_PATH", "fieldflow.db"), slot)
		if err != nil {
			log.Fatalf("failed to open sqlite snapshot backend: %v", err)
		}
		return backend
	case "dynamodb":
		return repository2.NewDynamoSnapshotBackend(database.ConnectDynamoDB(), slot)
	default:
		return repository2.NewFileSnapshotBackend(getenvDefault("STORE_FILE", "fieldflow-work-orders.json"))
	}
}

func loadPartsCatalog() *assistant.PartsCatalog {
	path := os.Getenv("PARTS_CATALOG_PATH")
	if path == "" {
		return nil
	}
	catalog, err := assistant.LoadPartsCatalog(path)
	if err != nil {
		log.Printf("Parts catalog not loaded: %v", err)
		return nil
	}
	log.Printf("Loaded parts catalog from %s entries=%d", path, len(catalog.Entries))
	return catalog
}

func deadlineHorizon() time.Duration {
	if v := os.Getenv("DEADLINE_HORIZON_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
		log.Printf("Ignoring invalid DEADLINE_HORIZON_HOURS=%q", v)
	}
	return 0
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "yes", "on":
		return true
	}
	return false
}
