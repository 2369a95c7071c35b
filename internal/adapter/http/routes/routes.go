package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "storefront/docs"
	"storefront/internal/adapter/http/handlers"
	"storefront/internal/adapter/http/middleware"
	"storefront/internal/adapter/http/templates"
	repository2 "storefront/internal/adapter/persistence/repository"
	"storefront/internal/config"
	"storefront/internal/domain/catalog"
	"storefront/internal/infrastructure/database"
	"storefront/internal/infrastructure/latency"
	"storefront/internal/usecase"
	"storefront/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run loads the catalog, serves HTTP on cfg.Addr() and shuts down
// gracefully on SIGINT/SIGTERM.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	router, err := NewRouter(cat, latency.NewSimulator(cfg.SimulatedLatency, cfg.Latencies))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("catalog_source", cfg.CatalogSource).Bool("simulated_latency", cfg.SimulatedLatency).Msg("storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// NewRouter wires use cases, handlers and middlewares around an already
// loaded catalog.
func NewRouter(cat *catalog.Catalog, sim *latency.Simulator) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	router := gin.New()
	setMiddlewares(router)
	router.SetHTMLTemplate(tmpl)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	catalogUseCase := usecase.NewCatalogUseCase(cat, sim)
	cartUseCase := usecase.NewCartUseCase(cat, sim)
	orderUseCase := usecase.NewOrderUseCase(cat, sim)
	ratingUseCase := usecase.NewRatingUseCase(sim)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	ratingHandler := handlers.NewRatingHandler(ratingUseCase)
	pageHandler := handlers.NewPageHandler(catalogUseCase, cartUseCase, orderUseCase, ratingUseCase)
	healthHandler := handlers.NewHealthHandler(cat.Len())

	router.GET("/health", healthHandler.Health)
	addPageRoutes(router, pageHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, catalogHandler, cartHandler, orderHandler, ratingHandler)

	return router, nil
}

func loadCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, error) {
	var src interfaces.ICatalogSource

	switch cfg.CatalogSource {
	case config.CatalogSourceStatic:
		src = repository2.NewProductStaticRepository()
	case config.CatalogSourceDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		repo := repository2.NewProductDynamoRepository(ddb, cfg.ProductsTable)
		if cfg.SeedCatalog {
			if err := repo.Seed(ctx, catalog.DefaultProducts()); err != nil {
				return nil, fmt.Errorf("seed catalog: %w", err)
			}
		}
		src = repo
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}

	return usecase.BuildCatalog(ctx, src)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
}
