package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/printhaus/storefront-platform/internal/api/handlers"
	"github.com/printhaus/storefront-platform/internal/api/middleware"
	"github.com/printhaus/storefront-platform/internal/cache"
	"github.com/printhaus/storefront-platform/internal/config"
	"github.com/printhaus/storefront-platform/internal/health"
	"github.com/printhaus/storefront-platform/internal/metrics"
	repository "github.com/printhaus/storefront-platform/internal/repositories"
	service "github.com/printhaus/storefront-platform/internal/services"
	"github.com/printhaus/storefront-platform/pkg/filestore"
	"github.com/printhaus/storefront-platform/pkg/mailer"
)

func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	storeCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	defer func() {
		if err := storeCache.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// Artwork storage
	artworkStore, err := filestore.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		slog.Error("❌ Error preparing the upload directory", "error", err.Error())
		os.Exit(1)
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	orderMailer := mailer.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.FromEmail, cfg.Mail.FromName)

	productService := service.NewProductService(repos.Product, storeCache, cfg.Cache.ProductTTL, logger)
	productHandler := handlers.NewProductHandler(productService)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	cartHandler := handlers.NewCartHandler(cartService)
	orderService := service.NewOrderService(repos.Order, repos.Cart, orderMailer, logger)
	orderHandler := handlers.NewOrderHandler(orderService)
	bannerService := service.NewBannerService(repos.Banner, storeCache, cfg.Cache.BannerTTL, logger)
	bannerHandler := handlers.NewBannerHandler(bannerService)
	uploadService := service.NewUploadService(artworkStore)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error creating the health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	// Storefront catalog and banners
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/banners", bannerHandler.ListActiveBanners())
	routerMux.HandleFunc("GET /api/v1/flash-banners", bannerHandler.ListActiveFlashBanners())

	// Cart and checkout; anonymous shoppers are identified by session id
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.ResolveOwner(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.ResolveOwner(cartHandler.AddLine()))
	routerMux.HandleFunc("PATCH /api/v1/cart/items/{id}", authMiddleware.ResolveOwner(cartHandler.UpdateLineQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", authMiddleware.ResolveOwner(cartHandler.RemoveLine()))
	routerMux.HandleFunc("DELETE /api/v1/cart", authMiddleware.ResolveOwner(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/v1/orders", authMiddleware.ResolveOwner(orderHandler.Checkout()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.ResolveOwner(orderHandler.ListMyOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.ResolveOwner(orderHandler.GetMyOrder()))
	routerMux.HandleFunc("POST /api/v1/uploads", authMiddleware.ResolveOwner(uploadHandler.UploadArtwork()))

	// Admin dashboard
	routerMux.HandleFunc("GET /api/v1/admin/products", authMiddleware.RequireAdmin(productHandler.ListAllProducts()))
	routerMux.HandleFunc("POST /api/v1/admin/products", authMiddleware.RequireAdmin(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/v1/admin/products/{id}", authMiddleware.RequireAdmin(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/admin/products/{id}", authMiddleware.RequireAdmin(productHandler.DeleteProduct()))
	routerMux.HandleFunc("GET /api/v1/admin/orders", authMiddleware.RequireAdmin(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/admin/orders/{id}", authMiddleware.RequireAdmin(orderHandler.GetOrder()))
	routerMux.HandleFunc("PATCH /api/v1/admin/orders/{id}/status", authMiddleware.RequireAdmin(orderHandler.UpdateOrderStatus()))
	routerMux.HandleFunc("GET /api/v1/admin/banners", authMiddleware.RequireAdmin(bannerHandler.ListBanners()))
	routerMux.HandleFunc("POST /api/v1/admin/banners", authMiddleware.RequireAdmin(bannerHandler.CreateBanner()))
	routerMux.HandleFunc("PUT /api/v1/admin/banners/{id}", authMiddleware.RequireAdmin(bannerHandler.UpdateBanner()))
	routerMux.HandleFunc("DELETE /api/v1/admin/banners/{id}", authMiddleware.RequireAdmin(bannerHandler.DeleteBanner()))
	routerMux.HandleFunc("GET /api/v1/admin/flash-banners", authMiddleware.RequireAdmin(bannerHandler.ListFlashBanners()))
	routerMux.HandleFunc("POST /api/v1/admin/flash-banners", authMiddleware.RequireAdmin(bannerHandler.CreateFlashBanner()))
	routerMux.HandleFunc("PUT /api/v1/admin/flash-banners/{id}", authMiddleware.RequireAdmin(bannerHandler.UpdateFlashBanner()))
	routerMux.HandleFunc("DELETE /api/v1/admin/flash-banners/{id}", authMiddleware.RequireAdmin(bannerHandler.DeleteFlashBanner()))

	// Operational endpoints and stored artwork
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "storefront-platform")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}
}
