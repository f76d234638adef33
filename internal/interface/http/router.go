package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/outfitter/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	api.Use(rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger))
	{
		api.GET("/weather", handler.CurrentWeather)

		api.GET("/outfits/suggestion", handler.SuggestOutfit)
		api.POST("/outfits/suggestion", handler.SuggestOutfitWithOverride)
		api.POST("/outfits/wear", handler.WearOutfit)

		api.GET("/items", handler.ListItems)
		api.POST("/items", limitUploadBody(cfg.Wardrobe.MaxUploadBytes), handler.UploadItem)
		api.GET("/items/:id", handler.GetItem)
		api.POST("/items/:id/save", handler.SaveItem)
		api.POST("/items/:id/unsave", handler.UnsaveItem)
		api.POST("/items/:id/wear", handler.WearItem)
		api.POST("/items/:id/unwear", handler.UnwearItem)
		api.GET("/images/*key", handler.ServeImage)

		api.GET("/events", handler.ListEvents)
		api.POST("/events", handler.CreateEvent)
		api.DELETE("/events/:id", handler.DeleteEvent)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

// limitUploadBody caps the multipart body at the image limit plus room for the form fields,
// so oversized uploads fail before they are buffered.
func limitUploadBody(maxImageBytes int64) gin.HandlerFunc {
	if maxImageBytes <= 0 {
		maxImageBytes = defaultMaxUploadBytes
	}
	limit := maxImageBytes + multipartOverhead
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			abortWithError(c, errUploadTooLarge(nil))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds())
	}
}
