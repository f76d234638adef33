package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/outfitter/internal/domain/calendar"
	"github.com/yanqian/outfitter/internal/domain/outfit"
	"github.com/yanqian/outfitter/internal/domain/wardrobe"
	"github.com/yanqian/outfitter/internal/domain/weather"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	outfitSvc   outfit.Service
	wardrobeSvc wardrobe.Service
	calendarSvc calendar.Service
	weatherSvc  weather.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(outfitSvc outfit.Service, wardrobeSvc wardrobe.Service, calendarSvc calendar.Service, weatherSvc weather.Service, logger *slog.Logger) *Handler {
	return &Handler{
		outfitSvc:   outfitSvc,
		wardrobeSvc: wardrobeSvc,
		calendarSvc: calendarSvc,
		weatherSvc:  weatherSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CurrentWeather returns the (possibly cached) reading for the configured location.
func (h *Handler) CurrentWeather(c *gin.Context) {
	reading, err := h.weatherSvc.Current(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reading)
}

// SuggestOutfit answers GET requests; temperature and condition may be passed as query parameters.
func (h *Handler) SuggestOutfit(c *gin.Context) {
	var req outfit.Request
	if raw := strings.TrimSpace(c.Query("temperature")); raw != "" {
		temp, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			abortWithError(c, badRequest("temperature must be a number", err))
			return
		}
		req.Temperature = &temp
	}
	if cond, ok := c.GetQuery("condition"); ok {
		req.Condition = &cond
	}
	h.recommend(c, req)
}

// SuggestOutfitWithOverride answers POST requests carrying an optional JSON override.
func (h *Handler) SuggestOutfitWithOverride(c *gin.Context) {
	var req outfit.Request
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, badRequest(errMessage(err), err))
		return
	}
	h.recommend(c, req)
}

func (h *Handler) recommend(c *gin.Context, req outfit.Request) {
	resp, err := h.outfitSvc.Recommend(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type wearOutfitPayload struct {
	IDs []int `json:"ids"`
}

// WearOutfit tags every item of an accepted suggestion as recently worn.
func (h *Handler) WearOutfit(c *gin.Context) {
	var req wearOutfitPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, badRequest(errMessage(err), err))
		return
	}
	items, err := h.wardrobeSvc.WearOutfit(c.Request.Context(), req.IDs)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
