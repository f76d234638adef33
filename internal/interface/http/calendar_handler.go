package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/outfitter/internal/domain/calendar"
)

// ListEvents returns events, optionally bounded by from/to query dates.
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.calendarSvc.List(c.Request.Context(), calendar.Filter{
		From: c.Query("from"),
		To:   c.Query("to"),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateEvent adds a calendar entry.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req calendar.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, badRequest(errMessage(err), err))
		return
	}
	ev, err := h.calendarSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// DeleteEvent removes a calendar entry.
func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.calendarSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
