package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"feedgate/app/display"
	"feedgate/app/feed"
)

// Fixed client-facing error bodies. Upstream status codes and parse failures
// are logged server-side only and never exposed verbatim.
const (
	ErrMissingURL  = "Missing URL parameter"
	ErrFetchFailed = "Failed to fetch or parse the RSS feed"
)

func NewHandler(processor ProcessorInterface, renderer *display.Renderer, cache *feed.Cache, version string) *Handler {
	return &Handler{
		processor: processor,
		renderer:  renderer,
		cache:     cache,
		version:   version,
	}
}

func (h *Handler) GetFeed(c *gin.Context) {
	data, ok := h.processFeed(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *Handler) GetFeedDisplay(c *gin.Context) {
	data, ok := h.processFeed(c)
	if !ok {
		return
	}

	response := DisplayResponse{
		Title:       data.Title,
		Description: data.Description,
		Link:        data.Link,
		Items:       make([]display.RenderedItem, 0, len(data.Items)),
	}
	for _, item := range data.Items {
		response.Items = append(response.Items, h.renderer.Run(item))
	}

	c.JSON(http.StatusOK, response)
}

// processFeed runs the pipeline for the requested URL and writes the fixed
// error bodies on failure. A missing URL is rejected before any network call.
func (h *Handler) processFeed(c *gin.Context) (*feed.FeedData, bool) {
	feedURL := c.Query("url")
	if feedURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMissingURL})
		return nil, false
	}

	data, err := h.processor.Run(c.Request.Context(), feedURL)
	if err != nil {
		var statusErr *feed.StatusError
		if errors.As(err, &statusErr) {
			slog.Error("Upstream returned error status", "url", feedURL, "status", statusErr.Code)
		} else {
			slog.Error("Feed processing failed", "url", feedURL, "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrFetchFailed})
		return nil, false
	}

	return data, true
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   h.version,
	}

	if h.cache != nil {
		health["cached_feeds"] = h.cache.Len()
	}

	c.JSON(http.StatusOK, health)
}
