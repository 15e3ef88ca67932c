package api

import (
	"context"

	"feedgate/app/display"
	"feedgate/app/feed"
)

type ProcessorInterface interface {
	Run(ctx context.Context, url string) (*feed.FeedData, error)
}

var _ ProcessorInterface = (*feed.Processor)(nil)

type Handler struct {
	processor ProcessorInterface
	renderer  *display.Renderer
	cache     *feed.Cache
	version   string
}

// DisplayResponse is the render-ready document shape served by the display
// endpoint: channel metadata plus items with derived display values.
type DisplayResponse struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Link        string                 `json:"link"`
	Items       []display.RenderedItem `json:"items"`
}
