package display

import (
	"time"

	"feedgate/app/feed"
)

// RenderedItem is a normalized item plus the render-only values derived at
// display time. The underlying FeedItem is not mutated.
type RenderedItem struct {
	feed.FeedItem
	SanitizedDescription string   `json:"sanitizedDescription"`
	IsRepost             bool     `json:"isRepost"`
	RelativeDate         string   `json:"relativeDate"`
	Images               []string `json:"images"`
}

type Renderer struct {
	profile    *Profile
	aggregator *MediaAggregator
	now        func() time.Time
}

func NewRenderer(profile *Profile) *Renderer {
	return &Renderer{
		profile:    profile,
		aggregator: NewMediaAggregator(profile),
		now:        time.Now,
	}
}

func (r *Renderer) Run(item feed.FeedItem) RenderedItem {
	return RenderedItem{
		FeedItem:             item,
		SanitizedDescription: SanitizeDescription(item.Description),
		IsRepost:             IsRepost(item.Title, item.Description, r.profile.RepostIndicators),
		RelativeDate:         FormatRelative(item.PubDate, r.now()),
		Images:               r.aggregator.Run(item),
	}
}
