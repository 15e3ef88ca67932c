package feed

// Normalized feed document types. Every field is always present; absence in
// the source is represented by the documented fallback value, never by a
// missing key. All values are created fresh per request and not mutated after
// construction.

type MediaItem struct {
	URL    string `json:"url"`
	Type   string `json:"type"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Length int64  `json:"length,omitempty"`
}

type FeedItem struct {
	Title       string      `json:"title"`
	Link        string      `json:"link"`
	Description string      `json:"description"`
	PubDate     string      `json:"pubDate"`
	Content     string      `json:"content"`
	Media       []MediaItem `json:"media"`
}

type FeedData struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Link        string     `json:"link"`
	Items       []FeedItem `json:"items"`
}
