package feed

import (
	"regexp"
	"strconv"

	"feedgate/app/parser"
)

// DefaultMediaType is assumed when an attachment omits its MIME type. The
// feeds this service fronts attach almost exclusively photos.
const DefaultMediaType = "image/jpeg"

var imgSrcRe = regexp.MustCompile(`(?is)<img[^>]+src=["']([^"']+)["']`)

// extractMedia derives an item's media list with a tiered strategy:
// structured media tags first, then enclosures, then a last-resort scan of
// text content for an embedded image. Finding nothing is a valid outcome;
// this never fails. URLs are deduplicated, first occurrence wins.
func extractMedia(item parser.Node) []MediaItem {
	media := []MediaItem{}
	seen := make(map[string]bool)

	add := func(m MediaItem) {
		if m.URL == "" || seen[m.URL] {
			return
		}
		seen[m.URL] = true
		if m.Type == "" {
			m.Type = DefaultMediaType
		}
		media = append(media, m)
	}

	// Tier 1: structured media tags with dimension metadata
	for _, raw := range item.List("media:content") {
		content, ok := raw.(parser.Node)
		if !ok {
			continue
		}
		m := MediaItem{URL: content.Attr("url"), Type: content.Attr("type")}
		m.Width, _ = strconv.Atoi(content.Attr("width"))
		m.Height, _ = strconv.Atoi(content.Attr("height"))
		add(m)
	}

	// Tier 2: RSS enclosures with a declared byte length
	for _, raw := range item.List("enclosure") {
		enclosure, ok := raw.(parser.Node)
		if !ok {
			continue
		}
		m := MediaItem{URL: enclosure.Attr("url"), Type: enclosure.Attr("type")}
		if length, err := strconv.ParseInt(enclosure.Attr("length"), 10, 64); err == nil {
			m.Length = length
		}
		add(m)
	}

	if len(media) > 0 {
		return media
	}

	// Tier 3: first embedded image in text content, in priority order
	for _, text := range []string{item.Text("content:encoded"), item.Text("content"), item.Text("description")} {
		if text == "" {
			continue
		}
		if match := imgSrcRe.FindStringSubmatch(text); match != nil {
			add(MediaItem{URL: match[1]})
			break
		}
	}

	return media
}
