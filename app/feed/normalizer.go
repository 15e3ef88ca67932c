package feed

import (
	"cmp"
	"fmt"

	"feedgate/app/parser"
)

const (
	DefaultFeedTitle = "RSS Feed"
	DefaultItemTitle = "No Title"
)

type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Run maps the generic parsed model to a normalized FeedData document.
// Channel defaults: title "RSS Feed", description and link "". Items is
// always an array; an empty channel yields an empty slice, never nil.
func (n *Normalizer) Run(model parser.Node) (*FeedData, error) {
	channel, found := locateChannel(model)
	if !found {
		return nil, fmt.Errorf("no channel element found in feed")
	}

	data := &FeedData{
		Title:       cmp.Or(channel.Text("title"), DefaultFeedTitle),
		Description: channel.Text("description"),
		Link:        nodeLink(channel),
		Items:       []FeedItem{},
	}

	for _, raw := range collectItems(model, channel) {
		item, ok := raw.(parser.Node)
		if !ok {
			// A present-but-empty element collapses to a bare string;
			// such falsy entries are dropped rather than normalized.
			continue
		}
		data.Items = append(data.Items, n.normalizeItem(item))
	}

	return data, nil
}

// normalizeItem resolves each field through its fallback chain. Content
// prefers the encoded-content field over the plain one; title falls back to
// "No Title"; everything else falls back to "".
func (n *Normalizer) normalizeItem(item parser.Node) FeedItem {
	normalized := FeedItem{
		Title:       cmp.Or(item.Text("title"), DefaultItemTitle),
		Link:        nodeLink(item),
		Description: cmp.Or(item.Text("description"), item.Text("summary")),
		PubDate:     cmp.Or(item.Text("pubdate"), item.Text("published"), item.Text("dc:date"), item.Text("updated")),
		Content:     cmp.Or(item.Text("content:encoded"), item.Text("content")),
	}
	normalized.Media = extractMedia(item)
	return normalized
}

// locateChannel finds feed-level metadata across the RSS 2.0, RSS 1.0/RDF,
// and Atom document shapes. An empty channel element is still "found" (and
// yields a default document); the returned Node may be nil in that case,
// which every accessor tolerates.
func locateChannel(model parser.Node) (parser.Node, bool) {
	for _, container := range []parser.Node{model.Child("rss"), model.Child("rdf:rdf"), model} {
		if container == nil {
			continue
		}
		if _, present := container["channel"]; present {
			return container.Child("channel"), true
		}
	}
	if _, present := model["feed"]; present {
		return model.Child("feed"), true
	}
	return nil, false
}

// collectItems gathers raw item nodes. RSS 2.0 and Atom keep them inside the
// channel element; RSS 1.0/RDF keeps them as siblings of the channel.
func collectItems(model, channel parser.Node) []any {
	if items := channel.List("item"); len(items) > 0 {
		return items
	}
	if entries := channel.List("entry"); len(entries) > 0 {
		return entries
	}
	if rdf := model.Child("rdf:rdf"); rdf != nil {
		return rdf.List("item")
	}
	return nil
}

// nodeLink handles both RSS text links and Atom <link href="..."/> elements.
func nodeLink(node parser.Node) string {
	if s := node.Text("link"); s != "" {
		return s
	}
	for _, raw := range node.List("link") {
		if link, ok := raw.(parser.Node); ok {
			if href := link.Attr("href"); href != "" {
				return href
			}
		}
	}
	return ""
}
