package display

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"feedgate/app/feed"
)

var imageExtRe = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)$`)

// MediaAggregator recovers image URLs from an already-normalized item with a
// broader strategy than server-side extraction, which is lossy by design
// (it stops at the first tier that yields anything). Output preserves
// first-seen order and contains no duplicate URLs.
type MediaAggregator struct {
	profile      *Profile
	shortLinkRes []*regexp.Regexp
}

func NewMediaAggregator(profile *Profile) *MediaAggregator {
	a := &MediaAggregator{profile: profile}
	for _, shortLink := range profile.ShortLinks {
		a.shortLinkRes = append(a.shortLinkRes,
			regexp.MustCompile(`(?i)`+regexp.QuoteMeta(shortLink.Host)+`/([A-Za-z0-9]+)`))
	}
	return a
}

func (a *MediaAggregator) Run(item feed.FeedItem) []string {
	urls := []string{}
	seen := make(map[string]bool)

	add := func(u string) {
		if u == "" || seen[u] {
			return
		}
		seen[u] = true
		urls = append(urls, u)
	}

	// 1. Structured media already on the item, filtered to images
	for _, m := range item.Media {
		if strings.HasPrefix(m.Type, "image/") || isImageURL(m.URL) {
			add(m.URL)
		}
	}

	// 2.-3. Every <img> and image-file anchor in content, then description
	for _, u := range scanHTMLImages(item.Content) {
		add(u)
	}
	for _, u := range scanHTMLImages(item.Description) {
		add(u)
	}

	// 4. Short-link reconstruction over title and description
	for i, shortLink := range a.profile.ShortLinks {
		for _, text := range []string{item.Title, item.Description} {
			for _, match := range a.shortLinkRes[i].FindAllStringSubmatch(text, -1) {
				add(fmt.Sprintf(shortLink.MediaURLTemplate, match[1]))
			}
		}
	}

	return urls
}

func isImageURL(u string) bool {
	return imageExtRe.MatchString(u)
}

// scanHTMLImages collects img sources and direct image-file anchor targets
// from an HTML fragment. Inline glyphs (explicit 16px dimensions or an emoji
// class hint) are skipped so they do not pollute the gallery. Unparseable
// markup yields nothing rather than an error.
func scanHTMLImages(fragment string) []string {
	if fragment == "" {
		return nil
	}

	root := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), root)
	if err != nil {
		return nil
	}

	var urls []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "img":
				if src := attrVal(n, "src"); src != "" && !isInlineIcon(n) {
					urls = append(urls, src)
				}
			case "a":
				if href := attrVal(n, "href"); isImageURL(href) {
					urls = append(urls, href)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, n := range nodes {
		walk(n)
	}

	return urls
}

func isInlineIcon(n *html.Node) bool {
	if attrVal(n, "width") == "16" || attrVal(n, "height") == "16" {
		return true
	}
	return strings.Contains(strings.ToLower(attrVal(n, "class")), "emoji")
}

func attrVal(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
