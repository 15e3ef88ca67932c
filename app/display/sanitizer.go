package display

import (
	"regexp"
	"strings"
)

var (
	imgTagRe       = regexp.MustCompile(`(?is)<img[^>]*>`)
	brTagRe        = regexp.MustCompile(`(?i)<br\s*/?>`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	imageAnchorRe  = regexp.MustCompile(`(?is)<a[^>]+href=["'][^"']+\.(?:jpg|jpeg|png|gif|webp)["'][^>]*>.*?</a>`)
	bareImageURLRe = regexp.MustCompile(`(?i)https?://[^\s"'<>]+\.(?:jpg|jpeg|png|gif|webp)`)
)

// SanitizeDescription strips image markup, line breaks, image-link anchors
// and bare image URLs from descriptive text, collapsing whitespace for
// plain-ish inline display. The transformation is lossy and one-way.
func SanitizeDescription(s string) string {
	s = imgTagRe.ReplaceAllString(s, "")
	s = brTagRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = imageAnchorRe.ReplaceAllString(s, "")
	s = bareImageURLRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
