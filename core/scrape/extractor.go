// ABOUTME: Content extractor distills a representative text snippet from a parsed page
// ABOUTME: Applies an ordered ladder of heuristics from highest to lowest signal

package scrape

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Heuristic thresholds separating substantive copy from navigation noise.
// These cutoffs are frozen; downstream behavior depends on them.
const (
	minParagraphChars       = 30
	minMetaDescriptionChars = 20
	minHeadingChars         = 10
	minBlockChars           = 40
	contentSnippetCap       = 300
)

// noContentFallback is returned when no strategy yields usable text
const noContentFallback = "No content found"

// contentSelectors matches elements whose class or id names suggest they hold
// the page's substantive copy
const contentSelectors = ".content, #content, .main, #main, .about, #about, .description, #description, .company-info, #company-info"

// ContentExtractor produces a text snippet from a parsed HTML document
type ContentExtractor struct{}

// NewContentExtractor creates a new content extractor
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// Extract applies the strategies in priority order and returns the first
// satisfied one's text. Earlier strategies are higher-signal and cheaper to
// validate. The result is always non-empty; the fallback sentinel covers the
// worst case.
func (e *ContentExtractor) Extract(doc *goquery.Document) string {
	// 1. First substantial paragraph
	if text := firstTextLongerThan(doc.Find("p"), minParagraphChars); text != "" {
		return text
	}

	// 2. Meta description
	if content, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		if text := strings.TrimSpace(content); utf8.RuneCountInString(text) > minMetaDescriptionChars {
			return text
		}
	}

	// 3. First substantial heading, top three levels in document order
	if text := firstTextLongerThan(doc.Find("h1, h2, h3"), minHeadingChars); text != "" {
		return text
	}

	// 4. Elements with content-ish class/id names, capped at the snippet limit
	if text := firstTextLongerThan(doc.Find(contentSelectors), minBlockChars); text != "" {
		return capRunes(text, contentSnippetCap)
	}

	// 5. Any generic container with enough text, uncapped
	if text := firstTextLongerThan(doc.Find("div"), minBlockChars); text != "" {
		return text
	}

	return noContentFallback
}

// firstTextLongerThan returns the trimmed text of the first element in the
// selection whose trimmed text exceeds min characters, or "" when none does
func firstTextLongerThan(sel *goquery.Selection, min int) string {
	var found string
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(text) > min {
			found = text
			return false
		}
		return true
	})
	return found
}

// capRunes truncates s to at most max characters
func capRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
