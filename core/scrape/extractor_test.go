package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}
	return doc
}

func TestExtract_FirstSubstantialParagraph(t *testing.T) {
	doc := parseHTML(t, `
		<html><body>
			<p>Short.</p>
			<p>We build industrial machinery for customers across Europe since 1952.</p>
			<p>Another long paragraph that should never be reached by the extractor.</p>
		</body></html>`)

	got := NewContentExtractor().Extract(doc)
	want := "We build industrial machinery for customers across Europe since 1952."
	if got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestExtract_ParagraphBeatsMetaDescription(t *testing.T) {
	doc := parseHTML(t, `
		<html>
		<head><meta name="description" content="A meta description that is long enough to qualify."></head>
		<body><p>A body paragraph that is comfortably longer than thirty characters.</p></body>
		</html>`)

	got := NewContentExtractor().Extract(doc)
	if !strings.HasPrefix(got, "A body paragraph") {
		t.Errorf("Extract() = %q, want the paragraph to win over the meta description", got)
	}
}

func TestExtract_ParagraphAtThresholdIsSkipped(t *testing.T) {
	// Exactly 30 characters; the rule demands strictly more
	paragraph := strings.Repeat("a", 30)
	doc := parseHTML(t, `
		<html>
		<head><meta name="description" content="Fallback description used instead."></head>
		<body><p>`+paragraph+`</p></body>
		</html>`)

	got := NewContentExtractor().Extract(doc)
	if got != "Fallback description used instead." {
		t.Errorf("Extract() = %q, want the meta description", got)
	}
}

func TestExtract_MetaDescription(t *testing.T) {
	doc := parseHTML(t, `
		<html>
		<head><meta name="description" content="  Family-run bakery in the old town.  "></head>
		<body><p>Hi.</p></body>
		</html>`)

	got := NewContentExtractor().Extract(doc)
	if got != "Family-run bakery in the old town." {
		t.Errorf("Extract() = %q, want the trimmed meta description", got)
	}
}

func TestExtract_ShortMetaDescriptionIsSkipped(t *testing.T) {
	// 20 characters exactly; needs strictly more
	doc := parseHTML(t, `
		<html>
		<head><meta name="description" content="12345678901234567890"></head>
		<body><h2>Welcome to our workshop</h2></body>
		</html>`)

	got := NewContentExtractor().Extract(doc)
	if got != "Welcome to our workshop" {
		t.Errorf("Extract() = %q, want the heading", got)
	}
}

func TestExtract_HeadingsInDocumentOrder(t *testing.T) {
	doc := parseHTML(t, `
		<html><body>
			<h3>Our services explained</h3>
			<h1>A much longer main heading further down the page</h1>
		</body></html>`)

	got := NewContentExtractor().Extract(doc)
	if got != "Our services explained" {
		t.Errorf("Extract() = %q, want the first qualifying heading in document order", got)
	}
}

func TestExtract_ShortHeadingIsSkipped(t *testing.T) {
	doc := parseHTML(t, `
		<html><body>
			<h1>Welcome</h1>
			<h2>About our family business</h2>
		</body></html>`)

	got := NewContentExtractor().Extract(doc)
	if got != "About our family business" {
		t.Errorf("Extract() = %q, want the second heading", got)
	}
}

func TestExtract_ContentClassElementCapped(t *testing.T) {
	long := strings.Repeat("x", 400)
	doc := parseHTML(t, `
		<html><body>
			<div class="about">`+long+`</div>
		</body></html>`)

	got := NewContentExtractor().Extract(doc)
	if len([]rune(got)) != 300 {
		t.Errorf("len(Extract()) = %d runes, want 300", len([]rune(got)))
	}
	if !strings.HasPrefix(long, got) {
		t.Error("Extract() is not a prefix of the element text")
	}
}

func TestExtract_ContentIDElement(t *testing.T) {
	doc := parseHTML(t, `
		<html><body>
			<div id="company-info">A company description living in an id-tagged container block.</div>
		</body></html>`)

	got := NewContentExtractor().Extract(doc)
	if got != "A company description living in an id-tagged container block." {
		t.Errorf("Extract() = %q, want the id-tagged container text", got)
	}
}

func TestExtract_GenericDivUncapped(t *testing.T) {
	long := strings.Repeat("y", 400)
	doc := parseHTML(t, `
		<html><body>
			<div>`+long+`</div>
		</body></html>`)

	got := NewContentExtractor().Extract(doc)
	if got != long {
		t.Errorf("len(Extract()) = %d, want the full %d characters uncapped", len(got), len(long))
	}
}

func TestExtract_FallbackSentinel(t *testing.T) {
	doc := parseHTML(t, `<html><body><span>hi</span></body></html>`)

	got := NewContentExtractor().Extract(doc)
	if got != "No content found" {
		t.Errorf("Extract() = %q, want %q", got, "No content found")
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	doc := parseHTML(t, ``)

	got := NewContentExtractor().Extract(doc)
	if got != "No content found" {
		t.Errorf("Extract() = %q, want %q", got, "No content found")
	}
}
