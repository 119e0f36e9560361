package processor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/ZaguanLabs/textkey"
)

// HTMLProcessor extracts the visible text of HTML documents so pages can be
// fingerprinted and semantically cached.
type HTMLProcessor struct {
	ignoredTags map[string]bool
}

// NewHTMLProcessor creates a new HTML processor with default ignored tags.
func NewHTMLProcessor() *HTMLProcessor {
	return &HTMLProcessor{
		ignoredTags: textkey.IgnoredTags,
	}
}

// NewHTMLProcessorWithIgnoredTags creates a new HTML processor with custom ignored tags.
func NewHTMLProcessorWithIgnoredTags(tags []string) *HTMLProcessor {
	ignored := make(map[string]bool)
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLProcessor{
		ignoredTags: ignored,
	}
}

// ExtractText returns the visible text of the document as a single string
// with fragments joined by spaces. The result is raw extraction output;
// callers normalize it through textkey before keying.
func (p *HTMLProcessor) ExtractText(content string) (string, error) {
	fragments, err := p.extract(content)
	if err != nil {
		return "", err
	}

	texts := make([]string, len(fragments))
	for i, f := range fragments {
		texts[i] = f.text
	}
	return strings.Join(texts, " "), nil
}

// ExtractBlocks returns the document's visible text fragments with their
// fingerprints, deduplicated by fingerprint in document order.
func (p *HTMLProcessor) ExtractBlocks(content string) ([]textkey.TextBlock, error) {
	fragments, err := p.extract(content)
	if err != nil {
		return nil, err
	}

	var blocks []textkey.TextBlock
	seen := make(map[string]bool)

	for _, f := range fragments {
		fingerprint := textkey.NormalizeAndHash(f.text)
		if seen[fingerprint] {
			continue
		}
		seen[fingerprint] = true

		blocks = append(blocks, textkey.TextBlock{
			Text:        f.text,
			Fingerprint: fingerprint,
			Tag:         f.tag,
			Metadata:    map[string]string{},
		})
	}

	return blocks, nil
}

// fragment is one text node's content with its enclosing tag.
type fragment struct {
	text string
	tag  string
}

func (p *HTMLProcessor) extract(content string) ([]fragment, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	var fragments []fragment

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			// Skip ignored tags
			if p.ignoredTags[strings.ToLower(n.Data)] {
				return
			}
		}

		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				tag := ""
				if n.Parent != nil && n.Parent.Type == html.ElementNode {
					tag = n.Parent.Data
				}
				fragments = append(fragments, fragment{text: trimmed, tag: tag})
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	return fragments, nil
}
