package document

import (
	"bytes"
	"encoding/json"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// Document is a single scrape result as returned by the scraping service.
type Document struct {
	// Raw is the complete response body, exactly as received.
	Raw []byte
	// Markdown is data.markdown, empty if the service didn't send it.
	Markdown string
	// HTML is data.html, empty if the service didn't send it.
	HTML string
}

// PrettyJSON returns the full response indented with two spaces. Key order is
// preserved.
func (d *Document) PrettyJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(d.Raw), "", "  "); err != nil {
		return nil, errors.Wrap(err, "failed to indent response JSON")
	}

	return buf.Bytes(), nil
}

// Title returns the page title. The HTML <title> element wins, then the first
// level 1 heading in the markdown. Returns an empty string if neither exists.
func (d *Document) Title() string {
	if d.HTML != "" {
		if title := htmlTitle(d.HTML); title != "" {
			return title
		}
	}

	return markdownTitle(d.Markdown)
}

// MarkdownFromHTML converts the HTML content to markdown locally. Relative
// links are resolved against domain when it's not empty.
func (d *Document) MarkdownFromHTML(domain string) (string, error) {
	if d.HTML == "" {
		return "", nil
	}

	var opts []converter.ConvertOptionFunc
	if domain != "" {
		opts = append(opts, converter.WithDomain(domain))
	}

	out, err := md.ConvertReader(strings.NewReader(d.HTML), opts...)
	if err != nil {
		return "", errors.Wrap(err, "failed to convert HTML to Markdown")
	}

	return string(out), nil
}

func htmlTitle(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return ""
	}

	title, _ := extractTitle(doc)
	return strings.TrimSpace(title)
}

func extractTitle(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "title" {
		if n.FirstChild == nil {
			return "", true
		}
		return n.FirstChild.Data, true
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result, ok := extractTitle(c); ok {
			return result, ok
		}
	}

	return "", false
}

func markdownTitle(content string) string {
	if content == "" {
		return ""
	}

	source := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if heading, ok := n.(*ast.Heading); ok && entering && heading.Level == 1 {
			var builder strings.Builder
			for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
				if t, ok := child.(*ast.Text); ok {
					builder.Write(t.Segment.Value(source))
				}
			}
			title = builder.String()
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return title
}
