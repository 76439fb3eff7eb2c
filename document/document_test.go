package document

import (
	"strings"
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		html     string
		expected string
	}{
		{
			name:     "empty",
			expected: "",
		},
		{
			name:     "html title",
			html:     "<html><head><title> Example Domain </title></head><body><h1>Other</h1></body></html>",
			markdown: "# Other\n",
			expected: "Example Domain",
		},
		{
			name:     "empty html title falls back to markdown",
			html:     "<html><head><title></title></head></html>",
			markdown: "# Heading\n",
			expected: "Heading",
		},
		{
			name:     "markdown only",
			markdown: "# Title\n",
			expected: "Title",
		},
		{
			name:     "no title",
			markdown: "content",
			expected: "",
		},
		{
			name:     "multiple titles",
			markdown: "## Sub\n# Title 1\n# Title 2\n",
			expected: "Title 1",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc := &Document{
				Markdown: test.markdown,
				HTML:     test.html,
			}

			if title := doc.Title(); title != test.expected {
				t.Errorf("unexpected title: %q", title)
			}
		})
	}
}

func TestPrettyJSON(t *testing.T) {
	doc := &Document{
		Raw: []byte(`{"success":true,"data":{"markdown":"# Hi","html":"<h1>Hi</h1>","links":[]}}` + "\n"),
	}

	out, err := doc.PrettyJSON()
	if err != nil {
		t.Fatal(err)
	}

	expected := `{
  "success": true,
  "data": {
    "markdown": "# Hi",
    "html": "<h1>Hi</h1>",
    "links": []
  }
}`

	if string(out) != expected {
		t.Errorf("unexpected JSON:\n%s", out)
	}
}

func TestPrettyJSONInvalid(t *testing.T) {
	doc := &Document{Raw: []byte(`{"success":`)}

	if _, err := doc.PrettyJSON(); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestMarkdownFromHTML(t *testing.T) {
	doc := &Document{HTML: "<h1>Hi</h1><p>there</p>"}

	out, err := doc.MarkdownFromHTML("example.com")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "# Hi") {
		t.Errorf("expected heading in markdown, got %q", out)
	}

	if !strings.Contains(out, "there") {
		t.Errorf("expected paragraph in markdown, got %q", out)
	}

	empty := &Document{}
	out, err = empty.MarkdownFromHTML("")
	if err != nil || out != "" {
		t.Errorf("expected empty conversion, got %q (%v)", out, err)
	}
}
