package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mempirate/scrapetool/document"
	"github.com/mempirate/scrapetool/log"
	"github.com/mempirate/scrapetool/store"
	"github.com/mempirate/scrapetool/util"
)

// Writer saves scrape results to a store and reports progress to out.
type Writer struct {
	log zerolog.Logger
	out io.Writer

	store store.LocalStore

	// markdownFallback converts HTML locally when the service sent no markdown.
	markdownFallback bool
}

func NewWriter(out io.Writer, store store.LocalStore) *Writer {
	return &Writer{
		log:   log.NewLogger("output"),
		out:   out,
		store: store,
	}
}

// WithMarkdownFallback enables local HTML to markdown conversion for
// responses that carry HTML but no markdown.
func (w *Writer) WithMarkdownFallback(enabled bool) *Writer {
	w.markdownFallback = enabled
	return w
}

// Save writes the representations selected by target.Format, in the order
// markdown, HTML, JSON. The first failed write aborts; files written before
// it are left in place. It returns the names of the files written.
func (w *Writer) Save(doc *document.Document, target Target) ([]string, error) {
	fmt.Fprintln(w.out, "\nSaving files...")

	var written []string

	if target.Format.Includes(FormatMarkdown) {
		markdown, err := w.markdown(doc, target.Host)
		if err != nil {
			return written, err
		}

		name := target.BaseName + ".md"
		if err := w.write(name, strings.NewReader(markdown)); err != nil {
			return written, err
		}
		written = append(written, name)
		fmt.Fprintf(w.out, "✓ Markdown saved to: %s\n", name)
	}

	if target.Format.Includes(FormatHTML) {
		name := target.BaseName + ".html"
		if err := w.write(name, strings.NewReader(doc.HTML)); err != nil {
			return written, err
		}
		written = append(written, name)
		fmt.Fprintf(w.out, "✓ HTML saved to: %s\n", name)
	}

	if target.Format.Includes(FormatJSON) {
		pretty, err := doc.PrettyJSON()
		if err != nil {
			return written, err
		}

		name := target.BaseName + ".json"
		if err := w.write(name, bytes.NewReader(pretty)); err != nil {
			return written, err
		}
		written = append(written, name)
		fmt.Fprintf(w.out, "✓ Full JSON response saved to: %s\n", name)
	}

	fmt.Fprintln(w.out, "\nDone! Files have been saved successfully.")

	return written, nil
}

func (w *Writer) markdown(doc *document.Document, host string) (string, error) {
	if doc.Markdown != "" || !w.markdownFallback || doc.HTML == "" {
		return doc.Markdown, nil
	}

	w.log.Info().Str("host", host).Msg("No markdown in response, converting HTML locally")

	markdown, err := doc.MarkdownFromHTML(host)
	if err != nil {
		return "", errors.Wrap(err, "markdown fallback")
	}

	return markdown, nil
}

func (w *Writer) write(name string, content io.Reader) error {
	exists, err := w.store.Contains(name)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", name)
	}

	if exists {
		w.log.Warn().Str("file", w.store.Path(name)).Msg("Overwriting existing file")
	}

	n, err := w.store.Store(name, content)
	if err != nil {
		return err
	}

	w.log.Debug().Str("file", w.store.Path(name)).Str("size", util.FormatBytes(n)).Msg("File written")

	return nil
}
