package output

import (
	"path/filepath"
	"strings"
)

const DEFAULT_PREFIX = "scraped_"

// Target describes where and what to write for a single scrape.
type Target struct {
	Format Format
	// BaseName is the shared stem of every output file, without extension.
	BaseName string
	// Host is the host part of the scraped URL.
	Host string
}

// NewTarget resolves the output target for url. An empty name means the default
// base name.
func NewTarget(url string, format Format, name string) Target {
	return Target{
		Format:   format,
		BaseName: BaseName(url, name),
		Host:     Host(url),
	}
}

// Host returns the text after the last "//" in url, up to the next "/".
// It does not parse the URL; ports and credentials are kept as-is.
func Host(url string) string {
	if i := strings.LastIndex(url, "//"); i >= 0 {
		url = url[i+2:]
	}

	if i := strings.Index(url, "/"); i >= 0 {
		url = url[:i]
	}

	return url
}

// DefaultBaseName returns "scraped_" followed by the host of url.
func DefaultBaseName(url string) string {
	return DEFAULT_PREFIX + Host(url)
}

// BaseName returns name, or the default base name for url if name is empty,
// with its final extension removed.
func BaseName(url, name string) string {
	if name == "" {
		name = DefaultBaseName(url)
	}

	return StripExtension(name)
}

// StripExtension removes the last ".ext" from the final path element. A name
// that only starts with a dot, or ends with one, has no extension. Trailing
// separators are dropped first.
func StripExtension(name string) string {
	if trimmed := strings.TrimRight(name, string(filepath.Separator)+"/"); trimmed != "" {
		name = trimmed
	}

	dir, file := filepath.Split(name)

	i := strings.LastIndex(file, ".")
	if i > 0 && i < len(file)-1 {
		file = file[:i]
	}

	return dir + file
}
