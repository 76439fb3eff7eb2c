package output

import (
	"strings"

	"github.com/pkg/errors"
)

// Format selects which representations of a scrape are written.
type Format string

const (
	FormatAll      Format = "all"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// Formats lists every format in menu order.
var Formats = []Format{FormatAll, FormatMarkdown, FormatHTML, FormatJSON}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}

	return "", errors.Errorf("invalid format %q (choose from %s)", s, formatNames())
}

// Includes reports whether f asks for the single representation other.
func (f Format) Includes(other Format) bool {
	return f == FormatAll || f == other
}

// String, Set and Type make *Format usable as a command line flag value.
func (f Format) String() string {
	return string(f)
}

func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f *Format) Type() string {
	return "format"
}

func formatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
