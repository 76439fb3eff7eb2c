package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mempirate/scrapetool/output"
)

const (
	BANNER = "\n=== Web Scraper ==="

	URL_PROMPT      = "\nEnter the URL to scrape: "
	FORMAT_PROMPT   = "\nSelect format (1-4): "
	FILENAME_PROMPT = "\nEnter custom filename (press Enter to use default): "

	REPLY_INVALID_URL    = "Please enter a valid URL starting with http:// or https://"
	REPLY_INVALID_NUMBER = "Please enter a valid number"
	REPLY_OUT_OF_RANGE   = "Please enter a number between 1 and 4"
)

const FORMAT_MENU = `
Available formats:
1. All formats (markdown, HTML, and JSON)
2. Markdown only
3. HTML only
4. JSON only`

// ErrNoInput is returned when input ends before a valid answer was given.
var ErrNoInput = errors.New("no input")

// Answers holds everything the interactive session asks for.
type Answers struct {
	URL    string
	Format output.Format
	// Filename is empty when the default name should be used.
	Filename string
}

// Prompter asks questions on out and reads line-based answers from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run asks for a URL, a format and an optional filename, in that order.
func (p *Prompter) Run() (*Answers, error) {
	fmt.Fprintln(p.out, BANNER)

	url, err := p.AskURL()
	if err != nil {
		return nil, err
	}

	format, err := p.AskFormat()
	if err != nil {
		return nil, err
	}

	filename, err := p.AskFilename()
	if err != nil {
		return nil, err
	}

	return &Answers{
		URL:      url,
		Format:   format,
		Filename: filename,
	}, nil
}

// AskURL prompts until the answer starts with http:// or https://.
func (p *Prompter) AskURL() (string, error) {
	for {
		line, err := p.ask(URL_PROMPT)
		if err != nil {
			return "", err
		}

		if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
			return line, nil
		}

		fmt.Fprintln(p.out, REPLY_INVALID_URL)
	}
}

// AskFormat shows the format menu and prompts until a number from 1 to 4 is
// entered.
func (p *Prompter) AskFormat() (output.Format, error) {
	fmt.Fprintln(p.out, FORMAT_MENU)

	for {
		line, err := p.ask(FORMAT_PROMPT)
		if err != nil {
			return "", err
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, REPLY_INVALID_NUMBER)
			continue
		}

		if choice < 1 || choice > len(output.Formats) {
			fmt.Fprintln(p.out, REPLY_OUT_OF_RANGE)
			continue
		}

		return output.Formats[choice-1], nil
	}
}

// AskFilename prompts once for a custom base filename. An empty answer is
// returned as-is and means "use the default".
func (p *Prompter) AskFilename() (string, error) {
	return p.ask(FILENAME_PROMPT)
}

func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", errors.Wrap(err, "failed to read input")
		}
		return "", ErrNoInput
	}

	return strings.TrimSpace(p.in.Text()), nil
}
