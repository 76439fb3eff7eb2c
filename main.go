package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mempirate/scrapetool/config"
	"github.com/mempirate/scrapetool/log"
	"github.com/mempirate/scrapetool/output"
	"github.com/mempirate/scrapetool/prompt"
	"github.com/mempirate/scrapetool/scrape"
	"github.com/mempirate/scrapetool/store"
)

// options is everything a single run needs, however it was collected.
type options struct {
	url      string
	format   output.Format
	filename string

	apiURL           string
	timeout          time.Duration
	outputDir        string
	markdownFallback bool
	logLevel         string
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load("")
	if err != nil {
		printError(stderr, err)
		return 1
	}

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(cfg, len(args) == 0)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		printError(stderr, err)
		return 1
	}

	return 0
}

// newRootCmd builds the command. interactive is set when the process got no
// arguments at all; anything else, even a bare "--", means argument mode.
func newRootCmd(cfg *config.Config, interactive bool) *cobra.Command {
	opts := &options{format: output.FormatAll}

	cmd := &cobra.Command{
		Use:   "scrapetool [url]",
		Short: "Scrape a URL through a local Firecrawl service and save the result",
		Long: `scrapetool sends a URL to a locally running Firecrawl-compatible scraping
service and saves the returned markdown, HTML and full JSON response.

Run without arguments for an interactive session.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := log.SetLevel(opts.logLevel); err != nil {
				return err
			}

			if len(args) == 0 {
				if !interactive {
					return errors.New("the url argument is required")
				}

				answers, err := prompt.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).Run()
				if err != nil {
					return err
				}

				opts.url, opts.format, opts.filename = answers.URL, answers.Format, answers.Filename
			} else {
				opts.url = args[0]
			}

			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.VarP(&opts.format, "format", "f", "Output format: all, markdown, html or json")
	flags.StringVarP(&opts.filename, "output", "o", "", "Output file name (without extension)")
	flags.StringVar(&opts.apiURL, "api-url", cfg.APIURL, "Scrape endpoint of the Firecrawl service (env "+config.ENV_API_URL+")")
	flags.DurationVar(&opts.timeout, "timeout", cfg.Timeout, "Request timeout, 0 for none (env "+config.ENV_TIMEOUT+")")
	flags.StringVar(&opts.outputDir, "output-dir", "", "Directory to write files to (default: working directory)")
	flags.BoolVar(&opts.markdownFallback, "markdown-fallback", false, "Convert HTML to markdown locally when the service returns no markdown")
	flags.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "Log level (env "+config.ENV_LOG_LEVEL+")")

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(output.Formats))
		for i, f := range output.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// run scrapes opts.url and writes the selected outputs.
func run(ctx context.Context, out io.Writer, opts *options) error {
	log := log.NewLogger("main")

	scraper := scrape.NewFirecrawlScraper(opts.apiURL, opts.timeout)

	log.Debug().Str("url", opts.url).Str("format", opts.format.String()).Str("endpoint", scraper.Endpoint()).Msg("Starting scrape")

	fmt.Fprintln(out, "\nScraping, please wait...")

	doc, err := scraper.Scrape(ctx, opts.url)
	if err != nil {
		return err
	}

	log.Info().Str("url", opts.url).Str("title", doc.Title()).Msg("Page scraped")

	target := output.NewTarget(opts.url, opts.format, opts.filename)

	writer := output.NewWriter(out, store.NewFileStore(opts.outputDir)).WithMarkdownFallback(opts.markdownFallback)

	written, err := writer.Save(doc, target)
	if err != nil {
		return err
	}

	log.Info().Strs("files", written).Msg("Scrape saved")

	return nil
}

func printError(w io.Writer, err error) {
	var reqErr *scrape.RequestError
	if errors.As(err, &reqErr) {
		fmt.Fprintf(w, "\nError making request: %s\n", reqErr.Err)
		return
	}

	fmt.Fprintf(w, "\nError: %s\n", err)
}
