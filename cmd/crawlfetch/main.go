package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/crawlkit/crawl"
	"github.com/fwojciec/crawlkit/fs"
	"github.com/fwojciec/crawlkit/goquery"
	"github.com/fwojciec/crawlkit/htmltomarkdown"
	crawlhttp "github.com/fwojciec/crawlkit/http"
	crawlslog "github.com/fwojciec/crawlkit/slog"
	"github.com/fwojciec/crawlkit/sqlite"
	"github.com/fwojciec/crawlkit/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}

	opts := []kong.Option{
		kong.Name("crawlfetch"),
		kong.Description("Crawl a site into a local resource store"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	}

	// The config file supplies flag defaults, so it has to be located
	// before the real parse.
	if path := configPath(args); path != "" {
		resolver, err := tomlResolver(path)
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
		opts = append(opts, kong.Resolvers(resolver))
	}

	parser, err := kong.New(cli, opts...)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = crawlhttp.DefaultFetchTimeout
	}

	fetcher := crawlhttp.NewFetcher(crawlhttp.WithTimeout(timeout))
	defer fetcher.Close()
	deps.Fetcher = crawlslog.NewLoggingFetcher(fetcher, logger)

	// Store: SQLite when --db is given, filesystem otherwise.
	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		deps.Store = crawlslog.NewLoggingStore(sqlite.NewStore(db), logger)
	} else {
		deps.Store = crawlslog.NewLoggingStore(fs.NewStore(cli.Out), logger)
	}

	deps.Extractor = goquery.NewExtractor()

	if cli.Approx {
		deps.Tracker = crawl.NewApproxVisited(100_000, 0.001)
	} else {
		deps.Tracker = crawl.NewVisited()
	}

	if cli.RPS > 0 {
		deps.Limiter = crawl.NewDomainLimiter(cli.RPS)
	}

	if cli.Extract {
		deps.Processors = append(deps.Processors, trafilatura.NewProcessor())
	}
	if cli.Markdown {
		deps.Processors = append(deps.Processors, htmltomarkdown.NewProcessor())
	}

	if cli.Sitemap {
		deps.Seeder = crawlhttp.NewSeeder(nil)
	}

	deps.Logger = logger

	cmd := &FetchCmd{
		URL:          cli.URL,
		Depth:        cli.Depth,
		Concurrency:  cli.Concurrency,
		MaxResources: cli.MaxResources,
		Retries:      cli.Retries,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL          string        `arg:"" required:"" help:"Seed URL to crawl"`
	Depth        int           `short:"d" default:"2" help:"Maximum link depth from the seed"`
	Concurrency  int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS          float64       `default:"1.0" help:"Per-domain request rate limit (0 disables)"`
	Timeout      time.Duration `short:"t" default:"10s" help:"Fetch timeout per resource"`
	Out          string        `short:"o" default:"." help:"Output directory for the filesystem store"`
	DB           string        `help:"SQLite database path (overrides the filesystem store)"`
	Markdown     bool          `short:"m" help:"Convert fetched HTML to Markdown before storing"`
	Extract      bool          `short:"e" help:"Strip boilerplate, keeping only main page content"`
	Sitemap      bool          `short:"s" help:"Seed the crawl from the site's sitemap"`
	Approx       bool          `help:"Use a constant-memory approximate visited tracker"`
	MaxResources int           `default:"1000" help:"Cap on resources admitted per run"`
	Retries      int           `default:"0" help:"Fetch retry attempts after the first failure"`
	Verbose      bool          `short:"v" help:"Log fetch and store activity to stderr"`
	Config       string        `help:"TOML config file supplying flag defaults"`
}
