// Command clipmark clips web articles into Markdown notes.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mwalczak/clipmark"
	"github.com/mwalczak/clipmark/fs"
	"github.com/mwalczak/clipmark/gemini"
	"github.com/mwalczak/clipmark/htmltomarkdown"
	cliphttp "github.com/mwalczak/clipmark/http"
	"github.com/mwalczak/clipmark/obsidian"
	"github.com/mwalczak/clipmark/picgo"
	"github.com/mwalczak/clipmark/pipeline"
	clipslog "github.com/mwalczak/clipmark/slog"
	"github.com/mwalczak/clipmark/sqlite"
	"github.com/mwalczak/clipmark/trafilatura"
	"github.com/mwalczak/clipmark/wecom"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by the clip store.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("clipmark"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'clipmark --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// First word of the resolved command, e.g. "clip <url>" -> "clip".
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	deps.Config, err = loadConfig(cli.Config)
	if err != nil {
		return err
	}

	logLevel := slog.LevelInfo
	if deps.Config.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	m.DB = sqlite.NewDB(deps.Config.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: set db_path in the config to a writable location")
		return fmt.Errorf("failed to open database at %q: %w", deps.Config.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Clips = sqlite.NewClipStore(m.DB)

	if cmd == "serve" || cmd == "clip" {
		clipper, err := buildClipper(ctx, deps.Config, deps.Clips, logger)
		if err != nil {
			return err
		}
		deps.Clipper = clipper
	}

	return kongCtx.Run(deps)
}

// buildClipper wires the pipeline from the configuration. Optional stages
// stay nil when disabled.
func buildClipper(ctx context.Context, cfg clipmark.Config, clips clipmark.ClipStore, logger *slog.Logger) (*pipeline.Clipper, error) {
	clipper := &pipeline.Clipper{
		Fetcher:   clipslog.NewLoggingFetcher(cliphttp.NewFetcher(), logger),
		Converter: clipslog.NewLoggingConverter(htmltomarkdown.NewConverter(), logger),
		Meta:      trafilatura.NewExtractor(),
		Clips:     clips,
		Logger:    logger,
	}

	if cfg.PicGo.Enabled {
		uploader := picgo.NewUploader(cfg.PicGo.Server, cfg.PicGo.UploadPath,
			picgo.WithHostLimiter(pipeline.NewHostLimiter(2.0)),
			picgo.WithLogger(logger),
		)
		clipper.Uploader = clipslog.NewLoggingUploader(uploader, logger)
	}

	switch {
	case cfg.Obsidian.URL != "":
		publisher := obsidian.NewPublisher(cfg.Obsidian.URL, cfg.Obsidian.APIKey,
			obsidian.WithBasePath(cfg.Obsidian.ClippingsPath),
			obsidian.WithDateFolders(cfg.Obsidian.DateFolder),
		)
		clipper.Publisher = clipslog.NewLoggingPublisher(publisher, logger)
	case cfg.NotesDir != "":
		publisher := fs.NewPublisher(cfg.NotesDir,
			fs.WithDateFolders(cfg.Obsidian.DateFolder),
		)
		clipper.Publisher = clipslog.NewLoggingPublisher(publisher, logger)
	}

	if cfg.LLM.Enabled {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		clipper.Summarizer = gemini.NewSummarizer(client, cfg.LLM.Model)
	}

	if cfg.WeCom.WebhookURL != "" {
		clipper.Notifier = wecom.NewNotifier(cfg.WeCom.WebhookURL)
	}

	return clipper, nil
}
