package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/edit"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/goquery"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/htmltomarkdown"
	roshslog "github.com/Jasper-van-Tilborg/roshproject-sub001/slog"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/sqlite"
	"github.com/alecthomas/kong"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SiteService rosh.SiteService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
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
		kong.Name("rosh"),
		kong.Description("Inspect and edit the components of generated tournament sites."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rosh --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ROSH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.SiteService = roshslog.NewLoggingSiteService(sqlite.NewSiteService(m.DB), logger)

	engine := goquery.NewParser()
	componentParser := roshslog.NewLoggingParser(engine, logger)

	deps.Sites = m.SiteService
	deps.Parser = componentParser
	deps.Editor = edit.NewEditor(m.SiteService, componentParser, roshslog.NewLoggingMutator(engine, logger))
	deps.Previewer = htmltomarkdown.NewPreviewer()

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("ROSH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "rosh.db"
	}
	dir := filepath.Join(home, ".rosh")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "rosh.db")
}
