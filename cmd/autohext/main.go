package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/autohext/fs"
	"github.com/fwojciec/autohext/goquery"
	"github.com/fwojciec/autohext/htmltomarkdown"
	ahslog "github.com/fwojciec/autohext/slog"
	"github.com/fwojciec/autohext/sqlite"
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

	// SQLite database, opened only for commands that store templates.
	DB *sqlite.DB
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
		kong.Name("autohext"),
		kong.Description("Build Hext extraction templates from example HTML records"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'autohext --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: parseLevel(cli.LogLevel)}))
	deps.Logger = logger

	deps.Parser = ahslog.NewLoggingParser(goquery.NewParser(goquery.WithSelectedClass(cli.SelectedClass)), logger)
	deps.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithHighlightClass(cli.SelectedClass))

	cmd := strings.Fields(kongCtx.Command())[0]

	if cmd == "build" && cli.Build.Out != "" {
		deps.Writer = fs.NewWriter(cli.Build.Out)
	}

	switch cmd {
	case "save", "list", "show", "delete":
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set AUTOHEXT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.Templates = ahslog.NewLoggingTemplateService(sqlite.NewTemplateService(m.DB), logger)
	}

	return kongCtx.Run(deps)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}

func defaultDBPath() string {
	if path := os.Getenv("AUTOHEXT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "autohext.db"
	}
	dir := filepath.Join(home, ".autohext")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "autohext.db")
}
