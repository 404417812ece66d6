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
	"github.com/fwojciec/docxtext"
	"github.com/fwojciec/docxtext/etree"
	"github.com/fwojciec/docxtext/extract"
	"github.com/fwojciec/docxtext/fs"
	dslog "github.com/fwojciec/docxtext/slog"
	"github.com/fwojciec/docxtext/sqlite"
	"github.com/fwojciec/docxtext/xtext"
	"github.com/fwojciec/docxtext/zip"
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
	// Database path used when neither --db nor DOCXTEXT_DB is set.
	DBPath string

	// SQLite database used by the history commands and --save.
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
		kong.Name("docxtext"),
		kong.Description("Print the plain text of Word documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docxtext --help' to see available commands")
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
	command := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire extraction services
	deps.Archives = dslog.NewLoggingArchiveReader(zip.NewReader(), logger)
	deps.Extractor = dslog.NewLoggingExtractor(&extract.Service{
		Archives:   deps.Archives,
		Decoder:    xtext.NewDecoder(),
		Structured: etree.NewStripper(),
	}, logger)

	if command == "batch" && cli.Batch.OutDir != "" {
		w := fs.NewWriter(cli.Batch.OutDir)
		w.Header = cli.Batch.Header
		deps.Writer = w
	}

	if needsDB(command, cli) {
		dbPath := cli.DB
		if dbPath == "" {
			dbPath = m.DBPath
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOCXTEXT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()

		deps.Extractions = sqlite.NewExtractionService(m.DB)
	}

	return kongCtx.Run(deps)
}

// needsDB reports whether the selected command reads or writes history.
func needsDB(command string, cli *CLI) bool {
	switch command {
	case "history", "show", "delete":
		return true
	case "extract":
		return cli.Extract.Save
	case "batch":
		return cli.Batch.Save
	}
	return false
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "docxtext.db"
	}
	return filepath.Join(home, ".docxtext", "docxtext.db")
}

// request builds an ExtractRequest from shared command flags.
func request(path string, opts ExtractOptions) docxtext.ExtractRequest {
	return docxtext.ExtractRequest{
		Path:         path,
		Entry:        opts.Entry,
		PrefixLength: opts.Length,
		Mode:         docxtext.Mode(opts.Mode),
		Encoding:     opts.Encoding,
	}
}
