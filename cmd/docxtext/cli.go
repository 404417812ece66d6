package main

import (
	"context"
	"io"

	"github.com/fwojciec/docxtext"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Archives    docxtext.ArchiveReader
	Extractor   docxtext.Extractor
	Extractions docxtext.ExtractionService
	Writer      docxtext.ExtractionWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log each extraction to stderr"`
	DB      string `name:"db" env:"DOCXTEXT_DB" help:"History database path (default: ~/.docxtext/docxtext.db)"`

	Extract ExtractCmd `cmd:"" help:"Print the text of a document"`
	Batch   BatchCmd   `cmd:"" help:"Extract text from several documents concurrently"`
	Entries EntriesCmd `cmd:"" help:"List the entries of a document archive"`
	History HistoryCmd `cmd:"" help:"List saved extractions"`
	Show    ShowCmd    `cmd:"" help:"Print a saved extraction"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved extraction"`
}

// ExtractOptions are the flags shared by extract and batch.
type ExtractOptions struct {
	Entry    string `short:"e" default:"word/document.xml" help:"Archive entry holding the document body"`
	Length   int    `short:"n" default:"4000" help:"Number of characters to print"`
	Mode     string `short:"m" enum:"approximate,structured" default:"approximate" help:"Markup removal mode (approximate, structured)"`
	Encoding string `default:"utf-8" help:"Encoding of the document body"`
	Save     bool   `help:"Record the extraction in history"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path           string `arg:"" help:"Path to the .docx file"`
	ExtractOptions `embed:""`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Paths          []string `arg:"" help:"Paths to .docx files"`
	Concurrency    int      `short:"c" default:"4" help:"Concurrent extraction limit"`
	OutDir         string   `short:"o" name:"out-dir" help:"Write one .txt file per document instead of printing"`
	Header         bool     `help:"Prepend a frontmatter header to written files"`
	ExtractOptions `embed:""`
}

// EntriesCmd is the "entries" subcommand.
type EntriesCmd struct {
	Path string `arg:"" help:"Path to the .docx file"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Path  string `short:"p" help:"Only show extractions of this path"`
	Limit int    `short:"l" default:"20" help:"Maximum number of extractions to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Extraction ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Extraction ID"`
}
