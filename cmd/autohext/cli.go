package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/autohext"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Parser    autohext.DocumentParser
	Converter autohext.Converter
	Templates autohext.TemplateService
	Writer    autohext.TemplateWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	LogLevel      string `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Log level for diagnostics on stderr"`
	SelectedClass string `name:"selected-class" default:"-autoscrape-selected" help:"Class marking selected nodes in HTML records"`

	Build  BuildCmd  `cmd:"" help:"Build Hext templates from example HTML records"`
	LCA    LCACmd    `cmd:"" name:"lca" help:"Print the common ancestor chunk of the selected nodes"`
	Save   SaveCmd   `cmd:"" help:"Build a template and store it"`
	List   ListCmd   `cmd:"" help:"List stored templates"`
	Show   ShowCmd   `cmd:"" help:"Print a stored template"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored template"`
}

// SelectionFlags choose the nodes to extract from a record.
type SelectionFlags struct {
	Select   []string `short:"s" name:"select" help:"CSS selector of nodes to extract (repeatable); replaces class markers"`
	Fragment bool     `help:"Parse the record as an HTML fragment and lower it whole"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Files       []string `arg:"" name:"file" help:"HTML record files"`
	Out         string   `short:"o" help:"Write templates to this directory as <name>.hext instead of stdout"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent build limit"`

	SelectionFlags `embed:""`
}

// LCACmd is the "lca" subcommand.
type LCACmd struct {
	File     string `arg:"" help:"HTML record file"`
	Markdown bool   `short:"m" help:"Render the chunk as Markdown"`

	SelectionFlags `embed:""`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	Name string `arg:"" help:"Template name"`
	File string `arg:"" help:"HTML record file"`

	SelectionFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name string `arg:"" help:"Template name"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Template name"`
	Force bool   `help:"Confirm deletion"`
}
