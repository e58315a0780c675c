package main

import (
	"context"
	"io"

	"github.com/mwalczak/clipmark"
	"github.com/mwalczak/clipmark/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Config  clipmark.Config
	DB      *sqlite.DB
	Clipper clipmark.Clipper
	Clips   clipmark.ClipStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" help:"Path to the YAML config file" type:"path"`

	Serve ServeCmd `cmd:"" help:"Run the clip HTTP service"`
	Clip  ClipCmd  `cmd:"" help:"Clip a single article URL"`
	List  ListCmd  `cmd:"" help:"List stored clips"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}

// ClipCmd is the "clip" subcommand.
type ClipCmd struct {
	URL string `arg:"" help:"Article URL to clip"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of clips to show"`
}
