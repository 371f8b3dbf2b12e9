package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"tweakpanel/internal/app"
	_ "tweakpanel/internal/sections"
	_ "tweakpanel/internal/sims/scooter"
	"tweakpanel/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "file receiving panel notices (discarded when empty)")
	flag.Parse()

	// The screen owns stdout and stderr while running.
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	log.SetOutput(out)

	session, err := app.Initialize(cfg, app.NewLogger(out))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer session.Teardown()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	term.New(session).Run(screen, cfg.TPS)
}
