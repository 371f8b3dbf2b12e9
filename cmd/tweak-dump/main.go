package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"tweakpanel/internal/app"
	_ "tweakpanel/internal/sections"
	_ "tweakpanel/internal/sims/scooter"
	"tweakpanel/internal/ui"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 60, "frames to advance before applying actions")
	after := flag.Int("after", 1, "frames to advance after applying actions")
	step := flag.String("step", "", "global step text to apply before the actions")
	quiet := flag.Bool("quiet", false, "suppress section transition logging")
	var actions kvList
	flag.Var(&actions, "do", "action in section/row/op[/axis] form, op one of inc, dec, reset, toggle (repeatable)")
	flag.Parse()

	logger := app.NewLogger(os.Stderr)
	if *quiet {
		logger.SetOutput(io.Discard)
	}
	session, err := app.Initialize(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer session.Teardown()

	for i := 0; i < *frames; i++ {
		session.Advance()
	}

	if *step != "" {
		s := session.Step()
		s.SetText(*step)
		if !s.Apply() {
			log.Printf("invalid step %q, keeping %s", *step, s.Text())
		}
	}

	for _, raw := range actions {
		a, err := app.ParseAction(raw)
		if err != nil {
			log.Fatal(err)
		}
		wrote, err := session.Run(a)
		if err != nil {
			log.Fatal(err)
		}
		if !wrote {
			fmt.Fprintf(os.Stderr, "%s: no change\n", a)
		}
	}

	for i := 0; i < *after; i++ {
		session.Advance()
	}

	if !session.Open() {
		session.ToggleOpen()
	}
	if err := ui.WriteText(os.Stdout, session.Views(), session.Step()); err != nil {
		log.Fatal(err)
	}
}
