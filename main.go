package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/bulga138/texty/config"
	"github.com/bulga138/texty/editor"
	"github.com/bulga138/texty/terminal"
	"github.com/bulga138/texty/version"
)

var (
	initConfig  = flag.Bool("init-config", false, "Create a default config file and exit.")
	showVersion = flag.Bool("version", false, "Show version information and exit.")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())
		os.Exit(0)
	}

	if *initConfig {
		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	cfg, cfgErr := config.LoadConfig()

	if cfg.EnableLogger {
		f, err := os.OpenFile("texty.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.Printf("--- %s started ---", version.GetFullVersion())
	} else {
		log.SetOutput(io.Discard)
	}
	if cfgErr != nil {
		log.Printf("config problem, using defaults: %v", cfgErr)
	}

	var filename string
	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: texty [filename]")
		os.Exit(1)
	}
	if len(args) == 1 {
		filename = args[0]
	}

	term := terminal.New()
	defer term.Close()

	// The terminal must come back no matter how we die. Run restores it
	// on its own return paths; this catches panics anywhere below.
	defer func() {
		if r := recover(); r != nil {
			term.Close()
			fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	e, err := editor.NewEditor(term, cfg, filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing editor: %v\n", err)
		log.Printf("error initializing editor: %v", err)
		os.Exit(1)
	}

	if err := e.Run(); err != nil {
		term.Close()
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		log.Printf("error running editor: %v", err)
		os.Exit(1)
	}

	log.Println("--- exited cleanly ---")
}
