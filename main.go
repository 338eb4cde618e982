package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"snapedit/internal/editor"
)

const version = "0.1.0"

// ErrNotTerminal is returned when stdin or stdout is not attached to a
// terminal.
var ErrNotTerminal = errors.New("not running in a terminal")

var (
	configFlag  = flag.String("config", "", "path to config.json (default: user config dir)")
	logFlag     = flag.String("log", "", "append debug logs to this file")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] [filename]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nA minimal screen editor with one level of undo per keystroke.\n")
	fmt.Fprintf(os.Stderr, "\nControls:\n")
	fmt.Fprintf(os.Stderr, "  Arrows       Move the cursor\n")
	fmt.Fprintf(os.Stderr, "  PgUp/PgDn    Scroll the view\n")
	fmt.Fprintf(os.Stderr, "  Ctrl+Z       Undo\n")
	fmt.Fprintf(os.Stderr, "  Ctrl+Q       Quit (there is no save)\n")
	fmt.Fprintf(os.Stderr, "\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("snapedit %s\n", version)
		return
	}
	if flag.NArg() > 1 {
		usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logFlag != "" {
		cfg.LogFile = *logFlag
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	filename := cfg.DefaultFile
	if flag.NArg() == 1 {
		filename = flag.Arg(0)
	}

	banner, err := edit(filename, cfg)
	if err != nil {
		closeLog()
		log.SetOutput(os.Stderr)
		log.Fatalf("Editor error: %v", err)
	}
	if banner != "" {
		fmt.Println(banner)
	}
}

// setupLogging sends the standard logger to path, or discards it. The screen
// owns the terminal while editing, so nothing may be logged to stderr.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.Println("--- snapedit started ---")
	return func() { f.Close() }, nil
}

// edit loads filename, runs one editing session and returns the quit banner.
func edit(filename string, cfg Config) (string, error) {
	lines, err := loadLines(filename)
	if err != nil {
		return "", err
	}
	log.Printf("loaded %q: %d lines", filename, len(lines))

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return "", ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return "", fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return "", fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ed := editor.New(lines, editor.Options{
		Rows:   textRows(screen),
		Banner: cfg.QuitBanner,
		Logger: log.Default(),
	})
	if err := run(screen, ed, newScreenTarget(screen, filename, cfg)); err != nil {
		return "", err
	}
	return ed.Frame().Banner, nil
}
