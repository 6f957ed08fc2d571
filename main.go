package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	verbose := flag.Bool("v", false, "log debug output to stderr")
	preview := flag.Bool("preview", false, "browse the converted table after writing it")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-v] [-preview] [input.jsonl [output.csv]]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := DefaultConfig().withArgs(flag.Args())

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	summary, err := Convert(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", cfg.InputPath, err)
		os.Exit(1)
	}

	fmt.Printf("Conversion complete: %s -> %s\n", cfg.InputPath, cfg.OutputPath)

	if !*preview {
		return
	}

	model := NewModel(summary)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
