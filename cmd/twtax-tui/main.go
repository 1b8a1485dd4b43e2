package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/twtax/internal/config"
	"github.com/rgehrsitz/twtax/internal/tui"
)

func main() {
	configFile := flag.String("config", "", "Settings file (default: twtax.yaml in the working directory, if present)")
	rules := flag.String("rules", "", "Rule document; overrides the configured rules path")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: twtax-tui [--rules rules.yaml] <case-file>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	casePath := flag.Arg(0)

	if _, err := os.Stat(casePath); os.IsNotExist(err) {
		fmt.Printf("Error: Case file not found: %s\n", casePath)
		os.Exit(1)
	}

	settings, err := config.LoadSettings(config.NewViper(*configFile))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	rulesPath := settings.RulesPath
	if *rules != "" {
		rulesPath = *rules
	}

	p := tea.NewProgram(
		tui.NewModel(rulesPath, casePath),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
