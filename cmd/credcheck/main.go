package main

import (
	"credcheck/client"
	"credcheck/config"
	"credcheck/tui"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Parse command-line flags
	endpoint := flag.String("url", cfg.Endpoint, "Analysis service endpoint")
	logFile := flag.String("log", cfg.LogFile, "Write debug logs to this file")
	flag.Parse()

	if err := run(cfg, *endpoint, *logFile, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so nothing is skipped by os.Exit in main
func run(cfg *config.Config, endpoint, logFile string, args []string) error {
	// The TUI owns the terminal, so logs go to a file or nowhere
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "credcheck")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	analysisClient := client.NewAnalysisClient(endpoint, cfg.Timeout)
	log.Printf("🚀 credcheck starting, endpoint %s", analysisClient.Endpoint())

	// Create TUI model, prefilled with any positional arguments
	m := tui.NewModel(analysisClient)
	if len(args) > 0 {
		m = m.SetInput(strings.Join(args, " "))
	}

	// Create the tea program
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}
