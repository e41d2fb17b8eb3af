package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lunehart/vista/canvas"
	"github.com/lunehart/vista/internal/config"
	"github.com/lunehart/vista/internal/scenescript"
	"github.com/lunehart/vista/internal/ui"
)

// Version is set at build time.
var Version = "dev"

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()
	if *versionFlag {
		fmt.Println("vista", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vista:", err)
		os.Exit(1)
	}
}

func run() error {
	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	scene, err := loadScene(cfg)
	if err != nil {
		return err
	}

	background := cfg.BackgroundRune()
	if scene.Background != 0 {
		background = scene.Background
	}
	c := canvas.New(canvas.Options{Background: background})
	scene.Apply(c)

	program := tea.NewProgram(ui.New(cfg, c),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func loadScene(cfg *config.Config) (*scenescript.Scene, error) {
	if cfg.Scene.Path != "" {
		return scenescript.Load(cfg.Scene.Path)
	}
	return scenescript.Demo()
}

// setupLogging writes canvas debug logs to $VISTA_LOG when set. The
// alternate screen belongs to the UI, so logs never go to stderr while
// the program runs.
func setupLogging() {
	path := os.Getenv("VISTA_LOG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	canvas.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
