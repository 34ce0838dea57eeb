package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobin/waypoint/internal/catalog"
	"github.com/tobin/waypoint/internal/config"
	"github.com/tobin/waypoint/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := catalog.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := catalog.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := catalog.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	items, err := catalog.NewStore(db).List(ctx)
	if err != nil {
		log.Fatalf("load items: %v", err)
	}

	p := tea.NewProgram(tui.New(cfg, items), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
