package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-field-go/internal/config"
)

func main() {
	cfg := config.New()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logFile, err := config.SetupLogging(cfg.Debug, cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}

	game := NewGame(cfg)

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Particle Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	game.Start()

	// Run the game loop
	err = ebiten.RunGame(game)
	game.Stop()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
