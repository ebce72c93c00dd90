package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/quantumsuit/levels"
	"github.com/milk9111/quantumsuit/logging"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", levels.DefaultLevel, "level name in levels/ (basename, .json optional)")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml from disk when they change")
	logFormat := flag.String("log-format", "console", "log encoding: console or json")
	flag.Parse()

	logger, err := logging.New(logging.Config{Level: "info", Format: *logFormat, Debug: *debug})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("quantumsuit")

	game, err := NewGame(GameOptions{
		Level:  *levelName,
		Debug:  *debug,
		Watch:  *watch,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		logger.Error("run game", zap.Error(err))
	}
}
