package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Garsondee/Grid-Raider/internal/game"
	"github.com/Garsondee/Grid-Raider/internal/logger"
	"github.com/Garsondee/Grid-Raider/internal/view"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var levelName string
	var levelFile string
	var configFile string
	var recordFile string
	var listLevels bool

	flag.StringVar(&levelName, "level", "default", "builtin level name")
	flag.StringVar(&levelFile, "level-file", "", "load the level from a YAML file instead of a builtin")
	flag.StringVar(&configFile, "config", "", "YAML file overriding the default tuning")
	flag.StringVar(&recordFile, "record", "", "write a replay of each session to this file")
	flag.BoolVar(&listLevels, "list-levels", false, "print the builtin levels and exit")
	flag.Parse()

	if listLevels {
		for _, name := range game.BuiltinLevelNames() {
			fmt.Println(name)
		}
		return
	}

	logger.Init()
	log := logger.For("main")

	cfg := game.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = game.LoadConfig(configFile); err != nil {
			log.WithError(err).Fatal("could not load config")
		}
	}

	var lvl *game.Level
	var err error
	levelKey := levelName
	if levelFile != "" {
		lvl, err = game.LoadLevel(levelFile)
		levelKey = ""
	} else {
		lvl, err = game.BuiltinLevel(levelName)
	}
	if err != nil {
		log.WithError(err).Fatal("could not load level")
	}
	if recordFile != "" && levelKey == "" {
		log.Warn("replays of file levels cannot be played back by name")
	}

	g, err := view.New(view.Options{
		Level:      lvl,
		LevelKey:   levelKey,
		Config:     cfg,
		RecordPath: recordFile,
		Log:        logger.For("game"),
	})
	if err != nil {
		log.WithError(err).Fatal("could not start game")
	}

	ebiten.SetWindowTitle("Grid Raider")
	ebiten.SetWindowSize(g.Layout(0, 0))

	runErr := ebiten.RunGame(g)
	if err := g.Close(); err != nil {
		log.WithError(err).Error("could not save replay")
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.WithError(runErr).Error("game exited")
		os.Exit(1)
	}
}
