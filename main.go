package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	levelFlag := flag.String("loglevel", "info", "log level: trace, debug, info, warn, error")
	logFile := flag.String("logfile", "", "write logs to this file with rotation instead of stderr")
	mute := flag.Bool("mute", false, "disable sound effects")
	watch := flag.Bool("watch", true, "reload prefabs/ yaml files when they change on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	level, err := log.ParseLevel(*levelFlag)
	if err != nil {
		log.WithError(err).Fatal("invalid -loglevel")
	}
	log.SetLevel(level)
	if *logFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		})
	} else {
		log.SetOutput(os.Stderr)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(gameOptions{mute: *mute, hotReload: *watch})
	if err != nil {
		log.WithError(err).Fatal("start game")
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(game.width), int(game.height))
	ebiten.SetWindowTitle("get item")

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Error("game exited")
	}
}
