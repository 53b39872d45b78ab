package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abhisg5/snakeAPI/api"
	"github.com/Abhisg5/snakeAPI/config"
	"github.com/Abhisg5/snakeAPI/controller"
	"github.com/Abhisg5/snakeAPI/rules"
	"github.com/Abhisg5/snakeAPI/worker"
	log "github.com/sirupsen/logrus"
)

var (
	apiListen    = ":4000"
	gridWidth    = config.GridWidth
	gridHeight   = config.GridHeight
	gameSpeed    = config.GameSpeed
	boundary     = config.Boundary.String()
	maxSessions  = config.MaxSessions
	idleTimeout  = config.SessionIdleTimeout
	reapInterval = config.ReapInterval
)

const shutdownTimeout = 5 * time.Second

func init() {
	f := RootCmd.Flags()
	f.StringVarP(&apiListen, "listen", "l", apiListen, "api address to listen on")
	f.IntVar(&gridWidth, "grid-width", gridWidth, "default grid width")
	f.IntVar(&gridHeight, "grid-height", gridHeight, "default grid height")
	f.Float64Var(&gameSpeed, "speed", gameSpeed, "default game speed")
	f.StringVar(&boundary, "boundary", boundary, "default boundary policy, as one of: [wall, wrap]")
	f.IntVar(&maxSessions, "max-sessions", maxSessions, "maximum number of live games, 0 for no limit")
	f.DurationVar(&idleTimeout, "idle-timeout", idleTimeout, "remove games idle for this long")
	f.DurationVar(&reapInterval, "reap-interval", reapInterval, "how often to look for idle games")
}

func serve() {
	b, err := rules.ParseBoundaryPolicy(boundary)
	if err != nil {
		log.WithError(err).WithField("boundary", boundary).Fatal("invalid boundary")
	}
	defaults := rules.Config{
		Width:    gridWidth,
		Height:   gridHeight,
		Boundary: b,
		Speed:    gameSpeed,
	}
	if err := defaults.Validate(); err != nil {
		log.WithError(err).Fatal("invalid game defaults")
	}

	ctrl := controller.New(controller.InstrumentStore(controller.InMemStore()), controller.Options{
		MaxSessions: maxSessions,
		Defaults:    defaults,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := &worker.Worker{
		Controller:   ctrl,
		PollInterval: reapInterval,
		IdleTimeout:  idleTimeout,
	}
	go w.Run(ctx, 0)

	s := api.New(apiListen, ctrl)
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		cancel()
		sctx, scancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer scancel()
		if err := s.Shutdown(sctx); err != nil {
			log.WithError(err).Warn("api shutdown failed")
		}
	}()

	log.WithFields(log.Fields{
		"listen":   apiListen,
		"width":    gridWidth,
		"height":   gridHeight,
		"boundary": b,
	}).Info("snake api serving")
	s.WaitForExit()
}
