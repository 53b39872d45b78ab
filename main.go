package main

import (
	"context"
	"flag"
	"time"

	"github.com/Abhisg5/snakeAPI/api"
	"github.com/Abhisg5/snakeAPI/config"
	"github.com/Abhisg5/snakeAPI/controller"
	"github.com/Abhisg5/snakeAPI/rules"
	"github.com/Abhisg5/snakeAPI/worker"
	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		apiAddr     string
		maxSessions int
		idleTimeout time.Duration
	)
	flag.StringVar(&apiAddr, "listen", ":4000", "api listen address")
	flag.IntVar(&maxSessions, "max-sessions", config.MaxSessions, "maximum number of live games")
	flag.DurationVar(&idleTimeout, "idle-timeout", config.SessionIdleTimeout, "remove games idle for this long")
	flag.Parse()

	defaults, err := gameDefaults()
	if err != nil {
		log.WithError(err).Fatal("invalid game defaults")
	}

	c := controller.New(controller.InstrumentStore(controller.InMemStore()), controller.Options{
		MaxSessions: maxSessions,
		Defaults:    defaults,
	})

	w := &worker.Worker{
		Controller:   c,
		PollInterval: config.ReapInterval,
		IdleTimeout:  idleTimeout,
	}
	go w.Run(context.Background(), 0)

	api.New(apiAddr, c).WaitForExit()
}

// gameDefaults is the environment's default game, rejected when no game
// could be built from it.
func gameDefaults() (rules.Config, error) {
	cfg := config.GameConfig()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
