package controller

import (
	"github.com/Abhisg5/snakeAPI/rules"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ticks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "ticks_total",
			Help:      "Ticks applied to games, by result.",
		},
		[]string{"result"},
	)
	gamesEnded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "ended_total",
			Help:      "Games that reached game over, by cause.",
		},
		[]string{"cause"},
	)
	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "controller",
			Name:      "sessions",
			Help:      "Sessions currently held by the controller.",
		},
	)
)

func init() {
	prometheus.MustRegister(ticks, gamesEnded, activeSessions)
}

func observeTick(res rules.MoveResult, wasOver bool, g *rules.Game) {
	ticks.WithLabelValues(res.String()).Inc()
	if !wasOver && g.IsOver() {
		gamesEnded.WithLabelValues(string(g.Cause())).Inc()
	}
}
