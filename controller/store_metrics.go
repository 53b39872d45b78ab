package controller

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s Store) Store { return &metrics{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "store",
			Name:      "calls",
			Help:      "Calls processed by the store.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(storeCalls)
}

type metrics struct{ s Store }

func (m *metrics) Lock(ctx context.Context, key, token string) (string, error) {
	defer instrument("Lock")()
	return m.s.Lock(ctx, key, token)
}

func (m *metrics) Unlock(ctx context.Context, key, token string) error {
	defer instrument("Unlock")()
	return m.s.Unlock(ctx, key, token)
}

func (m *metrics) Authorize(ctx context.Context, key, token string) error {
	defer instrument("Authorize")()
	return m.s.Authorize(ctx, key, token)
}

func (m *metrics) CreateSession(c context.Context, s *Session) error {
	defer instrument("CreateSession")()
	return m.s.CreateSession(c, s)
}

func (m *metrics) GetSession(c context.Context, id string) (*Session, error) {
	defer instrument("GetSession")()
	return m.s.GetSession(c, id)
}

func (m *metrics) DeleteSession(c context.Context, id string) error {
	defer instrument("DeleteSession")()
	return m.s.DeleteSession(c, id)
}

func (m *metrics) ListSessions(c context.Context) ([]string, error) {
	defer instrument("ListSessions")()
	return m.s.ListSessions(c)
}
