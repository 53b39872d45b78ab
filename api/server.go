// Package api serves games over HTTP and WebSocket.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Abhisg5/snakeAPI/config"
	"github.com/Abhisg5/snakeAPI/controller"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Server is the HTTP front of a controller.
type Server struct {
	hs        *http.Server
	ctrl      *controller.Controller
	limiter   *rate.Limiter
	heartbeat time.Duration
}

// New returns a server listening on addr once WaitForExit is called.
func New(addr string, c *controller.Controller) *Server {
	s := &Server{
		ctrl:      c,
		limiter:   rate.NewLimiter(config.APIRate, config.APIBurstRate),
		heartbeat: config.LockHeartbeat,
	}

	router := httprouter.New()
	router.GET("/", s.handle(index))
	router.GET("/games", s.handle(listGames))
	router.POST("/games", s.handle(createGame))
	router.GET("/games/:id", s.handle(gameState))
	router.DELETE("/games/:id", s.handle(endGame))
	router.GET("/games/:id/score", s.handle(gameScore))
	router.POST("/games/:id/move", s.handle(moveGame))
	router.POST("/games/:id/direction/:dir", s.handle(changeDirection))
	router.POST("/games/:id/reset", s.handle(resetGame))
	router.POST("/games/:id/speed", s.handle(setSpeed))
	router.GET("/games/:id/qr", s.handle(shareCode))
	router.GET("/games/:id/socket", s.handle(s.socket))

	router.GET("/api/game/state", s.handle(defaultGame(gameState)))
	router.GET("/api/game/score", s.handle(defaultGame(gameScore)))
	router.POST("/api/game/move", s.handle(defaultGame(moveGame)))
	router.POST("/api/game/direction/:dir", s.handle(defaultGame(changeDirection)))
	router.POST("/api/game/reset", s.handle(defaultGame(resetGame)))

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE"},
		AllowedHeaders: []string{"Content-Type", controller.TokenHeader},
	}).Handler(s.rateLimit(router))

	s.hs = &http.Server{
		Addr:    addr,
		Handler: handler,
	}
	return s
}

// Handler returns the root handler of the server.
func (s *Server) Handler() http.Handler { return s.hs.Handler }

// WaitForExit starts up the server and blocks until the server shuts down.
func (s *Server) WaitForExit() {
	log.Infof("snake api listening on %s", s.hs.Addr)
	err := s.hs.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Errorf("Error while listening: %v", err)
	}
}

// Shutdown stops accepting requests and waits for active ones to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, errRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type ctrlHandle func(http.ResponseWriter, *http.Request, httprouter.Params, *controller.Controller)

// handle adapts a controller handler to httprouter, moving the lock token
// header into the request context.
func (s *Server) handle(h ctrlHandle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if tok := r.Header.Get(controller.TokenHeader); tok != "" {
			r = r.WithContext(controller.ContextWithLockToken(r.Context(), tok))
		}
		h(w, r, ps, s.ctrl)
	}
}

// defaultGame points a handler at the shared default session, creating it
// on first use.
func defaultGame(h ctrlHandle) ctrlHandle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params, c *controller.Controller) {
		if _, err := c.Ensure(r.Context(), controller.DefaultSessionID, c.Defaults); err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		ps = append(httprouter.Params{{Key: "id", Value: controller.DefaultSessionID}}, ps...)
		h(w, r, ps, c)
	}
}
