package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Abhisg5/snakeAPI/controller"
	"github.com/Abhisg5/snakeAPI/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	errRateLimited = errors.New("api: rate limit exceeded")
	errBadRequest  = errors.New("api: bad request")
)

// CreateRequest describes a new game. Zero fields take the server defaults.
type CreateRequest struct {
	Width    int     `json:"width,omitempty"`
	Height   int     `json:"height,omitempty"`
	Boundary string  `json:"boundary,omitempty"`
	Speed    float64 `json:"speed,omitempty"`
	Seed     uint64  `json:"seed,omitempty"`
}

// Config converts the request to a game config over defaults.
func (req CreateRequest) Config(defaults rules.Config) (rules.Config, error) {
	cfg := rules.Config{
		Width:    req.Width,
		Height:   req.Height,
		Boundary: defaults.Boundary,
		Speed:    req.Speed,
		Seed:     req.Seed,
	}
	if req.Boundary != "" {
		b, err := rules.ParseBoundaryPolicy(req.Boundary)
		if err != nil {
			return cfg, err
		}
		cfg.Boundary = b
	}
	return cfg, nil
}

// CreateResponse is returned for a new game.
type CreateResponse struct {
	ID    string      `json:"id"`
	State rules.State `json:"state"`
}

// ListResponse lists the live games.
type ListResponse struct {
	IDs []string `json:"ids"`
}

// ScoreResponse holds a game's score.
type ScoreResponse struct {
	Score int `json:"score"`
}

// MoveResponse is the outcome of a tick. Success is false once the game is
// over.
type MoveResponse struct {
	Result  rules.MoveResult `json:"result"`
	Success bool             `json:"success"`
	State   rules.State      `json:"state"`
}

// SuccessResponse acknowledges a change, with the new state where one is
// useful.
type SuccessResponse struct {
	Success bool         `json:"success"`
	State   *rules.State `json:"state,omitempty"`
}

// SpeedRequest sets the advisory speed of a game.
type SpeedRequest struct {
	Speed float64 `json:"speed"`
}

// ErrorResponse carries a failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SocketMessage is sent after each move made over the socket.
type SocketMessage struct {
	Result rules.MoveResult `json:"result"`
	State  rules.State      `json:"state"`
}

// IndexResponse describes the service.
type IndexResponse struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func statusFor(err error) int {
	switch errors.Cause(err) {
	case controller.ErrNotFound:
		return http.StatusNotFound
	case controller.ErrIsLocked, controller.ErrExists:
		return http.StatusConflict
	case controller.ErrTooManySessions:
		return http.StatusServiceUnavailable
	case errRateLimited:
		return http.StatusTooManyRequests
	case errBadRequest,
		rules.ErrInvalidConfig,
		rules.ErrInvalidDirection,
		rules.ErrResourceExhausted,
		rules.ErrNoFreeCell,
		rules.ErrOutOfBounds,
		rules.ErrOccupied,
		rules.ErrGameOver:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("unable to write response")
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	if code >= http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	} else {
		log.WithError(err).Debug("request rejected")
	}
	writeJSON(w, code, ErrorResponse{Error: err.Error()})
}

// readJSON decodes the request body into v. An empty body leaves v as is.
func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return errors.Wrap(errBadRequest, err.Error())
	}
	return nil
}
