package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Abhisg5/snakeAPI/controller"
	"github.com/Abhisg5/snakeAPI/rules"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const writeWait = 5 * time.Second

// socket plays a game over a WebSocket. The connection holds the game's
// lock for as long as it is open, each text message is a direction (or
// "tick" to keep going) and is answered with the result of one move.
func (s *Server) socket(w http.ResponseWriter, r *http.Request, ps httprouter.Params, c *controller.Controller) {
	id := ps.ByName("id")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).WithField("game", id).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = controller.ContextWithLockToken(ctx, controller.ContextGetLockToken(r.Context()))

	if _, err := c.Status(ctx, id); err != nil {
		closeSocket(conn, websocket.CloseGoingAway, err.Error())
		return
	}

	token, err := c.Lock(ctx, id)
	if err != nil {
		closeSocket(conn, websocket.ClosePolicyViolation, err.Error())
		return
	}
	ctx = controller.ContextWithLockToken(ctx, token)
	log.WithField("game", id).Info("socket connected")

	defer func() {
		if err := c.Unlock(ctx, id); err != nil {
			log.WithError(err).WithField("game", id).Warn("unlock failed")
		}
		log.WithField("game", id).Info("socket disconnected")
	}()

	// Hold the lock, heartbeating every heartbeat interval.
	go func() {
		t := time.NewTicker(s.heartbeat)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if _, err := c.Lock(ctx, id); err != nil {
					log.WithError(err).WithField("game", id).Warn("lock lost during heartbeat")
					cancel()
					conn.Close()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).WithField("game", id).Warn("socket read failed")
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		res, st, err := step(ctx, c, id, string(message))
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err != nil {
			if werr := conn.WriteJSON(ErrorResponse{Error: err.Error()}); werr != nil {
				return
			}
			if statusFor(err) == http.StatusNotFound {
				closeSocket(conn, websocket.CloseGoingAway, err.Error())
				return
			}
			continue
		}
		if err := conn.WriteJSON(SocketMessage{Result: res, State: st}); err != nil {
			log.WithError(err).WithField("game", id).Warn("socket write failed")
			return
		}
	}
}

// step applies one socket message. Empty messages and "tick" keep the
// current direction.
func step(ctx context.Context, c *controller.Controller, id, msg string) (rules.MoveResult, rules.State, error) {
	msg = strings.TrimSpace(msg)
	if msg == "" || strings.EqualFold(msg, "tick") {
		return c.Move(ctx, id)
	}
	dir, err := rules.ParseDirection(msg)
	if err != nil {
		return rules.GameOver, rules.State{}, err
	}
	return c.Step(ctx, id, dir)
}

func closeSocket(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
		log.WithError(err).Debug("unable to send close message")
	}
}
