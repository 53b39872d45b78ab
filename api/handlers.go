package api

import (
	"fmt"
	"net/http"

	"github.com/Abhisg5/snakeAPI/controller"
	"github.com/Abhisg5/snakeAPI/rules"
	"github.com/Abhisg5/snakeAPI/version"
	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"
)

// qrSize is the edge of the share code image in pixels.
const qrSize = 256

func index(w http.ResponseWriter, r *http.Request, _ httprouter.Params, _ *controller.Controller) {
	writeJSON(w, http.StatusOK, IndexResponse{
		Message: "Snake Game API is running",
		Status:  "active",
		Version: version.Version,
		Endpoints: map[string]string{
			"POST /games":                    "Create a game",
			"GET /games":                     "List games",
			"GET /games/:id":                 "Get game state",
			"GET /games/:id/score":           "Get game score",
			"POST /games/:id/move":           "Move snake one step",
			"POST /games/:id/direction/:dir": "Change snake direction (up/right/down/left)",
			"POST /games/:id/reset":          "Reset game to initial state",
			"POST /games/:id/speed":          "Set game speed",
			"DELETE /games/:id":              "End a game",
			"GET /games/:id/socket":          "Play a game over a WebSocket",
			"GET /games/:id/qr":              "QR code for the game socket",
			"GET /api/game/state":            "Get current default game state",
			"POST /api/game/move":            "Move default snake one step",
			"POST /api/game/direction/:dir":  "Change default snake direction",
			"POST /api/game/reset":           "Reset default game",
			"GET /api/game/score":            "Get default game score",
		},
	})
}

func listGames(w http.ResponseWriter, r *http.Request, _ httprouter.Params, c *controller.Controller) {
	ids, err := c.List(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse{IDs: ids})
}

func createGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params, c *controller.Controller) {
	req := CreateRequest{}
	if err := readJSON(r, &req); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	cfg, err := req.Config(c.Defaults)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s, err := c.Create(r.Context(), "", cfg)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, CreateResponse{ID: s.ID, State: s.State()})
}

func gameState(w http.ResponseWriter, r *http.Request, ps httprouter.Params, c *controller.Controller) {
	st, err := c.Status(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func gameScore(w http.ResponseWriter, r *http.Request, ps httprouter.Params, c *controller.Controller) {
	st, err := c.Status(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, ScoreResponse{Score: st.Score})
}

func moveGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params, c *controller.Controller) {
	res, st, err := c.Move(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, MoveResponse{
		Result:  res,
		Success: res != rules.GameOver,
		State:   st,
	})
}

func changeDirection(w http.ResponseWriter, r *http.Request, ps httprouter.Params, c *controller.Controller) {
	dir, err := rules.ParseDirection(ps.ByName("dir"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	if err := c.Turn(r.Context(), ps.ByName("id"), dir); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func resetGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params, c *controller.Controller) {
	st, err := c.Reset(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, State: &st})
}

func setSpeed(w http.ResponseWriter, r *http.Request, ps httprouter.Params, c *controller.Controller) {
	req := SpeedRequest{}
	if err := readJSON(r, &req); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	if err := c.SetSpeed(r.Context(), ps.ByName("id"), req.Speed); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func endGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params, c *controller.Controller) {
	if err := c.End(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// shareCode renders a QR code pointing at the game's socket so a second
// device can join.
func shareCode(w http.ResponseWriter, r *http.Request, ps httprouter.Params, c *controller.Controller) {
	id := ps.ByName("id")
	if _, err := c.Status(r.Context(), id); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	qr, err := qrcode.New(socketURL(r, id), qrcode.Medium)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	png, err := qr.PNG(qrSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func socketURL(r *http.Request, id string) string {
	scheme := "ws"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "wss"
	}
	return fmt.Sprintf("%s://%s/games/%s/socket", scheme, r.Host, id)
}
