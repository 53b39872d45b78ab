// Package e2e drives a running snake server over HTTP.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Abhisg5/snakeAPI/api"
	"github.com/Abhisg5/snakeAPI/rules"
)

type client struct {
	apiURL string
	client *http.Client
}

func (c *client) do(method, path string, body, out interface{}) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}
	req, err := http.NewRequest(method, c.apiURL+path, &buf)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func (c *client) beginGame(cr *api.CreateRequest) (string, error) {
	res := &api.CreateResponse{}
	code, err := c.do("POST", "/games", cr, res)
	if err != nil {
		return "", err
	}
	if code != http.StatusOK {
		return "", fmt.Errorf("create game: status %d", code)
	}
	return res.ID, nil
}

func (c *client) gameStatus(id string) (*rules.State, error) {
	st := &rules.State{}
	code, err := c.do("GET", "/games/"+id, nil, st)
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("game status: status %d", code)
	}
	return st, nil
}

func (c *client) turn(id string, dir rules.Direction) error {
	code, err := c.do("POST", fmt.Sprintf("/games/%s/direction/%s", id, dir), nil, nil)
	if err != nil {
		return err
	}
	if code != http.StatusOK {
		return fmt.Errorf("turn: status %d", code)
	}
	return nil
}

func (c *client) move(id string) (*api.MoveResponse, error) {
	res := &api.MoveResponse{}
	code, err := c.do("POST", "/games/"+id+"/move", nil, res)
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("move: status %d", code)
	}
	return res, nil
}

func (c *client) endGame(id string) error {
	code, err := c.do("DELETE", "/games/"+id, nil, nil)
	if err != nil {
		return err
	}
	if code != http.StatusNoContent {
		return fmt.Errorf("end game: status %d", code)
	}
	return nil
}
