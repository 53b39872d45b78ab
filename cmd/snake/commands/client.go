package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/Abhisg5/snakeAPI/api"
	"github.com/spf13/cobra"
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
}

// requireGameID rejects commands run without --game-id.
func requireGameID(c *cobra.Command, args []string) error {
	if len(gameID) == 0 {
		return errors.New("game id is required")
	}
	return nil
}

func addGameIDFlag(c *cobra.Command) {
	c.Flags().StringVarP(&gameID, "game-id", "g", "", "the id of the game")
}

// call sends body as JSON to the api and decodes the reply into out.
func call(method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, apiAddr+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		er := api.ErrorResponse{}
		if json.Unmarshal(data, &er) == nil && er.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, er.Error)
		}
		return fmt.Errorf("%s: %s", resp.Status, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}
