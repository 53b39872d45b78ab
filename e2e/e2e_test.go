package e2e

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Abhisg5/snakeAPI/api"
	"github.com/Abhisg5/snakeAPI/config"
	"github.com/Abhisg5/snakeAPI/controller"
	"github.com/Abhisg5/snakeAPI/rules"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newClient(url string) *client {
	return &client{
		apiURL: url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

var games = map[string]*api.CreateRequest{
	"Simple": {
		Width:  5,
		Height: 5,
	},
	"Wrap": {
		Width:    5,
		Height:   5,
		Boundary: "wrap",
	},
	"Narrow": {
		Width:  2,
		Height: 6,
	},
	"LargerBoard": {
		Width:  100,
		Height: 100,
	},
}

var apiURL string

func TestMain(m *testing.M) {
	flag.StringVar(&apiURL, "api-url", "", "run against an external server instead of an in-process one")
	flag.Parse()

	if apiURL == "" {
		config.APIRate = rate.Inf
		ctrl := controller.New(controller.InMemStore(), controller.Options{})
		ts := httptest.NewServer(api.New(":0", ctrl).Handler())
		apiURL = ts.URL
		code := m.Run()
		ts.Close()
		os.Exit(code)
	}
	os.Exit(m.Run())
}

func Test(t *testing.T) {
	const (
		multiplier = 3
		maxMoves   = 500
	)

	c := newClient(apiURL)
	directions := []rules.Direction{rules.Up, rules.Right, rules.Down, rules.Left}

	for i := 0; i < multiplier; i++ {
		for name, game := range games {
			game := game
			t.Run(fmt.Sprintf("%s#%d", name, i), func(t *testing.T) {
				randGen := rand.New(rand.NewSource(time.Now().UnixNano()))

				id, err := c.beginGame(game)
				if !assert.Nil(t, err) {
					return
				}
				defer func() { assert.Nil(t, c.endGame(id)) }()

				st, err := c.gameStatus(id)
				if !assert.Nil(t, err) {
					return
				}
				cells := st.Width * st.Height

				for n := 0; n < maxMoves; n++ {
					if randGen.Intn(3) == 0 {
						if !assert.Nil(t, c.turn(id, directions[randGen.Intn(4)])) {
							return
						}
					}

					prev := st
					res, err := c.move(id)
					if !assert.Nil(t, err) {
						return
					}
					st = &res.State

					ok := assert.Equal(t, 1+st.Score/rules.FoodReward, st.Length) &&
						assert.Equal(t, st.Length, len(st.Snake)) &&
						assert.True(t, st.Length <= cells)
					if !ok {
						spew.Dump(prev, st)
						return
					}

					switch res.Result {
					case rules.GameOver:
						assert.True(t, st.GameOver)
						assert.Equal(t, prev.Turn, st.Turn)
						assert.Equal(t, prev.Snake, st.Snake)
						t.Logf("game over id=%s cause=%s turns=%d score=%d", id, st.Cause, st.Turn, st.Score)
						return
					case rules.FoodEaten:
						assert.Equal(t, prev.Length+1, st.Length)
						assert.Equal(t, prev.Turn+1, st.Turn)
						if st.GameOver {
							assert.True(t, st.Won)
							return
						}
					case rules.Continue:
						assert.Equal(t, prev.Length, st.Length)
						assert.Equal(t, prev.Turn+1, st.Turn)
					}
				}
			})
		}
	}
}
