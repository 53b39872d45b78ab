package commands

import (
	"fmt"

	"github.com/Abhisg5/snakeAPI/api"
	"github.com/Abhisg5/snakeAPI/rules"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "moves the snake one step",
	Args:  requireGameID,
	Run: func(*cobra.Command, []string) {
		resp := api.MoveResponse{}
		if err := call("POST", "/games/"+gameID+"/move", nil, &resp); err != nil {
			log.WithError(err).WithField("id", gameID).Fatal("unable to move")
		}
		fmt.Printf("%s head=%v score=%d turn=%d\n",
			resp.Result, resp.State.Head(), resp.State.Score, resp.State.Turn)
	},
}

var direction string

var turnCmd = &cobra.Command{
	Use:   "turn",
	Short: "changes the direction of the snake",
	Args: func(c *cobra.Command, args []string) error {
		if err := requireGameID(c, args); err != nil {
			return err
		}
		_, err := rules.ParseDirection(direction)
		return err
	},
	Run: func(*cobra.Command, []string) {
		if err := call("POST", "/games/"+gameID+"/direction/"+direction, nil, nil); err != nil {
			log.WithError(err).WithField("id", gameID).Fatal("unable to turn")
		}
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "resets a game to its initial state",
	Args:  requireGameID,
	Run: func(*cobra.Command, []string) {
		if err := call("POST", "/games/"+gameID+"/reset", nil, nil); err != nil {
			log.WithError(err).WithField("id", gameID).Fatal("unable to reset")
		}
	},
}

func init() {
	addGameIDFlag(moveCmd)
	addGameIDFlag(turnCmd)
	addGameIDFlag(resetCmd)
	turnCmd.Flags().StringVarP(&direction, "direction", "d", "", "new direction, as one of: [up, right, down, left]")
}
