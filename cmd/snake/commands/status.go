package commands

import (
	"github.com/Abhisg5/snakeAPI/rules"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "gets the state of a game from the snake server",
	Args:  requireGameID,
	Run: func(*cobra.Command, []string) {
		st := rules.State{}
		if err := call("GET", "/games/"+gameID, nil, &st); err != nil {
			log.WithError(err).WithField("id", gameID).Fatal("unable to get game state")
		}
		spew.Dump(st)
	},
}

func init() {
	addGameIDFlag(statusCmd)
}
