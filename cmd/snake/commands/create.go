package commands

import (
	"fmt"

	"github.com/Abhisg5/snakeAPI/api"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "creates a new game on the snake server",
	Run: func(*cobra.Command, []string) {
		resp := api.CreateResponse{}
		if err := call("POST", "/games", cr, &resp); err != nil {
			log.WithError(err).Fatal("unable to create game")
		}
		fmt.Printf(`{"ID": "%s"}`+"\n", resp.ID)
	},
}

var cr = &api.CreateRequest{}

func init() {
	createCmd.Flags().IntVar(&cr.Width, "width", 0, "grid width, server default when zero")
	createCmd.Flags().IntVar(&cr.Height, "height", 0, "grid height, server default when zero")
	createCmd.Flags().StringVar(&cr.Boundary, "boundary", "", "boundary policy, as one of: [wall, wrap]")
	createCmd.Flags().Float64Var(&cr.Speed, "speed", 0, "advisory game speed")
	createCmd.Flags().Uint64Var(&cr.Seed, "seed", 0, "random seed for food placement")
}
