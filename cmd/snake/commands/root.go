package commands

import (
	"fmt"
	"os"

	"github.com/Abhisg5/snakeAPI/cmd/snake/commands/server"
	"github.com/Abhisg5/snakeAPI/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake runs and plays games of snake",
	Version: version.Version,
	Run: func(c *cobra.Command, args []string) {
		server.RootCmd.PreRun(c, args)
		server.RootCmd.Run(c, args)
	},
}

var (
	apiAddr  string
	gameID   string
	logLevel = "info"
	logJSON  = false
)

func setupLogging(*cobra.Command, []string) {
	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		log.WithError(err).WithField("level", logLevel).Fatal("invalid log level")
	}
	log.SetLevel(lvl)
	if logJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}
}

// Execute runs the root command
func Execute() {
	rootCmd.PersistentPreRun = setupLogging
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level, as one of: [debug, info, warn, error]")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", logJSON, "log as json")
	rootCmd.PersistentFlags().StringVar(&apiAddr, "api-addr", "http://localhost:4000", "address of the api server")
	rootCmd.Flags().AddFlagSet(server.RootCmd.Flags())

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(turnCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(server.RootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
