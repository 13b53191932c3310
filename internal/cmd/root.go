package cmd

import (
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-solo/internal"
	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against the computer",
		Long: heredoc.Doc(`tictactoe plays rounds of tic-tac-toe on the terminal against
			a computer opponent and keeps your wins, losses and draws.

			Boxes are numbered 1 to 9 from the top left corner. The
			computer takes a winning box first, then blocks yours, then
			prefers the center, the corners and finally the edges.

			Settings are read from --config, ./config.yml or the
			tictactoe/config.yml file in your XDG config directory.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(session *appSession) error {
				return app.RunApp(session.logger, session.conf, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}

	// global flags
	root.PersistentFlags().StringP("config", "c", "", "Path to the config file")
	root.PersistentFlags().StringP("player", "p", "", "Player whose record is used")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Debug Information")

	root.AddCommand(Record())

	return root
}

func Record() *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Show the player's wins, losses and draws",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(session *appSession) error {
				return app.PrintRecord(session.logger, session.conf, cmd.OutOrStdout())
			})
		},
	}
}

type appSession struct {
	conf   *config.Config
	logger *slog.Logger
}

// withApp loads the config and logger from the global flags and runs fn with them.
func withApp(cmd *cobra.Command, fn func(session *appSession) error) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	conf, err := config.Load(path)
	if err != nil {
		return err
	}

	if player, _ := cmd.Flags().GetString("player"); player != "" {
		conf.PlayerID = player
	}

	if trace, _ := cmd.Flags().GetBool("trace"); trace {
		conf.LogLevel = "debug"
	}

	logger, closeLog, err := initLogger(conf, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	return fn(&appSession{conf: conf, logger: logger})
}
