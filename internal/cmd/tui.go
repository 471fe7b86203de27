package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/estimator"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive revenue-loss calculator",
	Long: `Open the revenue-loss calculator in the terminal.

Use ↑/↓ to pick a field, ←/→ to move it by one step, r to reset
and q to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := newFormatter()
		if err != nil {
			return err
		}
		return tui.Run(estimator.NewSession(), f, viper.GetBool("no-color"))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
