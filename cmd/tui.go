package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/paygap/internal/config"
	"github.com/sells-group/paygap/internal/tui"
	"github.com/sells-group/paygap/internal/view"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse companies and years interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context(), config.ModeCLI)
		if err != nil {
			return err
		}

		sel := view.Default(ds)
		sel.Year = cfg.View.DefaultYear
		_, err = tui.Run(ds, sel)
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
