package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/paygap/internal/config"
	"github.com/sells-group/paygap/internal/render"
)

var cfg *config.Config

// sourceOverride replaces source.url for a single invocation.
var sourceOverride string

var rootCmd = &cobra.Command{
	Use:   "paygap",
	Short: "Explore Irish gender pay gap disclosures",
	Long:  "Loads the published Irish gender pay gap disclosures and presents them per company and year as a web dashboard, terminal report, interactive explorer or data export.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if sourceOverride != "" {
			c.Source.URL = sourceOverride
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceOverride, "source", "", "dataset URL or path (default from config)")
}

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code. Errors
// are printed once, in the error style.
func run() int {
	if err := rootCmd.Execute(); err != nil {
		render.Error(rootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}
