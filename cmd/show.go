package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/paygap/internal/config"
	"github.com/sells-group/paygap/internal/render"
	"github.com/sells-group/paygap/internal/view"
)

var (
	showYear    int
	showCompany string
	showPlain   bool
	showAbout   bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print one company's pay gap report for a year",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context(), config.ModeCLI)
		if err != nil {
			return err
		}

		sel := view.Default(ds)
		sel.Year = cfg.View.DefaultYear
		if showYear != 0 {
			sel.Year = showYear
		}
		if showCompany != "" {
			sel.Company = showCompany
		}
		if err := view.Validate(ds, sel); err != nil {
			return err
		}

		r, err := render.New(render.Options{Plain: showPlain})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showAbout {
			if err := r.Page(out); err != nil {
				return err
			}
		}

		v, ok := view.Select(ds, sel.Year, sel.Company)
		if !ok {
			render.NoMatch(out, sel)
			return nil
		}
		return r.View(out, v)
	},
}

func init() {
	showCmd.Flags().IntVar(&showYear, "year", 0, "report year (default from config)")
	showCmd.Flags().StringVar(&showCompany, "company", "", "company name (default: first company)")
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "print markdown without terminal styling")
	showCmd.Flags().BoolVar(&showAbout, "about", false, "include the About and Data Source sections")
	rootCmd.AddCommand(showCmd)
}
