package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/paygap/internal/config"
	"github.com/sells-group/paygap/internal/render"
	"github.com/sells-group/paygap/internal/view"
)

var companiesYear int

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List company names in sorted order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context(), config.ModeCLI)
		if err != nil {
			return err
		}

		names := view.Companies(ds)
		if companiesYear != 0 {
			names = ds.CompaniesForYear(companiesYear)
		}
		return render.Companies(cmd.OutOrStdout(), names)
	},
}

func init() {
	companiesCmd.Flags().IntVar(&companiesYear, "year", 0, "only companies that reported in this year")
	rootCmd.AddCommand(companiesCmd)
}
