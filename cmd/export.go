package main

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/paygap/internal/config"
	"github.com/sells-group/paygap/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the full dataset as csv, json, yaml or xlsx",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		ds, err := loadDataset(cmd.Context(), config.ModeCLI)
		if err != nil {
			return err
		}

		if exportOut == "" || exportOut == "-" {
			return export.Write(cmd.OutOrStdout(), ds, format)
		}

		if err := writeFile(exportOut, func(w io.Writer) error {
			return export.Write(w, ds, format)
		}); err != nil {
			return err
		}
		zap.L().Info("dataset exported",
			zap.String("format", string(format)),
			zap.String("path", exportOut),
			zap.Int("records", ds.Len()),
		)
		return nil
	},
}

// createFile opens an export destination.
var createFile = func(path string) (io.WriteCloser, error) { return os.Create(path) }

// writeFile creates path, runs write against it and closes it. Close errors
// are returned.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := createFile(path)
	if err != nil {
		return eris.Wrap(err, "export: create output file")
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return eris.Wrapf(f.Close(), "export: close %s", path)
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv, json, yaml or xlsx")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
