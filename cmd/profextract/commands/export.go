package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/profextract/internal/export"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export extracted candidate fields",
	}

	cmd.AddCommand(newExportCSVCmd())
	return cmd
}

func newExportCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Convert extracted candidate fields to CSV",
		Long: `Read a JSON array of candidate records with the keys name, email, phone,
linkedin_url and github_url, and write them as CSV with the header
Name,Email,Phone,LinkedIn,GitHub. Missing keys become empty cells.

Examples:
  profextract export csv
  profextract export csv --input fields.json --output -`,
		Args: cobra.NoArgs,
		RunE: runExportCSV,
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", export.DefaultInput, "candidate fields JSON file")
	flags.StringP("output", "o", export.DefaultOutput, "CSV file to write (- for stdout)")

	return cmd
}

func runExportCSV(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	outPath, _ := cmd.Flags().GetString("output")

	_, err := export.CSVFile(input, outPath, cmd.OutOrStdout())
	return err
}
