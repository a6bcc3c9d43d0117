package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/profextract/internal/version"
	"github.com/jmylchreest/profextract/pkg/profile"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			info := version.Get()

			var err error
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				err = enc.Encode(info)
			} else {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), info.Full())
			}
			if err != nil {
				return fmt.Errorf("%w: %w", profile.ErrOutputWriteFailed, err)
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "print as JSON")
	return cmd
}
