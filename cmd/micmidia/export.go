package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	landing "github.com/micmidia/landing"
)

func newExportCmd(s *settings) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site as static files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := landing.Export(cmd.Context(), afero.NewOsFs(), out, s.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	return cmd
}
