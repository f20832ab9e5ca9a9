package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/meetsum-backend/internal/app"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
			return nil
		},
	}
}
