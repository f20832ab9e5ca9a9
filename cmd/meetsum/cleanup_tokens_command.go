package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/meetsum-backend/internal/app"
)

func newCleanupTokensCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-tokens",
		Short: "Delete expired and revoked refresh tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd.Context(), func(a *app.App) error {
				n, err := a.Auth.CleanupExpiredTokens(cmd.Context())
				if err != nil {
					return fmt.Errorf("cleanup tokens: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d expired/revoked refresh tokens.\n", n)
				return nil
			})
		},
	}
}
