package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between en and kr and remember the choice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			resolver, err := newResolver(ctx)
			if err != nil {
				return err
			}
			defer resolver.Close()

			// Flip what the visitor sees, which may be the geo result.
			if _, err := settle(ctx, resolver); err != nil {
				return err
			}

			locale, err := resolver.Toggle(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "locale: %s\n", locale)
			if err != nil {
				return fmt.Errorf("preference not saved: %w", err)
			}
			return nil
		},
	}
}
