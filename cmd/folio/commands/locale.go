package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// locale: print the locale a fresh view would settle on.
func localeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locale",
		Short: "Resolve the display locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			resolver, err := newResolver(ctx)
			if err != nil {
				return err
			}
			defer resolver.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "initial: %s (%s)\n", resolver.Current(), resolver.Source())

			out, err := settle(ctx, resolver)
			if err != nil {
				return err
			}

			if out.Lookup.Country != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "country: %s\n", out.Lookup.Country)
			}
			locale := resolver.Current()
			fmt.Fprintf(cmd.OutOrStdout(), "locale:  %s (%s)\nlang:    %s\n", locale, resolver.Source(), locale.HTMLLang())
			return nil
		},
	}
}
