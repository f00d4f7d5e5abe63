package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patkim97/folio/pkg/logger"
	"github.com/patkim97/folio/pkg/submission"
)

// send: fill in the contact form and submit it once.
func sendCmd() *cobra.Command {
	var name, email, subject, message string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a contact message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if serverURL == "" {
				return errors.New("no server configured. use --server")
			}
			ctx := cmd.Context()

			resolver, err := newResolver(ctx)
			if err != nil {
				return err
			}
			defer resolver.Close()
			if _, err := settle(ctx, resolver); err != nil {
				return err
			}

			transport, err := submission.NewHTTPTransport(serverURL)
			if err != nil {
				return err
			}
			form, err := submission.New(ctx, transport,
				submission.WithLocale(resolver.Current),
				submission.WithLogger(log),
				submission.WithListener(func(from, to submission.State) {
					log.Debug("form state changed", logger.Component("submission"),
						"from", string(from), "to", string(to))
				}),
			)
			if err != nil {
				return err
			}

			for field, value := range map[submission.Field]string{
				submission.FieldName:    name,
				submission.FieldEmail:   email,
				submission.FieldSubject: subject,
				submission.FieldMessage: message,
			} {
				if err := form.SetField(field, value); err != nil {
					return err
				}
			}

			out, err := form.Submit(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&email, "email", "", "reply-to address")
	cmd.Flags().StringVar(&subject, "subject", "", "subject line")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message body")
	return cmd
}
