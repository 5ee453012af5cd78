package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/handiism/gamevault/internal/form"
	"github.com/spf13/cobra"
)

func newContactCmd(global *globalFlags) *cobra.Command {
	var (
		msg         form.Contact
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message through the simulated contact form",
		Long: `Validate a contact message and simulate sending it.

Nothing leaves the machine: sending waits for the configured delay
(contact_send_delay) and then reports success.`,
		Example: `  gamevault contact --name Ana --email ana@example.com \
    --subject "Problema de descarga" --message "La descarga se detiene al 50%."
  gamevault contact -i`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if err := contactForm(&msg).RunWithContext(cmd.Context()); err != nil {
					return err
				}
			}

			ctx, c, err := global.container(cmd)
			if err != nil {
				return err
			}

			submission := c.App.Contact()
			submission.SetDraft(msg)

			start := time.Now()
			errs, err := submission.Submit(ctx, c.Sender)
			if err != nil {
				return fmt.Errorf("failed to send message: %w", err)
			}
			if !errs.OK() {
				return printFieldErrors(cmd.ErrOrStderr(), errs)
			}
			c.Logger.InfoContext(ctx, "contact message sent", "duration", time.Since(start))
			fmt.Fprintln(cmd.OutOrStdout(), "¡Mensaje enviado! Te responderemos pronto.")
			return nil
		},
	}

	cmd.Flags().StringVar(&msg.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&msg.Email, "email", "", "Reply address")
	cmd.Flags().StringVar(&msg.Subject, "subject", "", "Subject")
	cmd.Flags().StringVar(&msg.Message, "message", "", "Message body")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the fields")

	return cmd
}

func contactForm(c *form.Contact) *huh.Form {
	check := func(field string) func(string) error {
		return fieldValidator(field, func(v string) form.Errors {
			draft := form.Contact{}
			switch field {
			case form.FieldName:
				draft.Name = v
			case form.FieldEmail:
				draft.Email = v
			case form.FieldSubject:
				draft.Subject = v
			case form.FieldMessage:
				draft.Message = v
			}
			return draft.Validate()
		})
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Nombre").Value(&c.Name).Validate(check(form.FieldName)),
			huh.NewInput().Title("Email").Placeholder("tu@email.com").Value(&c.Email).Validate(check(form.FieldEmail)),
			huh.NewInput().Title("Asunto").Value(&c.Subject).Validate(check(form.FieldSubject)),
			huh.NewText().Title("Mensaje").Lines(5).Value(&c.Message).Validate(check(form.FieldMessage)),
		),
	)
}
