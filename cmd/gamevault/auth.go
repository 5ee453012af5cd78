package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/handiism/gamevault/internal/form"
	"github.com/handiism/gamevault/internal/model"
	"github.com/spf13/cobra"
)

// errInvalidForm is returned after field errors have been printed.
var errInvalidForm = errors.New("form has invalid fields")

func newLoginCmd(global *globalFlags) *cobra.Command {
	var (
		login       form.Login
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Simulate signing in",
		Long: `Validate login credentials and print the resulting mock session.

No credentials are checked against anything: any well-formed email with a
password of at least 6 characters signs in. The session username is the
email's local part.`,
		Example: `  gamevault login --email ana@example.com --password secret1
  gamevault login -i`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if err := loginForm(&login).RunWithContext(cmd.Context()); err != nil {
					return err
				}
			}

			_, c, err := global.container(cmd)
			if err != nil {
				return err
			}

			app := c.App
			app.OpenLogin()
			if !app.SubmitLogin(login) {
				return printFieldErrors(cmd.ErrOrStderr(), app.AuthErrors())
			}
			session, _ := app.Session()
			printSession(cmd.OutOrStdout(), session, "Signed in")
			return nil
		},
	}

	cmd.Flags().StringVar(&login.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&login.Password, "password", "", "Password")
	cmd.Flags().BoolVar(&login.Remember, "remember", false, "Remember me")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the fields")

	return cmd
}

func newRegisterCmd(global *globalFlags) *cobra.Command {
	var (
		reg         form.Register
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Simulate creating an account",
		Long: `Validate a registration and print the resulting mock session.

Usernames need at least 3 characters, passwords at least 6, the
confirmation must match the password and the terms must be accepted.`,
		Example: `  gamevault register --username ana --email ana@example.com \
    --password secret1 --confirm-password secret1 --accept-terms
  gamevault register -i`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if err := registerForm(&reg).RunWithContext(cmd.Context()); err != nil {
					return err
				}
			}

			_, c, err := global.container(cmd)
			if err != nil {
				return err
			}

			app := c.App
			app.OpenRegister()
			if !app.SubmitRegister(reg) {
				return printFieldErrors(cmd.ErrOrStderr(), app.AuthErrors())
			}
			session, _ := app.Session()
			printSession(cmd.OutOrStdout(), session, "Registered")
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.Username, "username", "", "Username")
	cmd.Flags().StringVar(&reg.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Password")
	cmd.Flags().StringVar(&reg.ConfirmPassword, "confirm-password", "", "Password again")
	cmd.Flags().BoolVar(&reg.AcceptTerms, "accept-terms", false, "Accept the terms and conditions")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the fields")

	return cmd
}

// fieldValidator adapts a form validator to a single huh field so the
// prompt shows the same message the core would return. validate receives
// the field's current input.
func fieldValidator(field string, validate func(string) form.Errors) func(string) error {
	return func(v string) error {
		if msg := validate(v).Get(field); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

func validateEmail(v string) form.Errors { return form.Login{Email: v}.Validate() }

func validatePassword(v string) form.Errors { return form.Login{Password: v}.Validate() }

func loginForm(l *form.Login) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("tu@email.com").
				Value(&l.Email).
				Validate(fieldValidator(form.FieldEmail, validateEmail)),
			huh.NewInput().
				Title("Contraseña").
				EchoMode(huh.EchoModePassword).
				Value(&l.Password).
				Validate(fieldValidator(form.FieldPassword, validatePassword)),
			huh.NewConfirm().
				Title("Recordarme").
				Value(&l.Remember),
		),
	)
}

func registerForm(r *form.Register) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nombre de usuario").
				Value(&r.Username).
				Validate(fieldValidator(form.FieldUsername, func(v string) form.Errors {
					return form.Register{Username: v}.Validate()
				})),
			huh.NewInput().
				Title("Email").
				Placeholder("tu@email.com").
				Value(&r.Email).
				Validate(fieldValidator(form.FieldEmail, validateEmail)),
			huh.NewInput().
				Title("Contraseña").
				EchoMode(huh.EchoModePassword).
				Value(&r.Password).
				Validate(fieldValidator(form.FieldPassword, validatePassword)),
			huh.NewInput().
				Title("Confirmar contraseña").
				EchoMode(huh.EchoModePassword).
				Value(&r.ConfirmPassword).
				Validate(fieldValidator(form.FieldConfirmPassword, func(v string) form.Errors {
					return form.Register{Password: r.Password, ConfirmPassword: v}.Validate()
				})),
			huh.NewConfirm().
				Title("Acepto los términos y condiciones").
				Value(&r.AcceptTerms),
		),
	)
}

func printSession(w io.Writer, s model.Session, verb string) {
	fmt.Fprintf(w, "%s as %s <%s>\n", verb, s.Username, s.Email)
	fmt.Fprintf(w, "Session: %s\n", s.ID)
}

func printFieldErrors(w io.Writer, errs form.Errors) error {
	for _, field := range errs.Fields() {
		fmt.Fprintf(w, "  %s: %s\n", field, errs.Get(field))
	}
	return errInvalidForm
}
