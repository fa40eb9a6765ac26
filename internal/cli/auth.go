package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fallencrown/crown-cli/internal/model"
)

func newRegisterCmd() *cobra.Command {
	var login, password, heroName string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new hero account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.RegisterRequest{
				Login:    login,
				Password: password,
				HeroName: heroName,
			}
			session, err := a.auth.Register(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("%s", a.auth.Error())
			}

			a.out.PrintMessage("Welcome to the Vale, " + heroName + "!")
			a.out.Print(session)
			return nil
		},
	}

	cmd.Flags().StringVar(&login, "login", "", "Account login (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&heroName, "hero-name", "", "Hero display name (required)")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("hero-name")

	return cmd
}

func newLoginCmd() *cobra.Command {
	var login, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.LoginRequest{Login: login, Password: password}
			session, err := a.auth.Login(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("%s", a.auth.Error())
			}

			a.out.Print(session)
			return nil
		},
	}

	cmd.Flags().StringVar(&login, "login", "", "Account login (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.auth.Logout(); err != nil {
				return err
			}
			a.out.PrintMessage("Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.out.Print(a.auth.Session())
			return nil
		},
	}
}
