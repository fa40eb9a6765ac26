package cli

import (
	"github.com/spf13/cobra"
)

func newOnboardingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboarding",
		Short: "First-time-user flow commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the welcome steps and current quest",
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}

			state, err := a.onboarding.Fetch(cmd.Context(), playerID)
			if err != nil {
				return err
			}
			if state == nil {
				return nil
			}

			a.out.Print(state)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "complete",
		Short: "Mark onboarding as finished",
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}

			state, err := a.onboarding.Complete(cmd.Context(), playerID)
			if err != nil {
				return err
			}

			a.out.PrintMessage("Onboarding complete. Good luck out there.")
			a.out.Print(state)
			return nil
		},
	})

	return cmd
}
