package cli

import (
	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the player dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}
			a.players.SetPlayerID(playerID)

			dashboard, err := a.players.FetchDashboard(cmd.Context())
			if err != nil {
				return err
			}

			// First-time players are routed to onboarding before anything else
			if state, err := a.onboarding.Fetch(cmd.Context(), playerID); err == nil && state != nil && !state.Completed {
				a.out.PrintMessage("Your journey is just beginning. Run 'crown onboarding show'.")
			}

			a.out.Print(dashboard)
			return nil
		},
	}
}

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Daily reward commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "claim",
		Short: "Claim the daily reward",
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}
			a.players.SetPlayerID(playerID)

			if err := a.players.ClaimDaily(cmd.Context()); err != nil {
				return err
			}

			a.out.PrintMessage("Daily reward claimed.")
			a.out.Print(a.players.Dashboard())
			return nil
		},
	})

	return cmd
}

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Quest commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "choose <choice-id>",
		Short: "Pick a choice on the current quest node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := a.requirePlayer()
			if err != nil {
				return err
			}
			a.players.SetPlayerID(playerID)

			if err := a.players.Choose(cmd.Context(), args[0]); err != nil {
				return err
			}

			a.out.Print(a.players.Dashboard())
			return nil
		},
	})

	return cmd
}
