package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fallencrown/crown-cli/internal/storage"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or set the UI theme",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(a.loadTheme())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <light|dark>",
		Short: "Set and persist the theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := args[0]
			if theme != ThemeLight && theme != ThemeDark {
				return fmt.Errorf("theme must be %q or %q", ThemeLight, ThemeDark)
			}

			if err := a.storage.Save(storage.KeyTheme, []byte(theme)); err != nil {
				return err
			}

			a.out = NewOutput(a.cfg.Output, theme, a.clock.Now)
			a.out.PrintMessage("Theme set to " + theme + ".")
			return nil
		},
	})

	return cmd
}
