package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fallencrown/crown-cli/internal/admin"
	"github.com/fallencrown/crown-cli/internal/client"
	"github.com/fallencrown/crown-cli/internal/clock"
	"github.com/fallencrown/crown-cli/internal/model"
	"github.com/fallencrown/crown-cli/internal/storage"
	"github.com/fallencrown/crown-cli/internal/storage/file"
	"github.com/fallencrown/crown-cli/internal/store"
)

// app bundles the wired client, stores and output for the command handlers
type app struct {
	cfg     *Config
	logger  *slog.Logger
	api     *client.Client
	storage storage.Storage
	clock   clock.Clock

	auth       *store.Auth
	players    *store.Player
	farm       *store.Farm
	onboarding *store.Onboarding
	inventory  *store.Inventory
	shop       *store.Shop
	admin      *admin.Service

	out *Output
}

var a *app

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "crown",
		Short: "CLI client for the Fallen Crown game API",
		Long: `crown is a terminal client for the Fallen Crown farming RPG.

It talks to the game's JSON API: hero accounts, the player dashboard,
the farm, inventory, the shop, onboarding and the admin content editor.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "API endpoint (env: CROWN_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory for session and settings (env: CROWN_DATA_DIR)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging")

	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newDailyCmd())
	rootCmd.AddCommand(newQuestCmd())
	rootCmd.AddCommand(newFarmCmd())
	rootCmd.AddCommand(newInventoryCmd())
	rootCmd.AddCommand(newShopCmd())
	rootCmd.AddCommand(newOnboardingCmd())
	rootCmd.AddCommand(newAdminCmd())
	rootCmd.AddCommand(newThemeCmd())

	return rootCmd
}

// initApp wires the client, stores and output. Every store receives the same
// injected client; the auth store is the only writer of its token.
func initApp(cfg *Config) error {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	api, err := client.New(cfg.ServerURL, client.WithLogger(logger))
	if err != nil {
		return err
	}

	st := file.New(cfg.DataDir)
	players := store.NewPlayer(api, logger)

	a = &app{
		cfg:        cfg,
		logger:     logger,
		api:        api,
		storage:    st,
		clock:      clock.New(),
		auth:       store.NewAuth(api, st, players, logger),
		players:    players,
		farm:       store.NewFarm(api, logger),
		onboarding: store.NewOnboarding(api, logger),
		inventory:  store.NewInventory(api, logger),
		shop:       store.NewShop(api, logger),
		admin:      admin.New(api, logger),
	}
	a.out = NewOutput(cfg.Output, a.loadTheme(), a.clock.Now)

	// Restore a persisted session; silently stays unauthenticated otherwise
	a.auth.Hydrate()
	return nil
}

// loadTheme reads the persisted theme key, defaulting to dark
func (a *app) loadTheme() string {
	data, ok, err := a.storage.Load(storage.KeyTheme)
	if err != nil || !ok {
		return ThemeDark
	}
	theme := string(data)
	if theme != ThemeLight && theme != ThemeDark {
		return ThemeDark
	}
	return theme
}

// requirePlayer returns the player id of the authenticated session
func (a *app) requirePlayer() (int, error) {
	session := a.auth.Session()
	if !session.Valid() {
		return 0, fmt.Errorf("%w, run 'crown login' first", model.ErrNoSession)
	}
	if session.Player != nil {
		return session.Player.PlayerID, nil
	}
	if session.User.PlayerID != nil {
		return *session.User.PlayerID, nil
	}
	return 0, model.ErrPlayerNotSet
}

// Execute runs the root command
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if a != nil && a.out != nil {
			a.out.PrintError(err)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
