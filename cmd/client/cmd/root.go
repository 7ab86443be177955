package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"vaultkeeper/cmd/client/cmd/cli"
	"vaultkeeper/cmd/client/cmd/document"
	"vaultkeeper/cmd/client/cmd/entity"
	"vaultkeeper/cmd/client/cmd/index"
	"vaultkeeper/cmd/client/cmd/record"
	"vaultkeeper/cmd/client/cmd/types"
	"vaultkeeper/internal/app/core"
	"vaultkeeper/internal/config"
	"vaultkeeper/internal/infrastructure/storage/driver"
	"vaultkeeper/internal/utils/logger"
)

type rootFlags struct {
	cfgFile       string
	debug         bool
	jsonOutput    bool
	askPassphrase bool
}

// NewRootCmd builds the command tree. Each call returns a fresh tree with its
// own flag state.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var vault *core.Core

	rootCmd := &cobra.Command{
		Use:   "vaultkeeper",
		Short: "Vaultkeeper keeps a family's personal records",
		Long: `Vaultkeeper stores identity, medical, travel, pet and household records
for each family member, normalizes them to their record type and tracks which
records attach which documents.

Storage is configured through the environment (STORAGE_DRIVER, SQLITE_PATH,
VAULT_PASSPHRASE, ...) or a YAML file passed with --config.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := openVault(cmd, flags)
			if err != nil {
				return err
			}
			vault = v
			cmd.SetContext(cli.WithEnv(cmd.Context(), &cli.Env{
				Vault: v,
				JSON:  flags.jsonOutput,
				Out:   cmd.OutOrStdout(),
			}))
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if vault == nil {
				return nil
			}
			return vault.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "log to stderr")
	rootCmd.PersistentFlags().BoolVar(&flags.jsonOutput, "json", false, "print JSON")
	rootCmd.PersistentFlags().BoolVar(&flags.askPassphrase, "ask-passphrase", false, "prompt for the vault passphrase")

	rootCmd.AddCommand(
		types.NewCmd(),
		record.NewCmd(),
		document.NewCmd(),
		entity.NewCmd(),
		index.NewCmd(),
	)
	return rootCmd
}

func Execute() {
	color.NoColor = color.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openVault(cmd *cobra.Command, flags *rootFlags) (*core.Core, error) {
	cfg, err := config.Load(flags.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if flags.askPassphrase {
		passphrase, err := readPassphrase(cmd)
		if err != nil {
			return nil, err
		}
		cfg.Storage.Passphrase = passphrase
	}

	log := logger.Discard()
	if flags.debug {
		log = logger.New(cfg.Env)
	}
	slog.SetDefault(log)

	store, err := driver.Open(cmd.Context(), cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	vault := core.New(store, log, core.WithStrictToggles(cfg.StrictToggles))
	if err := vault.Start(cmd.Context()); err != nil {
		vault.Close()
		return nil, err
	}
	return vault, nil
}

func readPassphrase(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("--ask-passphrase needs an interactive terminal")
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Vault passphrase: ")
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return string(pw), nil
}
