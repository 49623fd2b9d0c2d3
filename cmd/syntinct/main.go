package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"syntinct/internal/config"
	"syntinct/internal/debug"
	"syntinct/internal/neovim"
	"syntinct/internal/theme"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		debug.Close()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "syntinct",
		Short: "Generate Neovim colorschemes from semantic themes",
		Long: "syntinct resolves a semantic color theme into a complete Neovim highlight\n" +
			"table and emits it as a Lua colorscheme module.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initRuntime,
		PersistentPostRun: func(*cobra.Command, []string) {
			debug.Close()
		},
	}

	root.PersistentFlags().StringP("theme", "t", theme.DefaultName, "Theme to use (see `syntinct list`)")
	root.PersistentFlags().Bool("debug", false, "Write a debug log to ~/.syntinct/debug.log")

	root.AddCommand(
		generateCmd(),
		buildCmd(),
		listCmd(),
		describeCmd(),
		exportCmd(),
		browseCmd(),
		checkCmd(),
		versionCmd(),
	)
	return root
}

// initRuntime loads configuration and lets explicitly set global flags
// override it.
func initRuntime(cmd *cobra.Command, _ []string) error {
	if err := config.Initialize(); err != nil {
		return err
	}
	if err := applyFlagOverrides(cmd, map[string]string{
		"theme": config.KeyTheme,
		"debug": config.KeyDebug,
	}); err != nil {
		return err
	}
	if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
		return fmt.Errorf("initialize debug log: %w", err)
	}
	debug.Logf("command %s theme=%s", cmd.CommandPath(), config.GetString(config.KeyTheme))
	return nil
}

// applyFlagOverrides copies flags the user actually set into the
// configuration, keyed by flag name. Flags left at their defaults never
// mask values from config files or the environment.
func applyFlagOverrides(cmd *cobra.Command, keys map[string]string) error {
	overrides := map[string]any{}
	for name, key := range keys {
		if !flagWasExplicitlySet(cmd, name) {
			continue
		}
		f := cmd.Flags().Lookup(name)
		switch f.Value.Type() {
		case "bool":
			v, err := cmd.Flags().GetBool(name)
			if err != nil {
				return err
			}
			overrides[key] = v
		default:
			overrides[key] = strings.TrimSpace(f.Value.String())
		}
	}
	return config.ApplyOverrides(overrides)
}

func flagWasExplicitlySet(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		return false
	}
	return f.Changed
}

// currentTheme returns the configured theme name and its resolved table.
func currentTheme() (string, *neovim.Theme, error) {
	name := strings.TrimSpace(config.GetString(config.KeyTheme))
	if name == "" {
		name = theme.DefaultName
	}
	return resolve(name)
}

func resolve(name string) (string, *neovim.Theme, error) {
	base, err := theme.Lookup(name)
	if err != nil {
		return "", nil, err
	}
	return name, neovim.New(base), nil
}
