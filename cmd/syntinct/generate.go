package main

import (
	"github.com/spf13/cobra"

	"syntinct/internal/config"
	"syntinct/internal/debug"
	"syntinct/internal/neovim"
	"syntinct/internal/output"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit the Lua colorscheme for one theme",
		Long: "Resolve the selected theme and write the Lua module to stdout, or to\n" +
			"--output. Files are replaced atomically.",
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().Bool("clipboard", false, "Also copy the module to the clipboard")
	cmd.Flags().String("support", "", "Lua support block to append (default: built in)")
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if err := applyFlagOverrides(cmd, map[string]string{
		"output":    config.KeyOutputPath,
		"clipboard": config.KeyOutputClipboard,
		"support":   config.KeySupportPath,
	}); err != nil {
		return err
	}

	name, nt, err := currentTheme()
	if err != nil {
		return err
	}
	support, err := neovim.LoadSupport(config.GetString(config.KeySupportPath))
	if err != nil {
		return err
	}

	target := output.Target{
		Path:      config.GetString(config.KeyOutputPath),
		Clipboard: config.GetBool(config.KeyOutputClipboard),
		Stdout:    cmd.OutOrStdout(),
	}
	log := debug.Component("generate")
	log.Debug().Str("theme", name).Str("path", target.Path).Bool("clipboard", target.Clipboard).Msg("generating")

	return target.Deliver(nt.Lua(support))
}
