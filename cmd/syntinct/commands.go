package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"syntinct/internal/config"
	"syntinct/internal/neovim"
	"syntinct/internal/preview"
	"syntinct/internal/report"
	"syntinct/internal/theme"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current := config.GetString(config.KeyTheme)
			for _, name := range theme.Available() {
				marker := " "
				if name == current {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}

func describeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Show a theme's resolved roles",
		Long: "Print a summary of the selected theme: group counts and the color of\n" +
			"every category, token and diagnostic level.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyFlagOverrides(cmd, map[string]string{
				"format": config.KeyDescribeFormat,
			}); err != nil {
				return err
			}
			name, nt, err := currentTheme()
			if err != nil {
				return err
			}
			base, err := theme.Lookup(name)
			if err != nil {
				return err
			}
			width, _ := cmd.Flags().GetInt("width")
			render := report.Renderer(config.GetString(config.KeyDescribeFormat), width)
			_, err = fmt.Fprint(cmd.OutOrStdout(), render(report.Markdown(name, base, nt)))
			return err
		},
	}
	cmd.Flags().String("format", "", "Markdown style: rich, light, dark or plain")
	cmd.Flags().Int("width", report.DefaultWidth, "Wrap width")
	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the highlight table as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyFlagOverrides(cmd, map[string]string{
				"format": config.KeyExportFormat,
			}); err != nil {
				return err
			}
			_, nt, err := currentTheme()
			if err != nil {
				return err
			}
			return neovim.WriteRecords(cmd.OutOrStdout(), nt.Records(), config.GetString(config.KeyExportFormat))
		},
	}
	cmd.Flags().String("format", "", "Output format: json or yaml")
	return cmd
}

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Preview themes interactively",
		Long:  "Open a terminal browser over every theme. Tab cycles themes and s saves the current one as the default.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return preview.Browse(config.GetString(config.KeyTheme))
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [theme...]",
		Short: "Validate that themes resolve to a closed, acyclic table",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = theme.Available()
			}
			var errs []error
			for _, name := range names {
				_, nt, err := resolve(name)
				if err == nil {
					err = nt.Validate()
				}
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", name, err)
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", name)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d of %d themes failed: %w", len(errs), len(names), errors.Join(errs...))
			}
			return nil
		},
	}
}
