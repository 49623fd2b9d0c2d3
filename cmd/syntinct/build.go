package main

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"syntinct/internal/config"
	"syntinct/internal/debug"
	"syntinct/internal/neovim"
	"syntinct/internal/output"
	"syntinct/internal/theme"
)

func buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [theme...]",
		Short: "Write one colorscheme file per theme",
		Long: "Render every registered theme (or only the named ones) into\n" +
			"<dir>/<theme>.lua. Themes are rendered concurrently.",
		RunE: runBuild,
	}
	cmd.Flags().String("dir", "", "Output directory (default from config, then \"colors\")")
	cmd.Flags().String("support", "", "Lua support block to append (default: built in)")
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	if err := applyFlagOverrides(cmd, map[string]string{
		"dir":     config.KeyOutputDir,
		"support": config.KeySupportPath,
	}); err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = theme.Available()
	}
	support, err := neovim.LoadSupport(config.GetString(config.KeySupportPath))
	if err != nil {
		return err
	}
	dir := config.GetString(config.KeyOutputDir)
	if dir == "" {
		dir = config.DefaultOutputDir
	}

	written, err := buildThemes(cmd.Context(), dir, names, support)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	return nil
}

// buildThemes renders names concurrently into dir and returns the written
// paths in input order. The first failure cancels the remaining work.
func buildThemes(ctx context.Context, dir string, names []string, support []byte) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	log := debug.Component("build")

	for i, name := range names {
		if slices.Index(names, name) != i {
			return nil, fmt.Errorf("theme %s listed more than once", name)
		}
	}

	paths := make([]string, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, nt, err := resolve(name)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, name+".lua")
			if err := output.WriteFile(path, nt.Lua(support)); err != nil {
				return err
			}
			log.Debug().Str("theme", name).Str("path", path).Msg("built")
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
