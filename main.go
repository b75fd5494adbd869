package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/johnretsas/portfolio/internal/blog"
	"github.com/johnretsas/portfolio/internal/config"
	"github.com/johnretsas/portfolio/internal/export"
	"github.com/johnretsas/portfolio/internal/render"
	"github.com/johnretsas/portfolio/internal/site"
	"github.com/johnretsas/portfolio/internal/tui"
	"github.com/johnretsas/portfolio/internal/views"
	"github.com/johnretsas/portfolio/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal site: about page and blog",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the site config file")

	load := func() (*config.Config, error) {
		return config.Load(configPath)
	}
	root.AddCommand(
		newServeCmd(load),
		newDevCmd(load),
		newExportCmd(load),
		newBrowseCmd(load),
	)
	return root
}

type loader func() (*config.Config, error)

func newServeCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, false)
		},
	}
}

func newDevCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "dev",
		Short: "Serve templates and assets from disk and reload pages on change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, true)
		},
	}
}

func newExportCmd(load loader) *cobra.Command {
	var (
		out   string
		clean bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Pre-render every page into a directory for a static host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if out != "" {
				cfg.Export.OutDir = out
			}

			templates, err := render.New(web.Templates(), nil, web.TemplatePattern)
			if err != nil {
				return err
			}
			catalog := blog.Default()
			res, err := export.Run(cmd.Context(), catalog, views.NewBuilder(catalog, views.OptionsFrom(cfg)), templates, export.Options{
				OutDir:        cfg.Export.OutDir,
				TrailingSlash: cfg.Site.TrailingSlash,
				Static:        web.Static(),
				Clean:         clean,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), export.Report(res))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (overrides export.out_dir)")
	cmd.Flags().BoolVar(&clean, "clean", false, "remove the output directory first")
	return cmd
}

func newBrowseCmd(load loader) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Read the site in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return tui.Run(tui.Options{
				Catalog:         blog.Default(),
				Start:           start,
				UnknownPost:     cfg.Blog.UnknownPost,
				ScrollThreshold: cfg.Blog.ScrollThreshold,
			})
		},
	}
	cmd.Flags().StringVar(&start, "path", site.HomePath, "page to open first, e.g. /blog/going-to-mars")
	return cmd
}
