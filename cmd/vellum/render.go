package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vellum-dev/vellum/internal/gallery"
	"github.com/vellum-dev/vellum/pkg/render"
)

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [page]",
		Short: "Render gallery pages to stdout or a directory",
		Long: `Render one gallery page (or all of them) as complete HTML
documents. Without --out, a single page goes to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}

			renderCfg, err := renderConfigByName(getString("render", "render.preset", "compact"))
			if err != nil {
				return err
			}
			outDir := getString("out", "render.out", "")

			pages := gallery.Pages()
			if len(args) == 1 {
				page, ok := gallery.ByName(args[0])
				if !ok {
					return fmt.Errorf("unknown page %q (want one of: %s)", args[0], pageNames())
				}
				pages = []gallery.Page{page}
			}

			if outDir == "" {
				if len(pages) > 1 {
					return fmt.Errorf("rendering all pages needs --out")
				}
				out, err := render.New(renderCfg).RenderDocumentString(pages[0].Doc())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}
			r := render.New(renderCfg)
			for _, page := range pages {
				path := filepath.Join(outDir, page.OutputKey())
				if err := os.WriteFile(path, r.RenderDocument(page.Doc()), 0644); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("wrote"), path)
			}
			return nil
		},
	}

	cmd.Flags().String("render", "", "Render preset: compact|pretty|email|optimized")
	cmd.Flags().String("out", "", "Output directory (default: stdout for a single page)")

	return cmd
}

func pageNames() string {
	names := ""
	for i, p := range gallery.Pages() {
		if i > 0 {
			names += ", "
		}
		names += p.Name
	}
	return names
}
