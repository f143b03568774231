package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-galaxy/site"
)

func sitesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sites",
		Short: "Inspect and convert site catalogs",
	}
	cmd.AddCommand(sitesListCmd(), sitesImportCmd(), sitesExportCmd())
	return cmd
}

// catalogSource picks the explicit argument, then the config catalog, then the embedded one
func catalogSource(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Catalog, nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded catalog"
	}
	return path
}

func sitesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [catalog]",
		Short: "List the sites in a catalog (.toml, .yaml, .db)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := catalogSource(args)
			if err != nil {
				return err
			}
			cat, err := site.Load(src)
			if err != nil {
				bad.Printf("galaxy: %v\n", err)
				return err
			}

			fmt.Printf("%s %s\n\n", brand.Sprintf("%d sites", len(cat.Sites)), subtle.Sprintf("from %s", sourceName(src)))
			rows := make([][]string, 0, len(cat.Sites))
			for _, n := range cat.Sites {
				pos := subtle.Sprint("orbit")
				if n.HasPosition {
					pos = fmt.Sprintf("%.1f, %.1f, %.1f", n.Position.X, n.Position.Y, n.Position.Z)
				}
				r, g, b := n.Color.RGB()
				rows = append(rows, []string{swatch(r, g, b) + " " + n.Name, n.ID, n.URL, n.Category, pos})
			}
			table([]string{"NAME", "ID", "URL", "CATEGORY", "POSITION"}, rows)
			return nil
		},
	}
}

func sitesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <source> <db>",
		Short: "Replace the sites in a SQLite catalog with those from a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := site.Load(args[0])
			if err != nil {
				return err
			}
			if !site.IsDB(args[1]) {
				warn.Printf("galaxy: %s has no .db/.sqlite extension, run will not detect it as a database\n", args[1])
			}

			db, err := site.OpenDB(args[1])
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Replace(cat); err != nil {
				bad.Printf("galaxy: import failed: %v\n", err)
				return err
			}
			good.Printf("✓ imported %d sites into %s\n", len(cat.Sites), args[1])
			return nil
		},
	}
}

func sitesExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [catalog]",
		Short: "Write a catalog to stdout in TOML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := catalogSource(args)
			if err != nil {
				return err
			}
			cat, err := site.Load(src)
			if err != nil {
				return err
			}
			return cat.EncodeTOML(cmd.OutOrStdout())
		},
	}
}
