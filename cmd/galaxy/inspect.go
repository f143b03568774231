package main

import (
	"fmt"

	"cogentcore.org/lab/base/randx"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-galaxy/constellation"
	"github.com/lixenwraith/vi-galaxy/gfx"
	"github.com/lixenwraith/vi-galaxy/layout"
	"github.com/lixenwraith/vi-galaxy/site"
)

func layoutCmd() *cobra.Command {
	var sitesPath string
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print node positions and constellation edges without opening the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if sitesPath == "" {
				sitesPath = cfg.Catalog
			}
			cat, err := site.Load(sitesPath)
			if err != nil {
				return err
			}

			arena := gfx.NewArena()
			defer arena.Release()

			nodes, err := layout.Build(arena, cat.Sites, cfg.Scene.Node, randx.NewSysRand(cfg.Scene.Seed))
			if err != nil {
				bad.Printf("galaxy: %v\n", err)
				return err
			}
			cons := constellation.Build(arena, nodes.Positions(), cfg.Scene.Constellation)

			fmt.Println(brand.Sprintf("%d nodes", nodes.Len()))
			rows := make([][]string, 0, nodes.Len())
			nodes.Each(func(v *layout.Visual) {
				p := v.Origin
				rows = append(rows, []string{
					fmt.Sprint(v.Index), v.Site.ID, v.Site.Name,
					fmt.Sprintf("%7.2f %7.2f %7.2f", p.X, p.Y, p.Z),
					fmt.Sprintf("%.2f", p.Length()),
				})
			})
			table([]string{"#", "ID", "NAME", "POSITION", "RADIUS"}, rows)

			fmt.Println()
			fmt.Println(brand.Sprintf("%d edges", len(cons.Curves)))
			visuals := nodes.Visuals.Values
			edgeRows := make([][]string, 0, len(cons.Curves))
			for _, c := range cons.Curves {
				a, b := visuals[c.From], visuals[c.To]
				edgeRows = append(edgeRows, []string{
					a.Site.Name + " → " + b.Site.Name,
					fmt.Sprintf("%.2f", a.Origin.DistanceTo(b.Origin)),
					fmt.Sprintf("%.2f", c.Control.Sub(a.Origin.Add(b.Origin).MulScalar(0.5)).Length()),
				})
			}
			table([]string{"EDGE", "LENGTH", "ARCH"}, edgeRows)
			return nil
		},
	}
	cmd.Flags().StringVar(&sitesPath, "sites", "", "Catalog file or database (default: config catalog)")
	return cmd
}
