package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/prodchain/factorio"
	"github.com/katalvlaran/prodchain/graph"
)

func newResourcesCmd(a *app) *cobra.Command {
	var (
		recipes, mode string
		cyclic        bool
	)
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "List the items no recipe produces (or, with --cyclic, the items on recipe loops)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := factorio.ParseMode(mode)
			if err != nil {
				return err
			}
			techs, err := factorio.Load(recipes, factorio.WithMode(m), factorio.WithLogger(a.logger))
			if err != nil {
				return err
			}
			g := graph.New(techs)
			items := g.Resources()
			if cyclic {
				items = g.Cyclic()
			}
			for _, r := range items {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), r); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&recipes, "recipes", "r", "", "recipe dump (.json or .json.zst)")
	cmd.Flags().StringVar(&mode, "mode", string(factorio.Normal), "normal or expensive")
	cmd.Flags().BoolVar(&cyclic, "cyclic", false, "list items that lie on production cycles")
	_ = cmd.MarkFlagRequired("recipes")
	return cmd
}
