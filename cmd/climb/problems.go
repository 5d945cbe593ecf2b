package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/climb/config"
	"github.com/katalvlaran/climb/onemax"
	"github.com/katalvlaran/climb/phrase"
)

func newPhraseCmd(a *app) *cobra.Command {
	var genesFlag string

	cmd := &cobra.Command{
		Use:   "phrase [target]",
		Short: "Reconstruct a target string one character at a time",
		Long: `Climbs from a random string toward the target. Fitness is the fraction of
positions that already hold the target character.

The target defaults to phrase.target from the config ("Hello, world!").`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := a.cfg.Phrase.Target
			if len(args) == 1 {
				target = args[0]
			}
			genes := a.cfg.Phrase.Genes
			if cmd.Flags().Changed("genes") {
				genes = genesFlag
			}

			var opts []phrase.Option
			if genes != "" {
				opts = append(opts, phrase.WithGenes(genes))
			}
			g, err := phrase.New(target, opts...)
			if err != nil {
				return err
			}

			return runSearch[phrase.Phrase](cmd, a, "phrase", g)
		},
	}
	cmd.Flags().StringVar(&genesFlag, "genes", "", "alphabet to draw characters from")

	return cmd
}

func newOneMaxCmd(a *app) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "onemax",
		Short: "Maximize the number of set bits in a bit vector",
		Long: `Climbs from a random bit vector toward all ones by flipping one bit per step.

The size defaults to onemax.size from the config (10000).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.OneMax.Size
			if cmd.Flags().Changed("size") {
				n = size
			}
			m, err := onemax.New(n)
			if err != nil {
				return err
			}

			return runSearch[onemax.Bits](cmd, a, "onemax", m)
		},
	}
	cmd.Flags().IntVar(&size, "size", config.DefaultConfig().OneMax.Size, "bit vector length (overrides onemax.size)")

	return cmd
}
