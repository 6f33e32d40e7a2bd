package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"lshsim/internal/lsh"
)

type seedsSnippet struct {
	LSH struct {
		SignatureSize int      `toml:"signature_size"`
		Seeds         []uint64 `toml:"seeds"`
	} `toml:"lsh"`
}

func newSeedsCommand(ctx *commandContext) *cobra.Command {
	var n int
	var randomSeed uint64

	cmd := &cobra.Command{
		Use:   "seeds",
		Short: "Generate a MinHash seed list to pin in the configuration",
		Long: `Print a [lsh] TOML snippet with a generated seed list. Pinning seeds in
the configuration makes signatures comparable across runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				n = cfg.LSH.SignatureSize
			}
			if n <= 0 {
				return &lsh.ConfigError{Field: "count", Err: lsh.ErrNonPositive}
			}

			var snippet seedsSnippet
			snippet.LSH.SignatureSize = n
			snippet.LSH.Seeds = lsh.GenerateSeeds(n, randomSeed).Values()

			data, err := toml.Marshal(snippet)
			if err != nil {
				return fmt.Errorf("encode seeds: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 0, "Number of seeds (default lsh.signature_size)")
	cmd.Flags().Uint64Var(&randomSeed, "random-seed", 0, "Source seed for a reproducible list (0 draws fresh seeds)")
	return cmd
}
