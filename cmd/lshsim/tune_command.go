package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lshsim/internal/lsh"
)

type layoutRow struct {
	NumBands    int     `json:"num_bands"`
	RowsPerBand int     `json:"rows_per_band"`
	Threshold   float64 `json:"threshold"`
	Probability float64 `json:"candidate_probability"`
	Current     bool    `json:"current"`
}

func newTuneCommand(ctx *commandContext) *cobra.Command {
	var signatureSize int
	var similarity float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tune",
		Short: "List band layouts for a signature size",
		Long: `List every band count that evenly divides the signature size with its
rows per band, the approximate similarity threshold (1/b)^(1/r) and the
probability that a pair with the given similarity becomes a candidate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			size := cfg.LSH.SignatureSize
			if cmd.Flags().Changed("signature-size") {
				size = signatureSize
			}
			if size <= 0 {
				return &lsh.ConfigError{Field: "signature-size", Err: lsh.ErrNonPositive}
			}
			if similarity < 0 || similarity > 1 {
				return fmt.Errorf("similarity must be within [0, 1], got %v", similarity)
			}

			layouts := lsh.Layouts(size)
			rows := make([]layoutRow, 0, len(layouts))
			for _, l := range layouts {
				rows = append(rows, layoutRow{
					NumBands:    l.NumBands,
					RowsPerBand: l.RowsPerBand,
					Threshold:   l.Threshold,
					Probability: lsh.CollisionProbability(similarity, l.NumBands, l.RowsPerBand),
					Current:     size == cfg.LSH.SignatureSize && l.NumBands == cfg.LSH.NumBands,
				})
			}

			if asJSON {
				return writeJSON(cmd, rows)
			}

			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				marker := ""
				if r.Current {
					marker = "*"
				}
				table = append(table, []string{
					strconv.Itoa(r.NumBands),
					strconv.Itoa(r.RowsPerBand),
					ratio(r.Threshold),
					percent(r.Probability),
					marker,
				})
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Signature size %d, pair similarity %s\n", size, ratio(similarity))
			fmt.Fprintln(w, renderTable(
				[]string{"Bands", "Rows", "Threshold", "P(candidate)", "Current"},
				table,
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&signatureSize, "signature-size", 0, "Signature size to split (default lsh.signature_size)")
	cmd.Flags().Float64Var(&similarity, "similarity", 0.8, "Pair similarity used for the candidate probability")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print layouts as JSON")
	return cmd
}
