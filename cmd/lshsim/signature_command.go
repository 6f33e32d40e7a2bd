package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lshsim/internal/lsh"
	"lshsim/internal/pipeline"
	"lshsim/internal/textutil"
)

type signatureOutput struct {
	Texts      []textSketch `json:"texts"`
	Comparison *comparison  `json:"comparison,omitempty"`
}

type textSketch struct {
	Text string `json:"text"`
	pipeline.Sketch
}

type comparison struct {
	Estimated float64 `json:"estimated_similarity"`
	Jaccard   float64 `json:"jaccard"`
	Candidate bool    `json:"candidate"`
}

func newSignatureCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "signature TEXT...",
		Short: "Show normalized text, signature and band vector for ad-hoc texts",
		Long: `Sketch each argument with the configured parameters. With two or more
texts, the first two are compared: estimated similarity from the signatures,
exact Jaccard similarity of the shingle sets, and whether LSH would make them
a candidate pair.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			sketcher, err := pipeline.NewSketcher(cfg)
			if err != nil {
				return err
			}

			out := signatureOutput{Texts: make([]textSketch, 0, len(args))}
			for _, text := range args {
				sketch, err := sketcher.SketchConcurrent(text, cfg.Engine.Workers)
				if err != nil {
					return err
				}
				out.Texts = append(out.Texts, textSketch{Text: text, Sketch: sketch})
			}

			if len(out.Texts) >= 2 {
				a, b := out.Texts[0], out.Texts[1]
				estimated, err := lsh.Similarity(a.Signature, b.Signature)
				if err != nil {
					return err
				}
				out.Comparison = &comparison{
					Estimated: estimated,
					Jaccard: lsh.Jaccard(
						textutil.Shingles(a.Normalized, cfg.LSH.ShingleSize),
						textutil.Shingles(b.Normalized, cfg.LSH.ShingleSize),
					),
					Candidate: lsh.Candidate(a.Bands, b.Bands),
				}
			}

			if asJSON {
				return writeJSON(cmd, out)
			}

			w := cmd.OutOrStdout()
			for i, ts := range out.Texts {
				pairs := [][2]string{
					{"Normalized", strconv.Quote(ts.Normalized)},
					{"Shingles", count(ts.Shingles)},
					{"Signature", formatSignature(ts.Signature)},
					{"Bands", formatBands(ts.Bands)},
				}
				fmt.Fprintln(w, renderKeyValues(fmt.Sprintf("Text %d", i+1), pairs))
			}
			if out.Comparison != nil {
				c := out.Comparison
				fmt.Fprintln(w, renderKeyValues("Texts 1 and 2", [][2]string{
					{"Estimated similarity", ratio(c.Estimated)},
					{"Jaccard similarity", ratio(c.Jaccard)},
					{"Candidate pair", yesNo(c.Candidate)},
				}))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print sketches as JSON")
	return cmd
}
