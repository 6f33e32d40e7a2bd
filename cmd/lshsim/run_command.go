package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lshsim/internal/config"
	"lshsim/internal/pipeline"
)

type runFlags struct {
	questions     string
	gold          string
	shingleSize   int
	signatureSize int
	bands         int
	hash          string
	workers       int
	randomSeed    uint64
	fold          bool
	json          bool
	noRecord      bool
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sign the corpus and count true/false positive candidate pairs",
		Long: `Load the questions and gold pair CSV files, compute MinHash signatures
and LSH band vectors for every question, and count how many labeled pairs
become candidates (share a band bucket). Candidates labeled 1 are true
positives, candidates labeled 0 are false positives.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg, err := applyRunFlags(cmd, base, flags)
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			report, err := pipeline.Run(cmd.Context(), cfg, pipeline.Options{
				Logger:   logger,
				Progress: progressFactory(cmd.ErrOrStderr(), logger),
				Record:   !flags.noRecord,
			})
			if err != nil {
				return err
			}

			if flags.json {
				return writeJSON(cmd, report)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.questions, "questions", "", "Questions CSV (id,text)")
	f.StringVar(&flags.gold, "gold", "", "Gold pairs CSV (id1,id2,label)")
	f.IntVar(&flags.shingleSize, "shingle-size", 0, "Override lsh.shingle_size")
	f.IntVar(&flags.signatureSize, "signature-size", 0, "Override lsh.signature_size")
	f.IntVar(&flags.bands, "bands", 0, "Override lsh.num_bands")
	f.StringVar(&flags.hash, "hash", "", "Override lsh.hash (md5, xxhash)")
	f.IntVar(&flags.workers, "workers", 0, "Override engine.workers")
	f.Uint64Var(&flags.randomSeed, "random-seed", 0, "Override lsh.random_seed for reproducible seeds")
	f.BoolVar(&flags.fold, "fold-diacritics", false, "Strip accents before normalizing")
	f.BoolVar(&flags.json, "json", false, "Print the report as JSON")
	f.BoolVar(&flags.noRecord, "no-record", false, "Do not store the run in the results database")
	return cmd
}

// applyRunFlags returns a copy of base with every flag the user set applied.
func applyRunFlags(cmd *cobra.Command, base *config.Config, flags runFlags) (*config.Config, error) {
	cfg := *base
	changed := cmd.Flags().Changed

	if changed("questions") {
		cfg.Input.QuestionsPath = flags.questions
	}
	if changed("gold") {
		cfg.Input.GoldPath = flags.gold
	}
	if changed("shingle-size") {
		cfg.LSH.ShingleSize = flags.shingleSize
	}
	if changed("signature-size") {
		cfg.LSH.SignatureSize = flags.signatureSize
		if len(cfg.LSH.Seeds) != flags.signatureSize {
			// pinned seeds only fit the configured size
			cfg.LSH.Seeds = nil
		}
	}
	if changed("bands") {
		cfg.LSH.NumBands = flags.bands
	}
	if changed("hash") {
		cfg.LSH.Hash = strings.ToLower(strings.TrimSpace(flags.hash))
	}
	if changed("workers") {
		cfg.Engine.Workers = flags.workers
	}
	if changed("random-seed") {
		cfg.LSH.RandomSeed = flags.randomSeed
		cfg.LSH.Seeds = nil
	}
	if changed("fold-diacritics") {
		cfg.Normalize.FoldDiacritics = flags.fold
	}

	if err := cfg.ExpandInputPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func renderReport(r *pipeline.Report) string {
	params := [][2]string{
		{"Run", r.RunID},
		{"Shingle size", count(r.Params.ShingleSize)},
		{"Signature size", count(r.Params.SignatureSize)},
		{"Bands x rows", fmt.Sprintf("%d x %d", r.Params.NumBands, r.Params.RowsPerBand)},
		{"Hash", r.Params.Hash},
		{"Fold diacritics", yesNo(r.Params.FoldDiacritics)},
		{"Workers", count(r.Params.Workers)},
		{"Duration", formatDuration(r.Duration)},
		{"Recorded", yesNo(r.Recorded)},
	}
	inputs := [][2]string{
		{"Documents", count(r.Documents.Kept)},
		{"Documents dropped", count(r.Documents.Dropped())},
		{"Short documents", count(r.Degenerate)},
		{"Gold pairs", count(r.Evaluation.Pairs)},
		{"Gold pairs dropped", count(r.Gold.Dropped() + r.DuplicatePairs)},
		{"Pairs with unknown id", count(r.Evaluation.MissingID)},
	}
	outcome := [][2]string{
		{"Candidates", count(r.Evaluation.Candidates)},
		{"True positives", count(r.Result.TruePositive)},
		{"False positives", count(r.Result.FalsePositive)},
		{"Precision", percent(r.Precision)},
		{"Recall", percent(r.Recall)},
	}
	return strings.Join([]string{
		renderKeyValues("Parameters", params),
		renderKeyValues("Inputs", inputs),
		renderKeyValues("Outcome", outcome),
	}, "\n")
}
