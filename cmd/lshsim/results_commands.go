package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lshsim/internal/results"
)

func newResultsCommand(ctx *commandContext) *cobra.Command {
	resultsCmd := &cobra.Command{
		Use:   "results",
		Short: "Inspect recorded runs",
	}

	resultsCmd.AddCommand(newResultsListCommand(ctx))
	resultsCmd.AddCommand(newResultsShowCommand(ctx))
	return resultsCmd
}

func (c *commandContext) withStore(fn func(*results.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := results.Open(cfg)
	if err != nil {
		return fmt.Errorf("open results store: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func newResultsListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *results.Store) error {
				runs, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if asJSON {
					if runs == nil {
						runs = []*results.RunRecord{}
					}
					return writeJSON(cmd, runs)
				}
				w := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(w, "No recorded runs")
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						shortID(run.RunID),
						formatWhen(run.StartedAt),
						fmt.Sprintf("%d/%d/%d", run.ShingleSize, run.NumBands, run.RowsPerBand()),
						run.Hash,
						count(run.Documents),
						count(run.GoldPairs),
						count(run.TruePositive),
						count(run.FalsePositive),
						percent(run.Precision()),
					})
				}
				fmt.Fprintln(w, renderTable(
					[]string{"Run", "Started", "k/b/r", "Hash", "Docs", "Pairs", "TP", "FP", "Precision"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print runs as JSON")
	return cmd
}

func newResultsShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Show one run (a unique ID prefix is enough)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *results.Store) error {
				run, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, run)
				}
				pairs := [][2]string{
					{"Run", run.RunID},
					{"Started", formatWhen(run.StartedAt)},
					{"Duration", formatDuration(run.Duration)},
					{"Questions", run.QuestionsPath},
					{"Gold pairs file", run.GoldPath},
					{"Shingle size", strconv.Itoa(run.ShingleSize)},
					{"Signature size", strconv.Itoa(run.SignatureSize)},
					{"Bands x rows", fmt.Sprintf("%d x %d", run.NumBands, run.RowsPerBand())},
					{"Hash", run.Hash},
					{"Fold diacritics", yesNo(run.FoldDiacritics)},
					{"Documents", count(run.Documents)},
					{"Documents dropped", count(run.DroppedDocuments)},
					{"Short documents", count(run.Degenerate)},
					{"Gold pairs", count(run.GoldPairs)},
					{"Gold pairs dropped", count(run.DroppedPairs)},
					{"Pairs with unknown id", count(run.MissingIDs)},
					{"True positives", count(run.TruePositive)},
					{"False positives", count(run.FalsePositive)},
					{"Precision", percent(run.Precision())},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderKeyValues("Run "+shortID(run.RunID), pairs))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the run as JSON")
	return cmd
}
