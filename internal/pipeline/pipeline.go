package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"lshsim/internal/config"
	"lshsim/internal/corpus"
	"lshsim/internal/engine"
	"lshsim/internal/evaluate"
	"lshsim/internal/logging"
	"lshsim/internal/lsh"
	"lshsim/internal/metrics"
	"lshsim/internal/results"
)

const (
	stageLoad     = "load"
	stageSign     = "sign"
	stageEvaluate = "evaluate"
	stageRecord   = "record"
)

// Options carries the collaborators of a run. Zero values are usable: logs
// are discarded, metrics are collected into a private registry and progress
// is reported through sampled log lines.
type Options struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Progress ProgressFactory
	// Record persists the run to the results store when cfg.Results.Enabled
	// is also set.
	Record bool
	Now    func() time.Time
}

type signedDocument struct {
	id     int64
	sketch Sketch
	err    error
}

// Run executes one evaluation with the parameters in cfg.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Report, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.ValidateInput(); err != nil {
		return nil, err
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	sketcher, err := NewSketcher(cfg)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:         uuid.NewString(),
		StartedAt:     now().UTC(),
		QuestionsPath: cfg.Input.QuestionsPath,
		GoldPath:      cfg.Input.GoldPath,
	}
	ctx = logging.WithRunID(ctx, report.RunID)
	base := logging.NewComponentLogger(opts.Logger, "pipeline")
	logger := logging.WithContext(ctx, base)
	stageLogger := func(stage string) *slog.Logger {
		return logging.WithContext(logging.WithStage(ctx, stage), base)
	}

	progress := opts.Progress
	if progress == nil {
		progress = LogProgress(logger)
	}

	record := opts.Record && cfg.Results.Enabled
	var store *results.Store
	if record {
		lock, err := results.AcquireRunLock(cfg.LockPath())
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("release run lock failed", logging.Error(err))
			}
		}()
		store, err = results.Open(cfg)
		if err != nil {
			return nil, fmt.Errorf("open results store: %w", err)
		}
		defer store.Close()
	}

	eng := engine.New(engine.WithWorkers(cfg.Engine.Workers))
	report.Params = Params{
		ShingleSize:    cfg.LSH.ShingleSize,
		SignatureSize:  cfg.LSH.SignatureSize,
		NumBands:       cfg.LSH.NumBands,
		RowsPerBand:    sketcher.Bander().RowsPerBand(),
		Hash:           cfg.LSH.Hash,
		FoldDiacritics: cfg.Normalize.FoldDiacritics,
		Workers:        eng.Workers(),
	}
	logger.Info("run starting",
		logging.String("questions", cfg.Input.QuestionsPath),
		logging.String("gold", cfg.Input.GoldPath),
		logging.Int("shingle_size", report.Params.ShingleSize),
		logging.Int("signature_size", report.Params.SignatureSize),
		logging.Int("num_bands", report.Params.NumBands),
		logging.Int("rows_per_band", report.Params.RowsPerBand),
		logging.String("hash", report.Params.Hash),
		logging.Int("workers", report.Params.Workers),
	)

	stop := m.Timer(stageLoad)
	stageLog := stageLogger(stageLoad)
	var (
		docs  []corpus.RawDocument
		pairs []evaluate.GoldPair
	)
	var group errgroup.Group
	group.Go(func() error {
		var err error
		docs, report.Documents, err = corpus.LoadDocuments(cfg.Input.QuestionsPath)
		return err
	})
	group.Go(func() error {
		var err error
		pairs, report.Gold, err = corpus.LoadGoldPairs(cfg.Input.GoldPath)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stageLog.Info("inputs loaded",
		logging.Int("documents", report.Documents.Kept),
		logging.Int("gold_pairs", report.Gold.Kept),
		logging.Duration("elapsed", stop()),
	)
	m.Dropped(metrics.DropMalformedDocument, report.Documents.Malformed)
	m.Dropped(metrics.DropDuplicateDocument, report.Documents.Duplicates)
	m.Dropped(metrics.DropMalformedPair, report.Gold.Malformed)
	if dropped := report.Documents.Dropped() + report.Gold.Dropped(); dropped > 0 {
		logging.Warn(stageLog, logging.Event{
			Type:   "records_dropped",
			Hint:   "check the CSV files for broken rows",
			Impact: "dropped rows are excluded from the evaluation",
		}, "malformed input records dropped",
			logging.Int("documents_malformed", report.Documents.Malformed),
			logging.Int("documents_duplicate", report.Documents.Duplicates),
			logging.Int("gold_malformed", report.Gold.Malformed),
		)
	}

	stop = m.Timer(stageSign)
	stageLog = stageLogger(stageSign)
	bar := progress(stageSign, len(docs))
	signEngine := engine.New(engine.WithWorkers(cfg.Engine.Workers), engine.WithProgress(bar.Add))
	signed, err := engine.Map(ctx, signEngine, docs, func(doc corpus.RawDocument) signedDocument {
		sketch, err := sketcher.Sketch(doc.Text)
		return signedDocument{id: doc.ID, sketch: sketch, err: err}
	})
	bar.Finish()
	if err != nil {
		return nil, err
	}

	bands := make([]engine.KV[int64, lsh.BandVector], 0, len(signed))
	for _, doc := range signed {
		if doc.err != nil {
			return nil, fmt.Errorf("document %d: %w", doc.id, doc.err)
		}
		if doc.sketch.Degenerate() {
			report.Degenerate++
		}
		bands = append(bands, engine.KV[int64, lsh.BandVector]{Key: doc.id, Value: doc.sketch.Bands})
	}
	m.DocumentsProcessed.Add(float64(len(bands)))
	m.DegenerateSignature.Add(float64(report.Degenerate))
	stageLog.Info("documents signed",
		logging.Int("documents", len(bands)),
		logging.Duration("elapsed", stop()),
	)
	if report.Degenerate > 0 {
		logging.Warn(stageLog, logging.Event{
			Type:   "degenerate_signature",
			Hint:   "lower lsh.shingle_size or filter short documents",
			Impact: "all-zero signatures collide with each other and inflate false positives",
		}, "documents shorter than shingle size",
			logging.Int("count", report.Degenerate),
			logging.Int("shingle_size", cfg.LSH.ShingleSize),
		)
	}

	stop = m.Timer(stageEvaluate)
	stageLog = stageLogger(stageEvaluate)
	unique := evaluate.DedupePairs(pairs)
	report.DuplicatePairs = len(pairs) - len(unique)
	m.Dropped(metrics.DropDuplicatePair, report.DuplicatePairs)
	result, evalStats, err := evaluate.Evaluate(ctx, eng, bands, unique)
	if err != nil {
		return nil, err
	}
	report.Result = result
	report.Evaluation = evalStats
	report.Precision = result.Precision()
	report.Recall = result.Recall(evalStats)
	m.GoldPairs.Add(float64(len(unique)))
	m.Dropped(metrics.DropMissingID, evalStats.MissingID)
	m.Outcome(result.TruePositive, result.FalsePositive)
	stageLog.Info("pairs evaluated",
		logging.Int("pairs", evalStats.Pairs),
		logging.Int("duplicates", report.DuplicatePairs),
		logging.Int("missing_id", evalStats.MissingID),
		logging.Int("candidates", evalStats.Candidates),
		logging.Int("true_positive", result.TruePositive),
		logging.Int("false_positive", result.FalsePositive),
		logging.Duration("elapsed", stop()),
	)

	report.Duration = now().UTC().Sub(report.StartedAt)
	m.LastRunTimestamp.Set(float64(now().Unix()))

	if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		logging.Warn(logger, logging.Event{
			Type: "metrics_textfile",
			Hint: "check metrics.textfile permissions",
		}, "metrics textfile not written",
			logging.Error(err),
			logging.String("path", cfg.Metrics.Textfile),
		)
	}

	if store != nil {
		stop = m.Timer(stageRecord)
		stageLog = stageLogger(stageRecord)
		if err := store.Record(ctx, report.RunRecord()); err != nil {
			return nil, fmt.Errorf("record run: %w", err)
		}
		report.Recorded = true
		stageLog.Debug("run recorded", logging.String("db", store.Path()), logging.Duration("elapsed", stop()))
	}

	logger.Info("run complete",
		logging.Int("true_positive", result.TruePositive),
		logging.Int("false_positive", result.FalsePositive),
		logging.Float64("precision", report.Precision),
		logging.Duration("duration", report.Duration),
	)
	return report, nil
}
