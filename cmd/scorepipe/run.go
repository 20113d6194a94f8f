package main

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/askiada/go-scorepipe/internal/config"
	"github.com/askiada/go-scorepipe/internal/console"
	"github.com/askiada/go-scorepipe/internal/grading"
	"github.com/askiada/go-scorepipe/internal/logging"
	"github.com/askiada/go-scorepipe/pkg/generator"
	"github.com/askiada/go-scorepipe/pkg/pipeline"
	"github.com/askiada/go-scorepipe/pkg/pipeline/drawer"
	"github.com/askiada/go-scorepipe/pkg/pipeline/measure"
	"github.com/askiada/go-scorepipe/pkg/pipeline/model"
	"github.com/askiada/go-scorepipe/pkg/table"
)

func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	logger, err := logging.New(cfg.LoggerConfig(), stderr)
	if err != nil {
		return err
	}
	logger = logger.With().Str("run_id", uuid.NewString()).Logger()

	report := console.NewReporter(stdout)

	gen, err := generator.New(generator.Config{
		Mean:        cfg.Generation.Mean,
		StdDev:      cfg.Generation.StdDev,
		Min:         cfg.Generation.MinScore,
		Max:         cfg.Generation.MaxScore,
		FailureOdds: cfg.Generation.FailureOdds,
	},
		generator.NewRand(cfg.Generation.Seed),
		generator.RetryPause(cfg.Generation.RetryPause()),
		generator.MaxAttempts(cfg.Generation.MaxAttempts),
		generator.OnAttempt(report.Attempt),
		generator.Logger(logger.With().Str("component", "generator").Logger()),
	)
	if err != nil {
		return errors.Wrap(err, "unable to create generator")
	}

	report.GenerationStarted(cfg.Generation.Count)
	records, err := gen.Fill(ctx, cfg.Generation.Count)
	if err != nil {
		report.GenerationFailed(err)

		return errors.Wrap(err, "unable to generate records")
	}
	report.GenerationDone(records.Len())
	logger.Info().Int("records", records.Len()).Msg("generation complete")

	msr := measure.NewDefaultMeasure()
	opts := []model.PipelineOption{measure.PipelineMeasure(msr)}
	if cfg.Output.DotFile != "" {
		opts = append(opts, drawer.PipelineDrawer(drawer.NewDOTDrawer(cfg.Output.DotFile), msr))
	}

	pipe, err := pipeline.New(
		pipeline.WithOutput(stdout),
		pipeline.WithLogger(logger.With().Str("component", "pipeline").Logger()),
		pipeline.WithOptions(opts...),
	)
	if err != nil {
		return errors.Wrap(err, "unable to create pipeline")
	}

	thresholds := grading.Thresholds{Pass: cfg.Thresholds.Pass, Excellent: cfg.Thresholds.Excellent}
	err = pipeline.AddSteps(pipe, grading.Steps(thresholds, table.NewPrinter(stdout), stdout)...)
	if err != nil {
		return errors.Wrap(err, "unable to build pipeline")
	}

	report.ProcessingStarted()
	err = pipe.Run(records)
	if err != nil {
		return errors.Wrap(err, "unable to run pipeline")
	}
	report.ProcessingDone()

	logMetrics(logger, msr)
	if cfg.Output.DotFile != "" {
		logger.Info().Str("file", cfg.Output.DotFile).Msg("pipeline diagram written")
	}

	return nil
}

func logMetrics(logger zerolog.Logger, msr *measure.DefaultMeasure) {
	for _, name := range msr.Names() {
		mt := msr.GetMetric(name)
		logger.Debug().
			Str("step", name).
			Int64("runs", mt.Runs()).
			Int64("skips", mt.Skips()).
			Int64("records", mt.Records()).
			Dur("avg", mt.AVGDuration()).
			Dur("total", mt.GetTotalDuration()).
			Msg("step metrics")
	}
}
