package cmd

import (
	"context"
	"fmt"
	"github.com/clambin/vetinari/internal/coil"
	"github.com/clambin/vetinari/internal/coil/output"
	"github.com/clambin/vetinari/internal/configuration"
	"github.com/clambin/vetinari/internal/lfsr"
	"github.com/clambin/vetinari/internal/plan"
	"github.com/clambin/vetinari/internal/scheduler"
	"github.com/clambin/vetinari/internal/server"
	"github.com/clambin/vetinari/internal/timer"
	"github.com/clambin/vetinari/internal/version"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Main parses the command line arguments and runs the clock until ctx is cancelled
func Main(ctx context.Context, args []string) error {
	cfg, err := configuration.GetConfigFromArgs(args)
	if err != nil {
		return err
	}
	return run(ctx, cfg, prometheus.DefaultRegisterer, timer.NewTicker(configuration.TickInterval))
}

func run(ctx context.Context, cfg configuration.Configuration, promReg prometheus.Registerer, source timer.Source) error {
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.WithFields(log.Fields{
		"version": version.BuildVersion,
		"output":  cfg.Output.Mode,
		"length":  configuration.SequenceLength,
	}).Info("vetinari starting")
	defer log.Info("vetinari exiting")

	o, err := output.New(cfg.Output)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	defer func() {
		if err := o.Close(); err != nil {
			log.WithError(err).Warning("failed to close output")
		}
	}()

	s, err := build(o)
	if err != nil {
		return err
	}
	if err = promReg.Register(s); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	defer source.Stop()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Run(ctx, source) })
	if cfg.Port > 0 {
		srv := server.New(cfg.Port, s)
		g.Go(func() error { return srv.Run(ctx) })
	}
	return g.Wait()
}

func build(o coil.Output) (*scheduler.Scheduler, error) {
	gen, err := lfsr.New(configuration.Seed)
	if err != nil {
		return nil, fmt.Errorf("lfsr: %w", err)
	}
	planner, err := plan.NewPlanner(configuration.SequenceLength)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	return scheduler.New(planner, gen, coil.NewDriver(o, configuration.EnergiseTime))
}
