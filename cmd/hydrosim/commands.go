// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/hydronet/internal/config"
	"github.com/katalvlaran/hydronet/internal/httpapi"
	"github.com/katalvlaran/hydronet/internal/logger"
	"github.com/katalvlaran/hydronet/metrics"
	"github.com/katalvlaran/hydronet/reachability"
	"github.com/katalvlaran/hydronet/simulation"
	"github.com/katalvlaran/hydronet/topology"
)

// env bundles what every subcommand derives from configuration.
type env struct {
	cfg    *config.Config
	log    zerolog.Logger
	closer io.Closer
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, closer: closer}, nil
}

func (e *env) simulator(opts ...simulation.Option) *simulation.Simulator {
	base := []simulation.Option{
		simulation.WithLogger(e.log),
		simulation.WithViscosity(e.cfg.Sim.ViscosityPaS),
		simulation.WithEpsilon(e.cfg.Sim.Epsilon),
	}
	return simulation.New(append(base, opts...)...)
}

func runCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("f", "", "snapshot file (.yaml, .yml or .json)")
	pretty := fs.Bool("pretty", false, "indent JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("run: -f is required")
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.closer.Close()

	snap, err := topology.Load(*file)
	if err != nil {
		return err
	}
	res, err := e.simulator().Run(ctx, snap)
	if err != nil {
		return err
	}
	return writeJSON(stdout, res.Report(), *pretty)
}

func reachCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("reach", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("f", "", "snapshot file (.yaml, .yml or .json)")
	watch := fs.Duration("watch", 0, "poll the file at this interval and print highlight changes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("reach: -f is required")
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.closer.Close()

	tracker := reachability.NewTracker(reachability.WithContext(ctx), reachability.WithLogger(e.log))
	update := func() error {
		snap, err := topology.Load(*file)
		if err != nil {
			return err
		}
		ch, err := tracker.Update(snap)
		if err != nil {
			return err
		}
		if !ch.Skipped {
			for _, w := range tracker.Current().Warnings {
				fmt.Fprintln(stderr, "warning:", w)
			}
		}
		printChange(stdout, ch)
		return nil
	}

	if err = update(); err != nil {
		return err
	}
	if *watch <= 0 {
		return nil
	}

	ticker := time.NewTicker(*watch)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err = update(); err != nil {
				// a half-saved file is normal while editing
				e.log.Warn().Err(err).Str("file", *file).Msg("reload failed")
			}
		}
	}
}

func printChange(w io.Writer, ch reachability.Change) {
	for _, id := range ch.Highlighted {
		fmt.Fprintln(w, "+", id)
	}
	for _, id := range ch.Cleared {
		fmt.Fprintln(w, "-", id)
	}
}

func serveCmd(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", "", "listen address (overrides HYDROSIM_HTTP_ADDR)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.closer.Close()
	if *addr != "" {
		e.cfg.HTTP.Addr = *addr
	}

	rec, err := metrics.NewPrometheus(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	api := httpapi.New(e.simulator(simulation.WithRecorder(rec)), e.cfg.HTTP, e.log, prometheus.DefaultGatherer)
	srv := api.HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		e.log.Info().
			Str("addr", srv.Addr).
			Str("origins", strings.Join(e.cfg.HTTP.AllowedOrigins, ",")).
			Msg("server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	e.log.Info().Msg("server shutting down")
	return srv.Shutdown(shutdownCtx)
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = sonic.ConfigStd.MarshalIndent(v, "", "  ")
	} else {
		data, err = sonic.ConfigStd.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
