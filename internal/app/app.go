// Package app wires one retrieval run end to end.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spacedata/tlefetch/internal/config"
	"github.com/spacedata/tlefetch/internal/logging"
	"github.com/spacedata/tlefetch/internal/output"
	"github.com/spacedata/tlefetch/internal/spacetrack"
)

// Option adjusts a run, mainly for tests.
type Option func(*options)

type options struct {
	baseURL string
}

// WithBaseURL points the fetch at a different endpoint.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

// Run executes the pipeline once: build the query, perform the single
// authenticated fetch, then create the output file and write every record
// in response order. Any failure aborts the run; a partially written file
// is left as-is.
func Run(ctx context.Context, settings *config.Settings, logger *zap.Logger, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger.Debug("loaded settings",
		logging.Username(settings.Username),
		logging.NoradIDs(settings.NoradIDs),
		zap.Int("connection_timeout", settings.ConnectionTimeout),
		zap.Int("connection_read_timeout", settings.ConnectionReadTimeout),
		zap.Int("connection_retries", settings.ConnectionRetries),
	)

	clientOpts := []spacetrack.Option{}
	if o.baseURL != "" {
		clientOpts = append(clientOpts, spacetrack.WithBaseURL(o.baseURL))
	}
	client := spacetrack.NewClient(
		settings.Username,
		settings.Password,
		time.Duration(settings.ConnectionTimeout)*time.Second,
		time.Duration(settings.ConnectionReadTimeout)*time.Second,
		clientOpts...,
	)

	records, err := client.Fetch(ctx, settings.NoradIDs)
	if err != nil {
		return fmt.Errorf("fetching element sets: %w", err)
	}
	logger.Info("retrieved element sets", logging.Count(len(records)))

	path := settings.OutputPath()
	logger.Info("creating output file", logging.Path(path))
	w, err := output.Create(path)
	if err != nil {
		return err
	}
	if err := w.WriteRecords(records); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
