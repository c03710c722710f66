// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-places/internal/logger"
)

type imageCleaner struct {
	remover ImageRemover
	queue   chan string
	logger  *logger.Logger
}

// NewImageCleaner returns an [ImageCleaner] with a queue of queueSize paths
// that removes them through remover. A queueSize below 1 is treated as 1.
func NewImageCleaner(remover ImageRemover, queueSize int, log *logger.Logger) ImageCleaner {
	if queueSize < 1 {
		queueSize = 1
	}

	return &imageCleaner{
		remover: remover,
		queue:   make(chan string, queueSize),
		logger:  log,
	}
}

func (c *imageCleaner) Enqueue(path string) bool {
	if path == "" {
		return false
	}

	select {
	case c.queue <- path:
		return true
	default:
		c.logger.Warn().Str("func", "*imageCleaner.Enqueue").Str("path", path).Msg("image cleanup queue is full, dropping file")
		return false
	}
}

// Run removes queued images until ctx is cancelled, then removes whatever
// is still queued and returns.
func (c *imageCleaner) Run(ctx context.Context) {
	c.logger.Info().Msg("image cleaner started")

	for {
		select {
		case <-ctx.Done():
			c.drain()
			c.logger.Info().Msg("image cleaner stopped")
			return
		case path := <-c.queue:
			c.remove(ctx, path)
		}
	}
}

func (c *imageCleaner) drain() {
	ctx := context.Background()
	for {
		select {
		case path := <-c.queue:
			c.remove(ctx, path)
		default:
			return
		}
	}
}

func (c *imageCleaner) remove(ctx context.Context, path string) {
	if err := c.remover.Remove(ctx, path); err != nil {
		c.logger.Err(err).Str("func", "*imageCleaner.remove").Str("path", path).Msg("failed to remove image")
		return
	}
	c.logger.Debug().Str("path", path).Msg("image removed")
}
