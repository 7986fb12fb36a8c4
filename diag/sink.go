// SPDX-License-Identifier: EPL-2.0

// Package diag carries errors out of the audio callback.
//
// Processors run on the real-time path where they cannot log, block or return
// an error. They hand problems to a Sink instead, and a Channel sink forwards
// them to a goroutine that logs them.
package diag

import (
	"context"
	"sync/atomic"

	"github.com/ossrs/go-oryx-lib/logger"
)

// Sink receives errors raised where they cannot be returned.
//
// Report is called from the audio callback and must not block.
type Sink interface {
	Report(err error)
}

type discard struct{}

func (discard) Report(error) {}

// Discard drops every report.
var Discard Sink = discard{}

// Channel is a Sink backed by a buffered channel. Reports made while the
// buffer is full are dropped and counted.
type Channel struct {
	errs    chan error
	dropped atomic.Uint64
}

func NewChannel(capacity int) *Channel {
	return &Channel{errs: make(chan error, max(capacity, 1))}
}

func (c *Channel) Report(err error) {
	if err == nil {
		return
	}

	select {
	case c.errs <- err:
	default:
		c.dropped.Add(1)
	}
}

// Dropped returns how many reports were discarded because the buffer was full.
func (c *Channel) Dropped() uint64 {
	return c.dropped.Load()
}

// Errors exposes the receive side, for callers that handle reports themselves.
func (c *Channel) Errors() <-chan error {
	return c.errs
}

// Drain logs reports until ctx is done, then logs whatever is still buffered
// and returns.
func (c *Channel) Drain(ctx context.Context) {
	for {
		select {
		case err := <-c.errs:
			logger.Wf(ctx, "audio err %+v", err)
		case <-ctx.Done():
			c.flush(ctx)
			return
		}
	}
}

func (c *Channel) flush(ctx context.Context) {
	for {
		select {
		case err := <-c.errs:
			logger.Wf(ctx, "audio err %+v", err)
		default:
			if n := c.Dropped(); n > 0 {
				logger.Wf(ctx, "audio dropped %v reports", n)
			}
			return
		}
	}
}
