// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/myapp/internal/ctxlog"
)

// Watch monitors the signal channel until ctx is done or the channel is closed.
// The first signal of a given type calls cancel, which lets the running command
// return an interrupted error. The second signal of the same type calls force.
func Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc, force func(os.Signal)) {
	sigMap := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, seen := sigMap[sig]; seen {
				ctxlog.Warn(ctx, "watchdog", "detail", "received second signal of type, forcefully terminating", "signal", sig.String())

				if force != nil {
					force(sig)
				}

				return
			}

			ctxlog.Info(ctx, "watchdog", "detail", "received first signal of type, cancelling", "signal", sig.String())

			sigMap[sig] = struct{}{}

			cancel()
		}
	}
}
