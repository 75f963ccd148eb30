// Package goroutine launches background work that must never crash the process.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/doramashorts/backend/internal/shared/logger"
)

// SafeGo runs fn in a goroutine and logs any panic with its stack trace.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}

// SafeGoWithTimeout is SafeGo with a fresh context bounded by timeout. The
// context is detached from any request so the work outlives the caller.
func SafeGoWithTimeout(log logger.Interface, name string, timeout time.Duration, fn func(ctx context.Context)) {
	SafeGo(log, name, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		fn(ctx)
	})
}
