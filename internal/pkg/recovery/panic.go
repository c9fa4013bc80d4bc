// Package recovery guards long-lived goroutines so a panic is logged instead
// of taking the process down.
package recovery

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
)

// WithRecover wraps fn so a panic inside it is logged under the goroutine's
// name along with the stack trace.
func WithRecover(logger *zap.Logger, name string, fn func()) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered in goroutine",
					zap.String("goroutine", name),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()))
			}
		}()
		fn()
	}
}

// WithRecoverCallback is WithRecover plus a callback invoked with the panic
// converted to an error, for callers that need to react beyond logging.
func WithRecoverCallback(logger *zap.Logger, name string, fn func(), onPanic func(error)) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered in goroutine",
					zap.String("goroutine", name),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()))
				if onPanic != nil {
					onPanic(fmt.Errorf("panic in %s: %v", name, r))
				}
			}
		}()
		fn()
	}
}
