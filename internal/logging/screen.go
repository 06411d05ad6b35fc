package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type fileOutputKey struct{}

// ContextWithFileOutput records whether the context logger writes to a file.
func ContextWithFileOutput(ctx context.Context, usingFile bool) context.Context {
	return context.WithValue(ctx, fileOutputKey{}, usingFile)
}

// WritesToFile reports whether the context logger was marked as file-backed.
func WritesToFile(ctx context.Context) bool {
	usingFile, _ := ctx.Value(fileOutputKey{}).(bool)
	return usingFile
}

// ScreenSafeContext returns ctx unchanged when its logger writes to a file.
// Otherwise the logger would write to the terminal a full-screen program is
// drawing on, so it is replaced by a disabled one. The trace id is kept.
func ScreenSafeContext(ctx context.Context) context.Context {
	if WritesToFile(ctx) {
		return ctx
	}
	return zerolog.Nop().WithContext(ctx)
}
