// Package state defines shared program state threaded through the CLI via
// context.Context.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sandflow/ttconv/internal/appconfig"
)

type envKey struct{}

// LocalEnv keeps everything a conversion needs in a single place.
type LocalEnv struct {
	Cfg *appconfig.Config
	Log *zap.Logger

	// set by the convert subcommand from its flags
	Input, Output         string
	InputType, OutputType string
	Filters               []string
	Debug                 bool

	start         time.Time
	restoreStdLog func()
}

// EnvFromContext retrieves the LocalEnv stashed by ContextWithEnv. It
// panics if called outside a context built that way - a programmer
// error, never a user-facing condition.
func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	panic("localenv not found in context")
}

// ContextWithEnv returns a context carrying a freshly initialized LocalEnv.
func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// Uptime reports how long this process has been running.
func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// RedirectStdLog routes the standard library's log package through Log.
func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

// RestoreStdLog undoes RedirectStdLog and flushes Log.
func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
