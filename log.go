package hetvec

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var pkgLogger atomic.Pointer[zap.Logger]

// Logger returns the logger given to tables created without
// WithLogger. It discards everything unless SetLogger has been called.
func Logger() *zap.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger sets the logger returned by Logger; tables that already
// exist keep the logger they were created with. A nil logger restores
// the default.
func SetLogger(l *zap.Logger) {
	pkgLogger.Store(l)
}
