// Package loader guards one-time construction of the shared dictionary.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/luojia/cidian/internal/cedict"
	"github.com/luojia/cidian/internal/fetch"
)

// Loader builds the Dictionary exactly once. The first call to Load fetches
// the source and builds the index; concurrent callers block on the same
// in-flight build and receive the same instance. A failed load is not
// retried: the failure is recorded and returned to every subsequent caller.
type Loader struct {
	source fetch.Source
	once   sync.Once
	ready  atomic.Pointer[cedict.Dictionary]
	err    error
}

// New creates a Loader that will build from the given source.
func New(source fetch.Source) *Loader {
	return &Loader{source: source}
}

// Load returns the shared Dictionary, building it on first use.
func (l *Loader) Load(ctx context.Context) (*cedict.Dictionary, error) {
	l.once.Do(func() {
		raw, err := l.source.Fetch(ctx)
		if err != nil {
			l.err = fmt.Errorf("loading dictionary source: %w", err)
			return
		}

		dict := cedict.Build(raw)
		l.ready.Store(dict)
		slog.Info("dictionary loaded",
			slog.Int("keys", dict.Len()),
			slog.Int("max_key_len", dict.MaxKeyLen()))
	})
	return l.ready.Load(), l.err
}

// Dict returns the Dictionary if a Load has completed successfully. It
// never blocks; a query before the build finishes reports not ready, which
// is logged so stuck consumers are diagnosable.
func (l *Loader) Dict() (*cedict.Dictionary, bool) {
	dict := l.ready.Load()
	if dict == nil {
		slog.Warn("dictionary queried before load completed")
		return nil, false
	}
	return dict, true
}
