package logger

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/go-btree/pkg/datastructs/btree"
	"github.com/huynhanx03/go-btree/pkg/settings"
)

// Tracer wraps a zap.Logger to implement btree.Tracer. Events are logged at
// debug level, so they cost a level check when debug is off.
type Tracer struct {
	logger *zap.Logger
}

// NewTracer creates a btree.Tracer from a zap.Logger.
func NewTracer(logger *zap.Logger) btree.Tracer {
	return &Tracer{logger: logger.Named("btree")}
}

func (t *Tracer) Split(depth int) {
	t.logger.Debug("split", zap.Int("depth", depth))
}

func (t *Tracer) Merge(depth int) {
	t.logger.Debug("merge", zap.Int("depth", depth))
}

func (t *Tracer) Grow(height int) {
	t.logger.Debug("grow", zap.Int("height", height))
}

func (t *Tracer) Shrink(height int) {
	t.logger.Debug("shrink", zap.Int("height", height))
}

// TreeOptions returns the btree options implied by cfg: a zap tracer when
// cfg.Trace is set, nothing otherwise.
func TreeOptions(cfg settings.BTree, logger *zap.Logger) []btree.Option {
	if !cfg.Trace || logger == nil {
		return nil
	}
	return []btree.Option{btree.WithTracer(NewTracer(logger))}
}
