package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap/zapcore"
)

// warnCounterCore bumps a counter for every entry logged at warn level or
// above. It accepts entries itself, so teed with a host core the count stays
// independent of the host logger's level; a silent logger still feeds metrics.
type warnCounterCore struct {
	counter prometheus.Counter
}

// CounterCore returns a zap core that counts warn-and-above entries into counter.
func CounterCore(counter prometheus.Counter) zapcore.Core {
	return &warnCounterCore{counter: counter}
}

func (c *warnCounterCore) Enabled(lvl zapcore.Level) bool {
	return lvl >= zapcore.WarnLevel
}

func (c *warnCounterCore) With([]zapcore.Field) zapcore.Core { return c }

func (c *warnCounterCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c *warnCounterCore) Write(zapcore.Entry, []zapcore.Field) error {
	c.counter.Inc()
	return nil
}

func (c *warnCounterCore) Sync() error { return nil }
