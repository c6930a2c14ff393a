package flexcache

// Logger is the structured-logging contract Cache uses for debug-level
// tracing of sweeps, evictions, and policy swaps. *zap.SugaredLogger
// (go.uber.org/zap) satisfies this interface directly via its Debugw
// method. A nil Logger (the default) disables logging with a single nil
// check per call site.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
}

func (c *Cache) logDebugw(msg string, kv ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debugw(msg, kv...)
}
