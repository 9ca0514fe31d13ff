package timedlog

import "sync"

var (
	defaultEngine = New()
	defaultMu     sync.RWMutex
)

// Default returns the process-wide engine used by the package level functions.
func Default() *Engine {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultEngine
}

// SetDefault replaces the process-wide engine. The previous engine is not
// closed; that stays with the caller.
func SetDefault(e *Engine) {
	if e == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEngine = e
}

// Convenience functions using the default engine
func Configure(mode Mode, mask Severity, fileBaseName string) error {
	return Default().Configure(mode, mask, fileBaseName)
}

func Close() error {
	return Default().Close()
}

func Inform(content string) error {
	return Default().Inform(content)
}

func Warn(content string) error {
	return Default().Warn(content)
}

func Alert(content string) error {
	return Default().Alert(content)
}

func InformAt(timestamp, content string) error {
	return Default().InformAt(timestamp, content)
}

func WarnAt(timestamp, content string) error {
	return Default().WarnAt(timestamp, content)
}

func AlertAt(timestamp, content string) error {
	return Default().AlertAt(timestamp, content)
}
