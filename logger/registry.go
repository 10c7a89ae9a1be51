package logger

import (
	"sync"
)

// components caches named loggers. Entries derived from the global logger
// are dropped by Init so they pick up the new configuration.
var components = struct {
	sync.RWMutex
	byName map[string]*Logger
}{byName: make(map[string]*Logger)}

// Register pins l under name, replacing any cached logger.
func Register(name string, l *Logger) {
	components.Lock()
	components.byName[name] = l
	components.Unlock()
}

// Get returns the logger registered under name. On first use of an unknown
// name it derives one from the global logger tagged with the component and
// caches it.
func Get(name string) *Logger {
	components.RLock()
	l, ok := components.byName[name]
	components.RUnlock()
	if ok {
		return l
	}

	components.Lock()
	defer components.Unlock()
	if l, ok := components.byName[name]; ok {
		return l
	}
	l = GetGlobalLogger().WithComponent(name)
	components.byName[name] = l
	return l
}

func resetComponents() {
	components.Lock()
	components.byName = make(map[string]*Logger)
	components.Unlock()
}
