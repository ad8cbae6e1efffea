package entitymap

import "sync"

// EntitiesLoadedHook is called after a dashboard has been fetched and resolved
type EntitiesLoadedHook func(keypass string, items []Item)

// hooks manages event callbacks
type hooks struct {
	mu               sync.RWMutex
	onEntitiesLoaded []EntitiesLoadedHook
}

// OnEntitiesLoaded registers a callback for resolved dashboards
func (h *hooks) OnEntitiesLoaded(fn EntitiesLoadedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEntitiesLoaded = append(h.onEntitiesLoaded, fn)
}

func (h *hooks) triggerEntitiesLoaded(keypass string, items []Item) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onEntitiesLoaded {
		fn(keypass, items)
	}
}
