package backend

import (
	"slices"
	"sync"

	"github.com/dshills/accelmenu/internal/input/key"
)

// KeySource fans key-downs out to listeners in registration order,
// stopping once a listener stops propagation.
type KeySource struct {
	mu        sync.Mutex
	listeners []func(ev *key.Event)
}

// NewKeySource creates a source with no listeners.
func NewKeySource() *KeySource {
	return &KeySource{}
}

// AddKeyDownListener registers fn for every subsequent key-down.
func (s *KeySource) AddKeyDownListener(fn func(ev *key.Event)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Listeners returns the number of registered listeners.
func (s *KeySource) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// Emit delivers ev and reports whether a listener claimed it.
func (s *KeySource) Emit(ev *key.Event) bool {
	s.mu.Lock()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(ev)
		if ev.PropagationStopped() {
			break
		}
	}
	return ev.DefaultPrevented()
}
