package config

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrReloadNotSupported is returned by [Holder.Reload] when the holder was
// created without a loader.
var ErrReloadNotSupported = errors.New("config reload is not supported")

// Loader builds a fresh, validated configuration from all sources.
type Loader func() (*StructuredConfig, error)

// Holder owns the process-wide configuration. Reads never block: every
// [Holder.Snapshot] returns a full copy of the current value, and
// [Holder.Reload] swaps the whole value at once, so concurrent readers see
// either the old or the new configuration, never a mix of both.
type Holder struct {
	current atomic.Pointer[StructuredConfig]
	loader  Loader

	// reloadMu serializes reloads and listener registration.
	reloadMu  sync.Mutex
	listeners []func(StructuredConfig)
}

// NewHolder stores a private copy of cfg. loader may be nil, in which case
// the configuration is fixed for the lifetime of the holder.
func NewHolder(cfg *StructuredConfig, loader Loader) *Holder {
	h := &Holder{loader: loader}
	clone := cfg.Clone()
	h.current.Store(&clone)
	return h
}

// Snapshot returns a copy of the current configuration.
func (h *Holder) Snapshot() StructuredConfig {
	return h.current.Load().Clone()
}

// OnReload registers fn to be called with the new configuration after every
// successful reload.
func (h *Holder) OnReload(fn func(StructuredConfig)) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()
	h.listeners = append(h.listeners, fn)
}

// Reload rebuilds the configuration and atomically replaces the current one.
// On error the previous configuration stays in effect.
func (h *Holder) Reload() error {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()

	if h.loader == nil {
		return ErrReloadNotSupported
	}

	cfg, err := h.loader()
	if err != nil {
		return fmt.Errorf("error reloading config: %w", err)
	}

	clone := cfg.Clone()
	h.current.Store(&clone)

	for _, fn := range h.listeners {
		fn(clone.Clone())
	}

	return nil
}
