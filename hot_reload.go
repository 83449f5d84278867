// hot_reload.go: dynamic configuration with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package quickleaf

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotConfig watches a configuration file via Argus and applies supported
// changes to a running Cache without reconstruction.
//
// Only DefaultTTL is hot-reloadable: Capacity is fixed at construction
// because changing it would require rebuilding the entry store, which
// this type intentionally does not attempt.
type HotConfig struct {
	cache   Cache
	watcher *argus.Watcher
	mu      sync.RWMutex
	ttlMs   *int64

	// OnReload is called after a configuration change is applied.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(oldTTLMs, newTTLMs *int64)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after configuration is successfully reloaded.
	OnReload func(oldTTLMs, newTTLMs *int64)

	// Logger for hot reload operations. If nil, uses NoOpLogger.
	Logger Logger
}

// NewHotConfig creates a new hot-reloadable configuration for a cache and
// starts watching the configuration file immediately.
//
// Supported configuration keys:
//   - cache.default_ttl_ms (int): default TTL applied to future inserts
//     that do not specify one explicitly
//
// Example configuration file (YAML):
//
//	cache:
//	  default_ttl_ms: 30000
func NewHotConfig(cache Cache, opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	hc := &HotConfig{
		cache:    cache,
		OnReload: opts.OnReload,
		ttlMs:    cache.GetDefaultTTL(),
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
func (hc *HotConfig) Start() error {
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// CurrentTTL returns the default TTL currently applied (thread-safe).
func (hc *HotConfig) CurrentTTL() *int64 {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.ttlMs
}

// handleConfigChange is called by Argus when the configuration file changes.
func (hc *HotConfig) handleConfigChange(configData map[string]interface{}) {
	newTTL := hc.parseDefaultTTL(configData)

	hc.mu.Lock()
	oldTTL := hc.ttlMs
	hc.ttlMs = newTTL
	hc.mu.Unlock()

	hc.cache.SetDefaultTTL(newTTL)

	if hc.OnReload != nil {
		hc.OnReload(oldTTL, newTTL)
	}
}

// parseDefaultTTL extracts cache.default_ttl_ms from Argus config data.
// Supports both int and float64 (YAML/JSON may decode numbers either way).
func (hc *HotConfig) parseDefaultTTL(data map[string]interface{}) *int64 {
	cacheSection, ok := data["cache"].(map[string]interface{})
	if !ok {
		if _, hasTTL := data["default_ttl_ms"]; hasTTL {
			cacheSection = data
		} else {
			return hc.ttlMs
		}
	}

	switch v := cacheSection["default_ttl_ms"].(type) {
	case int:
		ttl := int64(v)
		return &ttl
	case int64:
		ttl := v
		return &ttl
	case float64:
		ttl := int64(v)
		return &ttl
	default:
		return hc.ttlMs
	}
}
