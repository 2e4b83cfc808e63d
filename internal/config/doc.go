// Package config provides the configuration for scribe.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← SCRIBE_*
//	├─────────────────────────────┤
//	│  2. User Config File        │  ← ~/.config/scribe/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Files are decoded by extension: .toml with go-toml and .yaml or .yml
// with yaml.v3. A missing file is not an error; Load returns the defaults.
//
// # Example
//
//	cfg, err := config.Load(config.OSReader(), config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	cfg = cfg.ApplyEnv(os.LookupEnv)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// # Hot Reload
//
// Watcher reports writes to the config file and to the open document using
// fsnotify. Bursts of events for the same file are coalesced.
package config
