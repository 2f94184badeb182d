// Copyright 2026 Sam Ains
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tputils

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScopeEntry describes one debug scope to arm or disarm when the
// configuration is applied. Type is "console" (the default when omitted)
// or "table".
type ScopeEntry struct {
	Scope   string `yaml:"scope"`
	Type    string `yaml:"type,omitempty"`
	Enabled bool   `yaml:"enabled"`
}

// ScopeConfig is a YAML-backed list of debug scopes and their desired
// states. It gives operators a boot-time counterpart to the runtime
// SetDebugModeEnabled call:
//
//	scopes:
//	  - scope: render.pipeline
//	    enabled: true
//	  - scope: render.pipeline
//	    type: table
//	    enabled: true
type ScopeConfig struct {
	Scopes []ScopeEntry `yaml:"scopes"`
}

// Validate checks every entry for an empty scope path or an unknown type.
func (c *ScopeConfig) Validate() error {
	for i, entry := range c.Scopes {
		if entry.Scope == "" {
			return fmt.Errorf("scope entry %d: scope must not be empty", i)
		}
		if _, err := parseDebugType(entry.Type); err != nil {
			return fmt.Errorf("scope entry %d (%s): %w", i, entry.Scope, err)
		}
	}
	return nil
}

// Apply validates the configuration and then feeds every entry through
// SetDebugModeEnabled on s: registry entries become sticky and live gates
// are updated, exactly as if an operator had made the calls at runtime.
func (c *ScopeConfig) Apply(s *State) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, entry := range c.Scopes {
		debugType, _ := parseDebugType(entry.Type)
		s.SetDebugModeEnabled(entry.Scope, debugType, entry.Enabled)
	}
	return nil
}

// LoadScopeConfig reads and parses a scope configuration file. A missing
// file is an error; callers that treat configuration as optional should
// check with errors.Is(err, os.ErrNotExist).
func LoadScopeConfig(path string) (*ScopeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scope config: %w", err)
	}
	cfg := &ScopeConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse scope config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scope config %q: %w", path, err)
	}
	return cfg, nil
}

// SaveScopeConfig writes the configuration to path as YAML, creating or
// truncating the file.
func SaveScopeConfig(path string, cfg *ScopeConfig) error {
	if cfg == nil {
		return errors.New("save scope config: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("save scope config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode scope config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scope config: %w", err)
	}
	return nil
}

// parseDebugType maps a config type string to a DebugType. Empty means
// console.
func parseDebugType(s string) (DebugType, error) {
	switch s {
	case "", "console":
		return DebugTypeConsole, nil
	case "table":
		return DebugTypeTable, nil
	default:
		return DebugTypeConsole, fmt.Errorf("unknown debug type %q", s)
	}
}
