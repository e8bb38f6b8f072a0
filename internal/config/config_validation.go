// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; cross-source rules live on the projected
// views ([ClientConfig.validate]).
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RetryCount < 0 || (cfg.Adapter.RetryCount > 0 && cfg.Adapter.RetryWaitTime <= 0) {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.LinkBaseURL == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
