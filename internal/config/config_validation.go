// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if _, err := cfg.App.MasterKeyBytes(); err != nil {
		return err
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and a positive token duration are required", ErrInvalidAppConfigs)
	}

	if cfg.App.LinkPolicy != LinkPolicyMultiUse && cfg.App.LinkPolicy != LinkPolicySingleUse {
		return fmt.Errorf("%w: unknown link policy %q", ErrInvalidAppConfigs, cfg.App.LinkPolicy)
	}

	if cfg.App.Argon2.Time == 0 || cfg.App.Argon2.MemoryKiB == 0 || cfg.App.Argon2.Threads == 0 {
		return fmt.Errorf("%w: argon2 parameters must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.QueryTimeout <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listener configured", ErrInvalidServerConfigs)
	}

	if cfg.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.ReapInterval <= 0 || cfg.Workers.SweepTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: bad base url %q", ErrInvalidAdapterConfigs, cfg.BaseURL)
	}

	if cfg.RequestTimeout <= 0 || cfg.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
