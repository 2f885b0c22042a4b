// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] satisfies all
// invariants required at startup. Defaults must be applied beforehand.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}
	if cfg.App.SessionTTL < 0 {
		return fmt.Errorf("%w: negative session ttl", ErrInvalidAppConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	switch cfg.Notes.DeletePolicy {
	case DeletePolicySoft, DeletePolicyRetain:
	default:
		return fmt.Errorf("%w: unknown delete policy %q", ErrInvalidNotesConfigs, cfg.Notes.DeletePolicy)
	}

	if cfg.Workers.SessionSweepInterval < 0 {
		return fmt.Errorf("%w: negative sweep interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
