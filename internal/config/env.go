// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables. Struct fields are mapped
// via their `env` and `envPrefix` tags, e.g. Storage.DB.DSN is read from
// STORAGE_DB_DATABASE_URI and Notes.DeletePolicy from NOTES_DELETE_POLICY.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
