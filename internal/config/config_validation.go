// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the merged [StructuredConfig] can start the server.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 ||
		cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		err = errors.Join(err, ErrInvalidServerConfigs)
	}

	if cfg.Workers.ImageCleanupQueueSize < 1 {
		err = errors.Join(err, ErrInvalidWorkerConfigs)
	}

	return err
}
