// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ParseVaultDir resolves a vault directory spec to an absolute path. A
// relative spec is resolved against the current working directory and a
// trailing path separator is dropped. It returns an error if the fs entry
// does not exist, is empty or is not a directory.
func ParseVaultDir(vaultDir string) (string, error) {
	if vaultDir == "" {
		return "", os.ErrInvalid
	}

	dir := strings.TrimSuffix(vaultDir, string(os.PathSeparator))

	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(cwd, dir)
	}

	// If the vault dir is not a directory, return an error.
	if r, err := os.Stat(dir); err != nil {
		return "", err
	} else if !r.IsDir() {
		return "", os.ErrInvalid
	}

	return dir, nil
}
