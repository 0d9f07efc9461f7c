// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"github.com/spf13/afero"
)

// FsFactory returns the filesystem used to read manifests.
// Tests stub this to use an in-memory filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}
