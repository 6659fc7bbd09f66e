// SPDX-License-Identifier: MIT

//go:build lite
// +build lite

package badger

// DefaultProfile is what New uses.
const DefaultProfile = ProfileLite
