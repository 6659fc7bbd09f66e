// SPDX-License-Identifier: MIT

//go:build !lite
// +build !lite

package badger

// DefaultProfile is what New uses. Build with the lite tag to switch it.
const DefaultProfile = ProfileDefault
