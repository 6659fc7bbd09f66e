// SPDX-License-Identifier: MIT

// Package test holds the conformance suite every slz transport has to pass.
// Transport packages register themselves from a test subpackage, see
// test/all for the driver.
package test // import "github.com/ssbc/slz/test"

import (
	"sort"
	"testing"

	"github.com/ssbc/slz"
)

// OpenFunc opens a read transport over everything written to the write
// transport it was returned with. It is only called after that transport
// was closed.
type OpenFunc func() (slz.ReadTransport, error)

// NewPairFunc returns a fresh write transport and the way to read it back.
type NewPairFunc func(t *testing.T) (slz.WriteTransport, OpenFunc)

var NewPairFuncs map[string]NewPairFunc

func init() {
	NewPairFuncs = map[string]NewPairFunc{}
}

func Register(name string, f NewPairFunc) {
	NewPairFuncs[name] = f
}

func RunTests(t *testing.T) {
	names := make([]string, 0, len(NewPairFuncs))
	for name := range NewPairFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	t.Logf("found transports %v", names)

	for _, name := range names {
		t.Run(name, TransportTest(NewPairFuncs[name]))
	}
}
