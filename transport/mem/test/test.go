// SPDX-License-Identifier: MIT

package test

import (
	"testing"

	"github.com/ssbc/slz"
	stest "github.com/ssbc/slz/test"
	"github.com/ssbc/slz/transport/mem"
)

func init() {
	stest.Register("mem", func(*testing.T) (slz.WriteTransport, stest.OpenFunc) {
		w := mem.NewWriter()
		return w, func() (slz.ReadTransport, error) {
			return mem.NewReader(w.Bytes()), nil
		}
	})
}
