// SPDX-License-Identifier: MIT

package test

import (
	"path/filepath"
	"testing"

	"github.com/ssbc/slz"
	stest "github.com/ssbc/slz/test"
	"github.com/ssbc/slz/transport/file"
)

func init() {
	stest.Register("file", func(t *testing.T) (slz.WriteTransport, stest.OpenFunc) {
		name := filepath.Join(t.TempDir(), "stream.slz")
		w, err := file.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		return w, func() (slz.ReadTransport, error) {
			return file.Open(name)
		}
	})
}
