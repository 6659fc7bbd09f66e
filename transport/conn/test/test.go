// SPDX-License-Identifier: MIT

package test

import (
	"net"
	"testing"

	"github.com/pkg/errors"

	"github.com/ssbc/slz"
	stest "github.com/ssbc/slz/test"
	"github.com/ssbc/slz/transport/conn"
)

func init() {
	stest.Register("conn/tcp", func(t *testing.T) (slz.WriteTransport, stest.OpenFunc) {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { l.Close() })

		accepted := make(chan net.Conn, 1)
		go func() {
			c, err := l.Accept()
			if err != nil {
				close(accepted)
				return
			}
			accepted <- c
		}()

		w, err := conn.Dial("tcp", l.Addr().String())
		if err != nil {
			t.Fatal(err)
		}
		return w, func() (slz.ReadTransport, error) {
			c, ok := <-accepted
			if !ok {
				return nil, errors.New("accept failed")
			}
			return conn.New(c), nil
		}
	})
}
