// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package slz

import (
	"fmt"
	"io"
	"os"

	"go.mindeco.de/log"
	"go.mindeco.de/log/level"
)

// DefaultMaxAlloc bounds the length prefixes a context accepts.
const DefaultMaxAlloc = 1 << 30

// Handler is called when an error is raised outside of a catch scope.
// It must not return; if it does, the raise panics.
type Handler func(ctx *Context, userdata interface{})

// exit terminates the process for the perror handler.
var exit = os.Exit

// Context carries the error state of one logical sequence of codec calls.
// It is not safe for concurrent use.
type Context struct {
	state  Kind
	origin Origin
	scope  *Scope

	handler  Handler
	userdata interface{}

	last *Error

	logger   log.Logger
	maxAlloc uint64
}

// Option configures a Context.
type Option func(*Context)

// WithLogger makes the context log every raise at debug level.
func WithLogger(l log.Logger) Option {
	return func(c *Context) {
		c.logger = log.With(l, "unit", "slz")
	}
}

// WithMaxAlloc sets the largest length prefix GetBlob, GetString and
// GetValue will allocate for.
func WithMaxAlloc(n uint64) Option {
	return func(c *Context) {
		c.maxAlloc = n
	}
}

// NewContext returns a context that calls h with userdata when an error is
// raised outside of a catch scope.
func NewContext(h Handler, userdata interface{}, opts ...Option) *Context {
	c := &Context{
		handler:  h,
		userdata: userdata,
		logger:   log.NewNopLogger(),
		maxAlloc: DefaultMaxAlloc,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// NewContextWithPerror returns a context whose top-level handler prints the
// diagnostic to stderr, prefixed with prefix, and exits with status 1.
func NewContextWithPerror(prefix string, opts ...Option) *Context {
	return NewContext(perrorHandler, prefix, opts...)
}

func perrorHandler(ctx *Context, userdata interface{}) {
	prefix, _ := userdata.(string)
	ctx.Perror(os.Stderr, prefix)
	exit(1)
}

// Failed returns whether an error is pending.
func (c *Context) Failed() bool {
	return c.state != KindNone
}

// Kind returns the kind of the pending error, or KindNone.
func (c *Context) Kind() Kind { return c.state }

// Origin returns which end raised the pending error.
func (c *Context) Origin() Origin { return c.origin }

// Err returns the pending error, or nil.
func (c *Context) Err() *Error {
	if !c.Failed() {
		return nil
	}
	return c.last
}

// ClearError resets the context so it can be used again.
// It does not reset the failed flag of the source or sink that raised.
func (c *Context) ClearError() {
	if !c.Failed() {
		panic("slz: ClearError without a pending error")
	}
	c.state = KindNone
	c.origin = OriginNone
	c.last = nil
}

// Diagnostic formats the pending error, perror style.
func (c *Context) Diagnostic(prefix string) string {
	if !c.Failed() {
		panic("slz: Diagnostic without a pending error")
	}
	if prefix == "" {
		return c.last.Error()
	}
	return prefix + ": " + c.last.Error()
}

// Perror writes Diagnostic(prefix) and a newline to w.
func (c *Context) Perror(w io.Writer, prefix string) {
	fmt.Fprintln(w, c.Diagnostic(prefix))
}

// Raise records an error and unwinds to the Try of the open catch scope.
// Outside of Try it ends the scope and calls the top-level handler. Raise
// never returns.
//
// origin is the *Source or *Sink the error is about, or nil.
func (c *Context) Raise(kind Kind, origin interface{}, detail error) {
	e := &Error{Kind: kind, Err: detail}
	switch o := origin.(type) {
	case *Source:
		e.Origin, e.Source = OriginSource, o
	case *Sink:
		e.Origin, e.Sink = OriginSink, o
	}
	c.raise(e)
}

func (c *Context) raise(e *Error) {
	if c.Failed() {
		panic("slz: raise while an error is pending")
	}
	if e.Kind == KindNone {
		e.Kind = KindUnknown
	}

	if e.Source != nil {
		e.Source.failed = true
	}
	if e.Sink != nil {
		e.Sink.failed = true
	}

	c.state = e.Kind
	c.origin = e.Origin
	c.last = e

	level.Debug(c.logger).Log("event", "raise", "kind", e.Kind, "origin", e.Origin, "err", e)

	if s := c.scope; s != nil {
		c.scope = nil
		if s.trying {
			panic(unwind{scope: s})
		}
	}

	if c.handler != nil {
		c.handler(c, c.userdata)
	}
	panic(fmt.Sprintf("slz: top-level handler returned: %s", e))
}

// mustBeClean guards every codec call.
func (c *Context) mustBeClean() {
	if c.Failed() {
		panic("slz: codec call with pending error: " + c.last.Error())
	}
}
