// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package slz

// unwind is the panic value of a raise inside Try. Only the Try of the
// same scope recovers it.
type unwind struct {
	scope *Scope
}

// Scope is a catch scope. Errors raised while it runs Try unwind to Try.
//
// Note how the scope is opened /before/ the code that can raise:
//
//	s := ctx.Open()
//	defer s.End()
//	err := s.Try(func() {
//		v = src.GetInt32()
//	})
//
// A raise between Open and Try, or after Try returned, goes to the
// top-level handler and ends the scope.
type Scope struct {
	ctx    *Context
	trying bool
}

// Open establishes a catch scope. Scopes don't nest: opening a second one,
// or opening one while an error is pending, panics.
func (c *Context) Open() *Scope {
	if c.Failed() {
		panic("slz: catch opened with pending error: " + c.last.Error())
	}
	if c.scope != nil {
		panic("slz: catch scope already active")
	}
	c.scope = &Scope{ctx: c}
	return c.scope
}

// Active returns whether s is the open scope of its context.
func (s *Scope) Active() bool {
	return s.ctx.scope == s
}

// Try runs fn. It returns nil if fn completes and the raised error if it
// doesn't, in which case the scope is no longer active. Panics other than
// raises unwinding to s are passed on.
func (s *Scope) Try(fn func()) (err error) {
	if !s.Active() {
		panic("slz: Try on inactive catch scope")
	}
	if s.trying {
		panic("slz: Try called from inside Try")
	}

	s.trying = true
	defer func() {
		s.trying = false
		r := recover()
		if r == nil {
			return
		}
		if u, ok := r.(unwind); ok && u.scope == s {
			err = s.ctx.last
			return
		}
		panic(r)
	}()

	fn()
	return nil
}

// End deactivates the scope. It is a no-op if s is no longer the open
// scope, which makes it usable with defer.
func (s *Scope) End() {
	if !s.Active() {
		return
	}
	if s.ctx.Failed() {
		panic("slz: catch scope ended with pending error")
	}
	s.ctx.scope = nil
}

// Catch runs fn inside a fresh catch scope and returns the raised error, if
// any. The error stays pending on the context until ClearError.
func (c *Context) Catch(fn func()) error {
	s := c.Open()
	defer s.End()
	return s.Try(fn)
}
