// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

// Package slz implements a small self-describing binary serialization format.
//
// Every stream starts with a header: the magic bytes "slz-" followed by the
// dotted decimal version of the library that wrote it and a NUL byte.
//
//	offset 0: 's' 'l' 'z' '-'
//	offset 4: <major> '.' <minor> '.' <bugfix> 0x00
//
// After the header, the application writes whatever sequence of big-endian
// primitives it likes. Nothing else is framed by the library.
//
// Errors are signalled through a Context. Codec calls do not return errors;
// instead they raise, which unwinds to the open catch scope:
//
//	ctx := slz.NewContextWithPerror("myprog")
//	err := ctx.Catch(func() {
//		src := slz.NewSource(ctx, tr)
//		n := src.GetInt32()
//		...
//	})
//	if err != nil {
//		ctx.Perror(os.Stderr, "myprog")
//	}
//
// A raise outside of Catch or Scope.Try calls the context's top-level handler,
// which is not expected to return.
//
// Byte transports are pluggable. See the transport subpackages for file,
// memory, socket and key-value backed implementations.
package slz // import "github.com/ssbc/slz"
