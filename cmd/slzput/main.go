// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

// slzput writes its arguments as a string list to FILE.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.mindeco.de/logging"

	"github.com/ssbc/slz"
	"github.com/ssbc/slz/transport/file"
)

var check = logging.CheckFatal

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s FILE ARG...\n", os.Args[0])
		os.Exit(1)
	}
	prog := filepath.Base(os.Args[0])
	logging.SetupLogging(nil)
	log := logging.Logger(prog)

	t, err := file.Create(os.Args[1])
	check(errors.Wrap(err, "error creating output"))

	ctx := slz.NewContextWithPerror(prog, slz.WithLogger(log))
	err = ctx.Catch(func() {
		sink := slz.NewSink(ctx, t)
		sink.PutStrings(os.Args[2:])
		check(sink.Close())
	})
	if err != nil {
		ctx.Perror(os.Stderr, prog)
		os.Exit(1)
	}
}
