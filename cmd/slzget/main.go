// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

// slzget prints the string list stored in FILE by slzput.
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
		fmt.Fprintf(os.Stderr, "usage: %s FILE\n", os.Args[0])
		os.Exit(1)
	}
	prog := filepath.Base(os.Args[0])
	logging.SetupLogging(nil)
	log := logging.Logger(prog)

	t, err := file.Open(os.Args[1])
	check(errors.Wrap(err, "error opening input"))

	ctx := slz.NewContextWithPerror(prog, slz.WithLogger(log))
	var strs []string
	err = ctx.Catch(func() {
		src := slz.NewSource(ctx, t)
		defer src.Close()
		strs = src.GetStrings()
	})
	if err != nil {
		ctx.Perror(os.Stderr, prog)
		os.Exit(1)
	}

	fmt.Printf("num strs: %d\n", len(strs))
	for _, s := range strs {
		fmt.Println(s)
	}
}
