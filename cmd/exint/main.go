// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// exint is a reverse Polish notation calculator for integers of arbitrary
// size.
package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/db47h/exint/cmd/exint/command"
)

func main() {
	defer glog.Flush()
	if err := command.Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "exint:", err)
		glog.Flush()
		os.Exit(1)
	}
}
