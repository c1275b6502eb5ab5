// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package command implements the exint command line.
package command

import (
	"flag"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Root is the exint root command.
var Root = &cobra.Command{
	Use:   "exint",
	Short: "exint evaluates integer expressions of arbitrary size.",
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		glog.V(1).Infof("running %s", cmd.CommandPath())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		glog.Flush()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// glog registers its flags (-v, -logtostderr, ...) on the standard
	// library flag set.
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	Root.PersistentFlags().AddFlagSet(pflag.CommandLine)

	Root.AddCommand(Eval)
}
