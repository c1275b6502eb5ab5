// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/db47h/exint"
	"github.com/db47h/exint/cmd/exint/rpn"
)

// ErrFailed is returned by the eval command when at least one input line
// failed to evaluate.
var ErrFailed = errors.New("evaluation failed")

var (
	evalArgs = struct {
		Base  int
		Trace bool
	}{}

	Eval = &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate RPN expressions given as arguments, or read from stdin one per line.",
		Long: `Evaluate RPN expressions given as arguments, or read from stdin one per line.

Tokens are decimal integers, with an optional leading '-', and the operators
  + - * / % & | ^ ~ neg abs << >> sqrt pow gcd fact binom pi dup swap drop divmod
Division truncates toward zero.

Flags may appear anywhere on the command line. An argument made of a '-'
followed by a digit is a negative number, never a flag; arguments after "--"
are all part of the expression.`,
		Example: `exint eval 2 64 pow 1 -
exint eval -7 3 divmod --trace
echo "-7 3 divmod" | exint eval --trace`,
		// cobra would read -7 as a shorthand flag; commandEval parses the
		// flags itself.
		DisableFlagParsing: true,
		RunE:               commandEval,
	}
)

func init() {
	Eval.Flags().IntVarP(&evalArgs.Base, "base", "b", 10, "output base, in [2, 36]")
	Eval.Flags().BoolVarP(&evalArgs.Trace, "trace", "t", false, "print the whole stack instead of its top")
}

func commandEval(cmd *cobra.Command, args []string) error {
	fs := cmd.Flags()
	fs.AddFlagSet(cmd.InheritedFlags())
	flags, args := splitArgs(fs, args)
	if err := fs.Parse(flags); err != nil {
		return errors.Wrap(err, "eval")
	}
	if help, _ := fs.GetBool("help"); help {
		return cmd.Help()
	}
	if evalArgs.Base < 2 || evalArgs.Base > exint.MaxBase {
		return errors.Newf("eval: invalid base %d", evalArgs.Base)
	}
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		return evalLine(out, strings.Join(args, " "))
	}

	failed := 0
	s := bufio.NewScanner(cmd.InOrStdin())
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := evalLine(out, line); err != nil {
			glog.V(1).Infof("line %d: %+v", n, err)
			fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %v\n", n, err)
			failed++
		}
	}
	if err := s.Err(); err != nil {
		return errors.Wrap(err, "eval: reading input")
	}
	if failed > 0 {
		return errors.Wrapf(ErrFailed, "%d line(s)", failed)
	}
	return nil
}

// splitArgs separates flags, with their values, from the tokens of the
// expression.
func splitArgs(fs *pflag.FlagSet, args []string) (flags, expr []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return flags, append(expr, args[i+1:]...)
		case len(a) < 2 || a[0] != '-' || '0' <= a[1] && a[1] <= '9':
			expr = append(expr, a)
			continue
		}
		flags = append(flags, a)
		if takesNext(fs, a) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return flags, expr
}

// takesNext reports whether the flag argument a reads its value from the
// following argument.
func takesNext(fs *pflag.FlagSet, a string) bool {
	if name, ok := strings.CutPrefix(a, "--"); ok {
		if strings.Contains(name, "=") {
			return false
		}
		f := fs.Lookup(name)
		return f != nil && f.NoOptDefVal == ""
	}
	// grouped shorthands: -tb 16, -tb16
	for i := 1; i < len(a); i++ {
		f := fs.ShorthandLookup(a[i : i+1])
		if f == nil {
			return false
		}
		if f.NoOptDefVal == "" {
			return i == len(a)-1
		}
	}
	return false
}

func evalLine(w io.Writer, line string) error {
	var m rpn.Machine
	if err := m.Eval(line); err != nil {
		return err
	}
	stack := m.Stack()
	glog.V(2).Infof("%q: %d item(s) on the stack", line, len(stack))
	if len(stack) == 0 {
		return nil
	}
	if !evalArgs.Trace {
		stack = stack[len(stack)-1:]
	}
	var buf []byte
	for i, x := range stack {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = x.Append(buf, evalArgs.Base)
	}
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}
