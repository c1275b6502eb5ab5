// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/exint/cmd/exint/command"
)

// run executes the root command. Flags keep their values between runs, so
// callers set every eval flag explicitly.
func run(stdin string, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	command.Root.SetArgs(args)
	command.Root.SetIn(strings.NewReader(stdin))
	command.Root.SetOut(&out)
	command.Root.SetErr(&errOut)
	err = command.Root.Execute()
	return out.String(), errOut.String(), err
}

func TestEvalArgs(t *testing.T) {
	out, _, err := run("", "eval", "--base=10", "--trace=false", "2", "64", "pow", "1", "-")
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615\n", out)

	out, _, err = run("", "eval", "--base=16", "--trace=true", "-7", "3", "divmod")
	require.NoError(t, err)
	assert.Equal(t, "-2 -1\n", out)

	// negative numbers are tokens, wherever the flags are
	out, _, err = run("", "eval", "2", "100", "<<", "-3", "/", "--base", "10", "-t=false")
	require.NoError(t, err)
	assert.Equal(t, "-422550200076076467165567735125\n", out)

	out, _, err = run("", "eval", "-7", "3", "-tb", "2", "divmod")
	require.NoError(t, err)
	assert.Equal(t, "-10 -1\n", out)

	out, _, err = run("", "eval", "-b16", "--trace=false", "-255", "-1", "*")
	require.NoError(t, err)
	assert.Equal(t, "ff\n", out)

	// tokens starting with '-' after "--" are not flags
	out, _, err = run("", "eval", "--base=10", "--trace=false", "--", "-1", "-1", "*")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestEvalStdin(t *testing.T) {
	in := `123 -456 +
# comment

1 0 /
1000000007 dup *
+
`
	out, errOut, err := run(in, "eval", "--base=10", "--trace=false")
	require.Error(t, err)
	assert.True(t, errors.Is(err, command.ErrFailed))
	assert.Equal(t, "-333\n1000000014000000049\n", out)
	assert.Equal(t, "line 4: \"/\": exint: div: division by zero\nline 6: \"+\": stack underflow\n", errOut)
}

func TestEvalBadBase(t *testing.T) {
	_, _, err := run("", "eval", "--base=37", "--trace=false", "1")
	require.Error(t, err)
}

func TestEvalBadFlag(t *testing.T) {
	_, _, err := run("", "eval", "--base=10", "--trace=false", "-x", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown shorthand flag")
}
