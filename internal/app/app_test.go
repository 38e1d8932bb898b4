// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/matt-FFFFFF/myapp/internal/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelloWorld(t *testing.T) {
	a := New("myapp", "1.2.3", "/srv/project")

	var buf bytes.Buffer

	require.NoError(t, a.Hello(&buf))
	require.NoError(t, a.World(&buf))
	assert.Equal(t, "Hello World: /srv/project\nHello World World World\n", buf.String())
	assert.Equal(t, "myapp 1.2.3 (/srv/project)", a.String())
}

func TestFail(t *testing.T) {
	err := New("myapp", "1.2.3", ".").Fail()
	require.Error(t, err)

	out := exitcode.Classify(err)
	assert.Equal(t, exitcode.KindApp, out.Kind)
	assert.Equal(t, exitcode.ExitFailure, out.Code)
	assert.EqualError(t, err, "myapp failed on purpose")
}

func TestContext(t *testing.T) {
	_, err := FromContext(context.Background())
	require.ErrorIs(t, err, ErrNoApp)

	a := New("myapp", "dev", ".")
	got, err := FromContext(NewContext(context.Background(), a))
	require.NoError(t, err)
	assert.Same(t, a, got)
}
