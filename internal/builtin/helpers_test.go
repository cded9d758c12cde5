// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tiwut-cli/internal/jail"
	"tiwut-cli/internal/session"
)

// testContext bundles an injected HandlerContext with its buffers.
type testContext struct {
	ctx     context.Context
	session *session.Session
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
}

func newTestContext(t *testing.T) *testContext {
	t.Helper()

	j, err := jail.New(t.TempDir())
	if err != nil {
		t.Fatalf("jail.New() returned error: %v", err)
	}
	sess := session.New(j)

	var stdout, stderr bytes.Buffer
	ctx := WithHandlerContext(context.Background(), &HandlerContext{
		Stdin:   strings.NewReader(""),
		Stdout:  &stdout,
		Stderr:  &stderr,
		Session: sess,
	})
	return &testContext{ctx: ctx, session: sess, stdout: &stdout, stderr: &stderr}
}
