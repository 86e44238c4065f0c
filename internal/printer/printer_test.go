package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtx_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := WithCtx(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))
}

func TestCtx_DefaultWhenUnset(t *testing.T) {
	p := Ctx(context.Background())
	require.NotNil(t, p)
}

func TestPrinter_MessagesContainText(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("wrote %s", "out.html")
	p.Warnf("slow")
	p.Errorf("failed")
	p.Infof("rendering")
	p.Printf("plain %d", 1)

	out := buf.String()
	assert.Contains(t, out, "wrote out.html")
	assert.Contains(t, out, "slow")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "rendering")
	assert.Contains(t, out, "plain 1")
}
