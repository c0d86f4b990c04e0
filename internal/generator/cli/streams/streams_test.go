package streams

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIn(t *testing.T) {
	in := NewIn(strings.NewReader("line\n"))

	data, err := io.ReadAll(in)
	require.NoError(t, err)
	require.Equal(t, "line\n", string(data))
	require.False(t, in.IsTerminal())
	require.NoError(t, in.Close())
}

func TestOut(t *testing.T) {
	buf := new(bytes.Buffer)
	out := NewOut(buf)

	_, err := out.Write([]byte("text"))
	require.NoError(t, err)
	require.Equal(t, "text", buf.String())
	require.False(t, out.IsTerminal())
	require.NoError(t, out.Close())
}
