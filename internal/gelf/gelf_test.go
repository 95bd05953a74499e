package gelf

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWriter() *Writer {
	return &Writer{hostname: "test-host", now: func() time.Time { return time.Unix(1735725600, 0) }}
}

func TestMessage_TextLine(t *testing.T) {
	msg := testWriter().message(`time=2025-01-01T10:00:00.000Z level=WARN msg="admin key rejected" path=/api/steps`)

	assert.Equal(t, 4, msg["level"])
	assert.Equal(t, "test-host", msg["host"])
	assert.Contains(t, msg["short_message"], "admin key rejected")
}

func TestMessage_JSONLine(t *testing.T) {
	msg := testWriter().message(`{"time":"2025-01-01T10:00:00Z","level":"ERROR","msg":"write failed","collection":"steps"}`)

	assert.Equal(t, 3, msg["level"])
	assert.Equal(t, "write failed", msg["short_message"])
	assert.Equal(t, "steps", msg["_collection"])
	assert.NotContains(t, msg, "_time")
}

func TestSyslogLevel(t *testing.T) {
	assert.Equal(t, 7, syslogLevel("DEBUG"))
	assert.Equal(t, 6, syslogLevel("INFO"))
	assert.Equal(t, 6, syslogLevel(""))
	assert.Equal(t, 4, syslogLevel("WARN"))
	assert.Equal(t, 3, syslogLevel("ERROR+2"))
}

func TestWriter_SendsUDP(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	w, err := New(pc.LocalAddr().String())
	require.NoError(t, err)
	defer w.Close()

	line := "time=2025-01-01T10:00:00Z level=INFO msg=hello\n"
	n, err := w.Write([]byte(line))
	require.NoError(t, err)
	assert.Equal(t, len(line), n)

	require.NoError(t, pc.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 4096)
	n, _, err = pc.ReadFrom(buf)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf[:n], &got))
	assert.Equal(t, "1.1", got["version"])
	assert.Equal(t, "foreverfamily", got["_service"])
	assert.Equal(t, float64(6), got["level"])
}
