package gelf

import (
	"encoding/json"
	"net"
	"os"
	"strings"
	"time"
)

// Writer sends GELF messages over UDP and implements io.Writer
// so it can sit next to stdout under the slog handler.
type Writer struct {
	conn     net.Conn
	hostname string
	now      func() time.Time
}

// New creates a GELF UDP writer connected to addr (e.g. "172.17.0.1:12201").
func New(addr string) (*Writer, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, err
	}

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "foreverfamily-server"
	}

	return &Writer{conn: conn, hostname: hostname, now: time.Now}, nil
}

// Write implements io.Writer. Each call carries one slog line, either
// text (level=INFO msg=...) or JSON, and becomes one GELF message.
func (w *Writer) Write(p []byte) (int, error) {
	payload, err := json.Marshal(w.message(strings.TrimRight(string(p), "\n")))
	if err != nil {
		return len(p), nil // don't fail the log call
	}

	// Fire-and-forget
	w.conn.Write(payload)
	return len(p), nil
}

// Close releases the UDP socket.
func (w *Writer) Close() error {
	return w.conn.Close()
}

func (w *Writer) message(line string) map[string]any {
	msg := map[string]any{
		"version":       "1.1",
		"host":          w.hostname,
		"short_message": line,
		"full_message":  line,
		"timestamp":     float64(w.now().UnixNano()) / 1e9,
		"level":         syslogLevel(textLevel(line)),
		"_service":      "foreverfamily",
	}

	var fields map[string]any
	if strings.HasPrefix(line, "{") && json.Unmarshal([]byte(line), &fields) == nil {
		if m, ok := fields["msg"].(string); ok {
			msg["short_message"] = m
		}
		if l, ok := fields["level"].(string); ok {
			msg["level"] = syslogLevel(l)
		}
		for k, v := range fields {
			switch k {
			case "msg", "level", "time":
				continue
			}
			msg["_"+k] = v
		}
	}
	return msg
}

// textLevel pulls the level out of a slog text line.
func textLevel(line string) string {
	i := strings.Index(line, "level=")
	if i < 0 {
		return ""
	}
	rest := line[i+len("level="):]
	if j := strings.IndexByte(rest, ' '); j >= 0 {
		rest = rest[:j]
	}
	return rest
}

func syslogLevel(level string) int {
	switch {
	case strings.HasPrefix(level, "ERROR"):
		return 3
	case strings.HasPrefix(level, "WARN"):
		return 4
	case strings.HasPrefix(level, "DEBUG"):
		return 7
	default:
		return 6 // Informational
	}
}
