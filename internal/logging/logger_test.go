package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"
)

func TestOutputIsJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	fields := Fields{"match_id": "m-1"}
	Error("turn failed", errors.New("boom"), fields)

	var got map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &got); err != nil {
		t.Fatalf("expected a JSON line, got %q: %v", buf.String(), err)
	}
	if got["level"] != "error" || got["msg"] != "turn failed" || got["error"] != "boom" || got["match_id"] != "m-1" {
		t.Fatalf("unexpected log line: %v", got)
	}
	if _, ok := fields["error"]; ok {
		t.Fatalf("caller fields must not be modified")
	}
}
