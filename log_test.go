package tagwire

import "testing"

type recordingLogger struct {
	debug, info, warn, errorCalls int
	lastMsg                       string
}

func (l *recordingLogger) Debug(msg string, f Fields) { l.debug++; l.lastMsg = msg }
func (l *recordingLogger) Info(msg string, f Fields)  { l.info++; l.lastMsg = msg }
func (l *recordingLogger) Warn(msg string, f Fields)  { l.warn++; l.lastMsg = msg }
func (l *recordingLogger) Error(msg string, f Fields) { l.errorCalls++; l.lastMsg = msg }

func TestDecoderLogsSuccess(t *testing.T) {
	rec := &recordingLogger{}
	dec := NewDecoder(DecodeOptions{Logger: rec})
	data, err := Marshal(uint32(7))
	if err != nil {
		t.Fatal(err)
	}
	var out uint32
	if err := dec.Decode(data, &out); err != nil {
		t.Fatal(err)
	}
	if rec.debug != 1 || rec.errorCalls != 0 {
		t.Fatalf("debug=%d error=%d", rec.debug, rec.errorCalls)
	}
}

func TestDecoderLogsFailure(t *testing.T) {
	rec := &recordingLogger{}
	dec := NewDecoder(DecodeOptions{Logger: rec})
	var out uint32
	if err := dec.Decode([]byte{0xFF}, &out); err == nil {
		t.Fatal("expected decode error for invalid type id")
	}
	if rec.errorCalls != 1 {
		t.Fatalf("error calls = %d, want 1", rec.errorCalls)
	}
}

func TestNewDecoderDefaultsToNopLogger(t *testing.T) {
	dec := NewDecoder(DecodeOptions{})
	data, err := Marshal(uint32(1))
	if err != nil {
		t.Fatal(err)
	}
	var out uint32
	if err := dec.Decode(data, &out); err != nil {
		t.Fatal(err)
	}
}
