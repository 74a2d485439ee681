package tagwire

// Fields carries structured key-value context for a single log entry,
// mirroring the shape cascache.Fields uses to bridge into concrete logging
// backends without this package depending on any of them directly.
type Fields map[string]any

// Logger is the structured-logging hook the codec's [Decoder] accepts (see
// [DecodeOptions]). A nil Logger is always a silent no-op, so
// taking a dependency on a concrete backend (zap, logrus, ...) is entirely
// the caller's choice — see the tagwire/log/zap and tagwire/log/logrus
// subpackages for ready-made adapters.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// nopLogger discards everything. It is the default when no Logger is
// configured.
type nopLogger struct{}

func (nopLogger) Debug(string, Fields) {}
func (nopLogger) Info(string, Fields)  {}
func (nopLogger) Warn(string, Fields)  {}
func (nopLogger) Error(string, Fields) {}

// DecodeOptions configures optional tracing for decode operations that go
// through [NewDecoder] rather than the bare [Unmarshal] entry point.
type DecodeOptions struct {
	Logger Logger
}

// Decoder wraps [Unmarshal] with optional structured logging of the outcome
// of each decode call. Field-level decode decisions (skips, order
// violations, enum dispatch) are not logged. The core codec itself takes no
// logging dependency; Decoder is a thin, opt-in layer on top of it.
type Decoder struct {
	log Logger
}

// NewDecoder creates a Decoder. A zero-value DecodeOptions disables
// tracing.
func NewDecoder(opts DecodeOptions) *Decoder {
	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}
	return &Decoder{log: log}
}

// Decode behaves like [Unmarshal], additionally emitting a Debug log entry
// carrying the payload's byte count on success and an Error entry carrying
// the error text on failure.
func (d *Decoder) Decode(data []byte, v any) error {
	err := Unmarshal(data, v)
	if err != nil {
		d.log.Error("tagwire: decode failed", Fields{"error": err.Error()})
		return err
	}
	d.log.Debug("tagwire: decode ok", Fields{"bytes": len(data)})
	return nil
}
