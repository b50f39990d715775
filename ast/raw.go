package ast

// Raw is a chunk of unprocessed document text tagged with the encoding
// it arrived in. Text nodes and attribute fragments store their payload
// as a Raw; the tag is what lets the tree reject mixed-mode content.
type Raw struct {
	data []byte
	mode Mode
}

// Str wraps a string payload.
func Str(s string) Raw { return Raw{data: []byte(s), mode: ModeString} }

// Bytes wraps a bytes payload. The slice is not copied.
func Bytes(b []byte) Raw { return Raw{data: b, mode: ModeBytes} }

// RawIn wraps b in the given mode. Engines use it so one code path can
// emit payloads matching the mode of the document being parsed.
func RawIn(mode Mode, b []byte) Raw { return Raw{data: b, mode: mode} }

func (r Raw) Mode() Mode { return r.mode }

// Value returns the payload bytes regardless of mode.
func (r Raw) Value() []byte { return r.data }

func (r Raw) String() string { return string(r.data) }
