package listener

import (
	"io"

	"gopkg.in/yaml.v3"
)

// event mirrors §6's trace line: `- { type, id, x, y, f, g }`. Source,
// destination, expand and generate events all use the same shape; unused
// fields are simply zero and still emitted, matching a flat YAML sequence.
// No "close" event type is written: Close only ends the stream.
type event struct {
	Type string  `yaml:"type"`
	ID   uint64  `yaml:"id"`
	X    uint32  `yaml:"x"`
	Y    uint32  `yaml:"y"`
	F    float64 `yaml:"f"`
	G    float64 `yaml:"g"`
}

// YAMLTrace streams each event to w immediately as a YAML sequence item,
// the way the original's stream_listener writes as it goes rather than
// buffering. Each call encodes and flushes one `- {...}` document.
type YAMLTrace struct {
	enc *yaml.Encoder
}

// NewYAMLTrace returns a trace listener writing to w.
func NewYAMLTrace(w io.Writer) *YAMLTrace {
	return &YAMLTrace{enc: yaml.NewEncoder(w)}
}

func (t *YAMLTrace) write(e event) {
	// Encoding errors are not actionable mid-search (§7: the search core
	// does not throw); a broken trace sink is a CLI-boundary concern.
	_ = t.enc.Encode([]event{e})
}

func (t *YAMLTrace) Source(id uint64, x, y uint32) {
	t.write(event{Type: "source", ID: id, X: x, Y: y})
}

func (t *YAMLTrace) Destination(id uint64, x, y uint32) {
	t.write(event{Type: "destination", ID: id, X: x, Y: y})
}

func (t *YAMLTrace) Expand(id uint64, x, y uint32, f, g float64) {
	t.write(event{Type: "expand", ID: id, X: x, Y: y, F: f, G: g})
}

func (t *YAMLTrace) Generate(id uint64, x, y uint32, f, g float64) {
	t.write(event{Type: "generate", ID: id, X: x, Y: y, F: f, G: g})
}

func (t *YAMLTrace) Close() {
	_ = t.enc.Close()
}

// PosthocTrace buffers every event in memory and only writes them out
// when Close is called, matching the original's posthoc_listener (which
// replays a completed search's trace rather than streaming it live —
// useful when the sink is slow or the caller wants a single atomic write).
type PosthocTrace struct {
	w      io.Writer
	events []event
}

// NewPosthocTrace returns a trace listener that buffers until Close.
func NewPosthocTrace(w io.Writer) *PosthocTrace {
	return &PosthocTrace{w: w}
}

func (t *PosthocTrace) Source(id uint64, x, y uint32) {
	t.events = append(t.events, event{Type: "source", ID: id, X: x, Y: y})
}

func (t *PosthocTrace) Destination(id uint64, x, y uint32) {
	t.events = append(t.events, event{Type: "destination", ID: id, X: x, Y: y})
}

func (t *PosthocTrace) Expand(id uint64, x, y uint32, f, g float64) {
	t.events = append(t.events, event{Type: "expand", ID: id, X: x, Y: y, F: f, G: g})
}

func (t *PosthocTrace) Generate(id uint64, x, y uint32, f, g float64) {
	t.events = append(t.events, event{Type: "generate", ID: id, X: x, Y: y, F: f, G: g})
}

// Close flushes the buffered events as a single YAML sequence.
func (t *PosthocTrace) Close() {
	enc := yaml.NewEncoder(t.w)
	_ = enc.Encode(t.events)
	_ = enc.Close()
}
