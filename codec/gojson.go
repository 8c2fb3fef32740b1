package codec

import gojson "github.com/goccy/go-json"

// GoJSON produces the same wire format as JSON using
// github.com/goccy/go-json, which is faster on the float-heavy keyframe
// payloads.
type GoJSON struct{}

// Marshal encodes the value to JSON.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }
