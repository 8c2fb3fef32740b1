// Package codec encodes the payload of persisted animation tracks.
//
// Encoded tracks record the codec name in their header, so a reader selects
// the matching codec with ByName regardless of the writer's default. Changing
// a codec's output format is a breaking change for stored tracks.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case JSON{}.Name():
		return JSON{}, true
	case GoJSON{}.Name():
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is used when no codec is configured.
var Default Codec = GoJSON{}

// MustMarshal panics on failure. It is meant for tests and fixtures.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
