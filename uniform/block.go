package uniform

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecmath/internal/conv"
)

// ErrKindMismatch is returned when Set replaces a member with a different
// shader type, which would move every following offset.
var ErrKindMismatch = errors.New("uniform kind mismatch")

type member struct {
	name   string
	offset uint32
	value  Value
}

// Block is an ordered set of named uniforms laid out in one buffer.
// Members keep the offset assigned when they were first set.
type Block struct {
	layout    Layout
	precision Precision
	members   []member
	index     map[string]int
	end       int
}

// NewBlock creates an empty block.
func NewBlock(l Layout, p Precision) (*Block, error) {
	if err := checkEncoding(l, p); err != nil {
		return nil, err
	}
	return &Block{
		layout:    l,
		precision: p,
		index:     make(map[string]int),
	}, nil
}

// Set adds name at the next aligned offset, or replaces its value if name is
// already a member of the same kind.
func (b *Block) Set(name string, v Value) error {
	if v.kind == 0 {
		return fmt.Errorf("%q: %w", name, ErrEmptyValue)
	}

	if i, ok := b.index[name]; ok {
		if prev := b.members[i].value.kind; prev != v.kind {
			return fmt.Errorf("%w: %q is %s, got %s", ErrKindMismatch, name, prev, v.kind)
		}
		b.members[i].value = v
		return nil
	}

	offset, err := conv.AlignUp(b.end, v.Align(b.layout, b.precision))
	if err != nil {
		return fmt.Errorf("%q offset: %w", name, err)
	}
	end := int(offset) + v.Size(b.layout, b.precision)
	if _, err := conv.IntToUint32(end); err != nil {
		return fmt.Errorf("%q size: %w", name, err)
	}

	b.index[name] = len(b.members)
	b.members = append(b.members, member{name: name, offset: offset, value: v})
	b.end = end
	return nil
}

// Offset returns the byte offset of name.
func (b *Block) Offset(name string) (uint32, bool) {
	i, ok := b.index[name]
	if !ok {
		return 0, false
	}
	return b.members[i].offset, true
}

// Names returns the members in offset order.
func (b *Block) Names() []string {
	names := make([]string, len(b.members))
	for i, m := range b.members {
		names[i] = m.name
	}
	return names
}

// Size returns the buffer size. A std140 block is padded to a multiple of
// its vec4 alignment.
func (b *Block) Size() int {
	if b.layout != Std140 {
		return b.end
	}
	a := 4 * b.precision.Bytes()
	return (b.end + a - 1) &^ (a - 1)
}

// AppendTo appends the encoded block to dst. Padding bytes are zero.
func (b *Block) AppendTo(dst []byte) ([]byte, error) {
	base := len(dst)
	for _, m := range b.members {
		dst = pad(dst, base+int(m.offset))
		var err error
		if dst, err = m.value.AppendBytes(dst, b.layout, b.precision); err != nil {
			return dst, fmt.Errorf("%q: %w", m.name, err)
		}
	}
	return pad(dst, base+b.Size()), nil
}

// Bytes returns the encoded block in a new buffer.
func (b *Block) Bytes() ([]byte, error) {
	return b.AppendTo(make([]byte, 0, b.Size()))
}

func pad(dst []byte, n int) []byte {
	for len(dst) < n {
		dst = append(dst, 0)
	}
	return dst
}
