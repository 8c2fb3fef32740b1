package anim

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/vecmath/codec"
	"github.com/hupe1980/vecmath/internal/compress"
	"github.com/hupe1980/vecmath/internal/conv"
	"github.com/hupe1980/vecmath/quat"
	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/transform"
	"github.com/hupe1980/vecmath/vec"
)

var (
	trackMagic   = [4]byte{'V', 'M', 'T', 'K'}
	trackVersion = uint16(1)
)

// fixed header: magic, version, compression, codec name length.
const trackHeaderFixedLen = 8

var (
	// ErrInvalidMagic is returned when the input is not an encoded track.
	ErrInvalidMagic = errors.New("invalid track magic")

	// ErrUnsupportedVersion is returned for tracks written by a newer format.
	ErrUnsupportedVersion = errors.New("unsupported track version")

	// ErrUnknownCodec is returned when the header names a codec that is not
	// built in.
	ErrUnknownCodec = errors.New("unknown track codec")

	// ErrUnknownCompression is returned for an unknown compression type.
	ErrUnknownCompression = errors.New("unknown track compression")

	// ErrNilTrack is returned when Encode is given a nil track.
	ErrNilTrack = errors.New("nil track")
)

// maxFrameLen bounds the payload allocation in Decode.
const maxFrameLen = 1 << 30

// Bits is the float width of the writer. Rotations read at a different width
// are renormalized, since a float32 unit quaternion is not unit at float64
// tolerance.
type trackDTO struct {
	Mode string   `json:"mode"`
	Bits int      `json:"bits,omitempty"`
	Keys []keyDTO `json:"keys"`
}

// Rotation is stored w, x, y, z.
type keyDTO struct {
	Time        float64    `json:"t"`
	Translation [3]float64 `json:"p"`
	Rotation    [4]float64 `json:"r"`
	Scale       [3]float64 `json:"s"`
}

func toDTO[T scalar.Float](t *Track[T]) trackDTO {
	dto := trackDTO{
		Mode: t.mode.String(),
		Bits: scalar.Bits[T](),
		Keys: make([]keyDTO, len(t.keys)),
	}
	for i, k := range t.keys {
		tr := k.Transform
		dto.Keys[i] = keyDTO{
			Time:        float64(k.Time),
			Translation: widen3(tr.Translation),
			Rotation:    [4]float64{float64(tr.Rotation.W), float64(tr.Rotation.V.X), float64(tr.Rotation.V.Y), float64(tr.Rotation.V.Z)},
			Scale:       widen3(tr.Scale),
		}
	}
	return dto
}

func widen3[T scalar.Float](v vec.Vec3[T]) [3]float64 {
	return [3]float64{float64(v.X), float64(v.Y), float64(v.Z)}
}

func narrow3[T scalar.Float](a [3]float64) vec.Vec3[T] {
	return vec.New3(T(a[0]), T(a[1]), T(a[2]))
}

func fromDTO[T scalar.Float](dto trackDTO) (*Track[T], error) {
	mode, ok := ParseMode(dto.Mode)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, dto.Mode)
	}

	renormalize := dto.Bits != 0 && dto.Bits != scalar.Bits[T]()
	tolerance := writerEpsilon(dto.Bits)

	keys := make([]Keyframe[T], len(dto.Keys))
	for i, k := range dto.Keys {
		r := k.Rotation
		rot := quat.New(T(r[0]), T(r[1]), T(r[2]), T(r[3]))
		// Only rotations that were unit for the writer are repaired; anything
		// else is left for NewTrack to reject.
		if renormalize && scalar.ApproxEqualEps(r[0]*r[0]+r[1]*r[1]+r[2]*r[2]+r[3]*r[3], 1, tolerance) {
			rot.Normalize()
		}
		keys[i] = Keyframe[T]{
			Time:      T(k.Time),
			Transform: transform.New(narrow3[T](k.Translation), rot, narrow3[T](k.Scale)),
		}
	}
	return NewTrack(mode, keys...)
}

// writerEpsilon is the unit-length tolerance of the precision that wrote a
// payload.
func writerEpsilon(bits int) float64 {
	if bits == 32 {
		return float64(scalar.Epsilon[float32]())
	}
	return scalar.Epsilon[float64]()
}

// Encode writes t to w. A nil t fails with ErrNilTrack.
func Encode[T scalar.Float](w io.Writer, t *Track[T], opts ...Option) error {
	o := applyOptions(opts)
	start := time.Now()

	var (
		n    int
		keys int
		err  = ErrNilTrack
	)
	if t != nil {
		keys = t.Len()
		n, err = encode(w, t, o)
	}

	o.metrics.RecordEncode(n, time.Since(start), err)
	o.logger.LogEncode(context.Background(), keys, n, o.compression.String(), err)
	return err
}

func encode[T scalar.Float](w io.Writer, t *Track[T], o options) (int, error) {
	if !o.compression.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCompression, o.compression)
	}
	name := o.codec.Name()
	nameLen, err := conv.IntToUint8(len(name))
	if err != nil {
		return 0, fmt.Errorf("codec name: %w", err)
	}

	payload, err := o.codec.Marshal(toDTO(t))
	if err != nil {
		return 0, fmt.Errorf("marshal track: %w", err)
	}
	frame, err := compress.Frame(payload, o.compression)
	if err != nil {
		return 0, fmt.Errorf("compress track: %w", err)
	}
	frameLen, err := conv.IntToUint32(len(frame))
	if err != nil {
		return 0, fmt.Errorf("track payload: %w", err)
	}

	buf := make([]byte, 0, trackHeaderFixedLen+len(name)+4+len(frame))
	buf = append(buf, trackMagic[:]...)
	buf = binary.LittleEndian.AppendUint16(buf, trackVersion)
	buf = append(buf, uint8(o.compression), nameLen)
	buf = append(buf, name...)
	buf = binary.LittleEndian.AppendUint32(buf, frameLen)
	buf = append(buf, frame...)

	if _, err := w.Write(buf); err != nil {
		return 0, fmt.Errorf("failed to write track: %w", err)
	}
	return len(buf), nil
}

// Decode reads a track written by Encode. The track is validated like
// NewTrack.
func Decode[T scalar.Float](r io.Reader, opts ...Option) (*Track[T], error) {
	o := applyOptions(opts)
	start := time.Now()

	t, n, name, err := decode[T](r)

	keys := 0
	if t != nil {
		keys = t.Len()
	}
	o.metrics.RecordDecode(n, time.Since(start), err)
	o.logger.LogDecode(context.Background(), keys, n, name, err)
	return t, err
}

func decode[T scalar.Float](r io.Reader) (*Track[T], int, string, error) {
	var fixed [trackHeaderFixedLen]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return nil, 0, "", fmt.Errorf("failed to read track header: %w", err)
	}
	if [4]byte(fixed[:4]) != trackMagic {
		return nil, 0, "", ErrInvalidMagic
	}
	if v := binary.LittleEndian.Uint16(fixed[4:6]); v != trackVersion {
		return nil, 0, "", fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	ct := compress.Type(fixed[6])
	if !ct.Valid() {
		return nil, 0, "", fmt.Errorf("%w: %s", ErrUnknownCompression, ct)
	}

	rest := make([]byte, int(fixed[7])+4)
	if _, err := io.ReadFull(r, rest); err != nil {
		return nil, 0, "", fmt.Errorf("failed to read track header: %w", err)
	}
	name := string(rest[:fixed[7]])
	c, ok := codec.ByName(name)
	if !ok {
		return nil, 0, name, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	frameLen := binary.LittleEndian.Uint32(rest[fixed[7]:])
	if frameLen > maxFrameLen {
		return nil, 0, name, fmt.Errorf("%w: payload of %d bytes", compress.ErrCorrupt, frameLen)
	}
	n, err := conv.Uint32ToInt(frameLen)
	if err != nil {
		return nil, 0, name, err
	}
	frame := make([]byte, n)
	if _, err := io.ReadFull(r, frame); err != nil {
		return nil, 0, name, fmt.Errorf("failed to read track payload: %w", err)
	}
	total := len(fixed) + len(rest) + n

	payload, err := compress.Unframe(frame, ct)
	if err != nil {
		return nil, total, name, fmt.Errorf("decompress track: %w", err)
	}

	var dto trackDTO
	if err := c.Unmarshal(payload, &dto); err != nil {
		return nil, total, name, fmt.Errorf("unmarshal track: %w", err)
	}
	t, err := fromDTO[T](dto)
	if err != nil {
		return nil, total, name, err
	}
	return t, total, name, nil
}
