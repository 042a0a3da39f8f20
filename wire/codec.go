// Package wire encodes game snapshots in the protobuf wire format described
// by snapshot.proto, and records them as a replay stream.
package wire

import (
	"math"

	"github.com/mo-shahab/pong-sim/arena"
	"github.com/mo-shahab/pong-sim/ball"
	"github.com/mo-shahab/pong-sim/game"
	"github.com/mo-shahab/pong-sim/paddle"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
	"gonum.org/v1/gonum/spatial/r2"
)

// field numbers, see snapshot.proto
const (
	snapshotSession protowire.Number = 1
	snapshotTick    protowire.Number = 2
	snapshotBall    protowire.Number = 3
	snapshotPaddles protowire.Number = 4
	snapshotWalls   protowire.Number = 5

	ballX      protowire.Number = 1
	ballY      protowire.Number = 2
	ballVX     protowire.Number = 3
	ballVY     protowire.Number = 4
	ballRadius protowire.Number = 5

	// Paddle and Wall share one layout
	rectKind       protowire.Number = 1
	rectX          protowire.Number = 2
	rectY          protowire.Number = 3
	rectHalfWidth  protowire.Number = 4
	rectHalfHeight protowire.Number = 5
)

// ErrWireType is returned when a known field arrives with the wrong wire type.
var ErrWireType = errors.New("unexpected wire type")

// Marshal encodes a snapshot.
func Marshal(s game.Snapshot) []byte {
	return AppendSnapshot(nil, s)
}

// AppendSnapshot appends the encoding of s to b.
func AppendSnapshot(b []byte, s game.Snapshot) []byte {
	if s.Session != "" {
		b = protowire.AppendTag(b, snapshotSession, protowire.BytesType)
		b = protowire.AppendString(b, s.Session)
	}
	b = appendVarint(b, snapshotTick, s.Tick)
	b = appendMessage(b, snapshotBall, appendBall(nil, s.Ball))
	for _, p := range s.Paddles {
		b = appendMessage(b, snapshotPaddles, appendRect(nil, uint64(p.Side), p.Position, p.HalfSize))
	}
	for _, w := range s.Walls {
		b = appendMessage(b, snapshotWalls, appendRect(nil, uint64(w.Role), w.Position, w.HalfSize))
	}
	return b
}

func appendBall(b []byte, bl ball.Ball) []byte {
	b = appendDouble(b, ballX, bl.Position.X)
	b = appendDouble(b, ballY, bl.Position.Y)
	b = appendDouble(b, ballVX, bl.Velocity.X)
	b = appendDouble(b, ballVY, bl.Velocity.Y)
	b = appendDouble(b, ballRadius, bl.Radius)
	return b
}

func appendRect(b []byte, kind uint64, pos, half r2.Vec) []byte {
	b = appendVarint(b, rectKind, kind)
	b = appendDouble(b, rectX, pos.X)
	b = appendDouble(b, rectY, pos.Y)
	b = appendDouble(b, rectHalfWidth, half.X)
	b = appendDouble(b, rectHalfHeight, half.Y)
	return b
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

// Unmarshal decodes a snapshot. Unknown fields are skipped. Decoded paddles
// carry no strategy.
func Unmarshal(b []byte) (game.Snapshot, error) {
	var s game.Snapshot
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case snapshotSession:
			v, n, err := consumeBytes(typ, b)
			s.Session = string(v)
			return n, err
		case snapshotTick:
			v, n, err := consumeVarint(typ, b)
			s.Tick = v
			return n, err
		case snapshotBall:
			msg, n, err := consumeBytes(typ, b)
			if err != nil {
				return n, err
			}
			s.Ball, err = unmarshalBall(msg)
			return n, errors.Wrap(err, "ball")
		case snapshotPaddles:
			msg, n, err := consumeBytes(typ, b)
			if err != nil {
				return n, err
			}
			kind, pos, half, err := unmarshalRect(msg)
			if err != nil {
				return n, errors.Wrap(err, "paddle")
			}
			s.Paddles = append(s.Paddles, paddle.Paddle{
				Side:     paddle.Side(kind),
				Position: pos,
				HalfSize: half,
			})
			return n, nil
		case snapshotWalls:
			msg, n, err := consumeBytes(typ, b)
			if err != nil {
				return n, err
			}
			kind, pos, half, err := unmarshalRect(msg)
			if err != nil {
				return n, errors.Wrap(err, "wall")
			}
			s.Walls = append(s.Walls, arena.Wall{
				Role:     arena.Role(kind),
				Position: pos,
				HalfSize: half,
			})
			return n, nil
		}
		return 0, nil
	})
	if err != nil {
		return game.Snapshot{}, errors.Wrap(err, "decode snapshot")
	}
	return s, nil
}

func unmarshalBall(b []byte) (ball.Ball, error) {
	var bl ball.Ball
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		var dst *float64
		switch num {
		case ballX:
			dst = &bl.Position.X
		case ballY:
			dst = &bl.Position.Y
		case ballVX:
			dst = &bl.Velocity.X
		case ballVY:
			dst = &bl.Velocity.Y
		case ballRadius:
			dst = &bl.Radius
		default:
			return 0, nil
		}
		v, n, err := consumeDouble(typ, b)
		*dst = v
		return n, err
	})
	return bl, err
}

func unmarshalRect(b []byte) (kind uint64, pos, half r2.Vec, err error) {
	err = walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		var dst *float64
		switch num {
		case rectKind:
			v, n, err := consumeVarint(typ, b)
			kind = v
			return n, err
		case rectX:
			dst = &pos.X
		case rectY:
			dst = &pos.Y
		case rectHalfWidth:
			dst = &half.X
		case rectHalfHeight:
			dst = &half.Y
		default:
			return 0, nil
		}
		v, n, err := consumeDouble(typ, b)
		*dst = v
		return n, err
	})
	return kind, pos, half, err
}

// walk calls fn for every field in b. fn returns the number of bytes it
// consumed after the tag; 0 means the field is unknown and is skipped.
func walk(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		m, err := fn(num, typ, b)
		if err != nil {
			return errors.Wrapf(err, "field %d", num)
		}
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return protowire.ParseError(m)
			}
		}
		b = b[m:]
	}
	return nil
}

func consumeDouble(typ protowire.Type, b []byte) (float64, int, error) {
	if typ != protowire.Fixed64Type {
		return 0, 0, errors.Wrapf(ErrWireType, "want fixed64, got %d", typ)
	}
	v, n := protowire.ConsumeFixed64(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return math.Float64frombits(v), n, nil
}

func consumeVarint(typ protowire.Type, b []byte) (uint64, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, errors.Wrapf(ErrWireType, "want varint, got %d", typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeBytes(typ protowire.Type, b []byte) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, errors.Wrapf(ErrWireType, "want bytes, got %d", typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return v, n, nil
}
