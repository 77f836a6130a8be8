package v5

import (
	"encoding/binary"
	"fmt"
	"math"
)

// decodeNumeric interprets payload as a dense array of wire type t,
// returning a Go slice of the type's natural width (e.g. []int16 for
// Int16). The coercion table in coercion.go is responsible for
// widening this to whatever the array's declared class requires.
func decodeNumeric(order binary.ByteOrder, t DataType, payload []byte) (interface{}, error) {
	width := t.elementSize()
	if width == 0 {
		if t != Matrix && t != Compressed {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDataType, t)
		}
		return nil, fmt.Errorf("%w: %s is not a numeric element type", ErrConversion, t)
	}
	if len(payload)%width != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %s elements", ErrMalformedTag, len(payload), t)
	}
	count := len(payload) / width

	switch t {
	case Int8:
		out := make([]int8, count)
		for i := range out {
			out[i] = int8(payload[i])
		}
		return out, nil
	case Uint8:
		out := make([]uint8, count)
		copy(out, payload)
		return out, nil
	case Int16:
		out := make([]int16, count)
		for i := range out {
			out[i] = int16(order.Uint16(payload[i*2:]))
		}
		return out, nil
	case Uint16:
		out := make([]uint16, count)
		for i := range out {
			out[i] = order.Uint16(payload[i*2:])
		}
		return out, nil
	case Int32:
		out := make([]int32, count)
		for i := range out {
			out[i] = int32(order.Uint32(payload[i*4:]))
		}
		return out, nil
	case Uint32:
		out := make([]uint32, count)
		for i := range out {
			out[i] = order.Uint32(payload[i*4:])
		}
		return out, nil
	case Single:
		out := make([]float32, count)
		for i := range out {
			out[i] = math.Float32frombits(order.Uint32(payload[i*4:]))
		}
		return out, nil
	case Double:
		out := make([]float64, count)
		for i := range out {
			out[i] = math.Float64frombits(order.Uint64(payload[i*8:]))
		}
		return out, nil
	case Int64:
		out := make([]int64, count)
		for i := range out {
			out[i] = int64(order.Uint64(payload[i*8:]))
		}
		return out, nil
	case Uint64:
		out := make([]uint64, count)
		for i := range out {
			out[i] = order.Uint64(payload[i*8:])
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataType, t)
	}
}

// encodeNumeric renders data (one of the slice types decodeNumeric
// produces) as its wire bytes under t.
func encodeNumeric(order binary.ByteOrder, t DataType, data interface{}) ([]byte, error) {
	switch v := data.(type) {
	case []int8:
		buf := make([]byte, len(v))
		for i, x := range v {
			buf[i] = byte(x)
		}
		return buf, nil
	case []uint8:
		buf := make([]byte, len(v))
		copy(buf, v)
		return buf, nil
	case []int16:
		buf := make([]byte, len(v)*2)
		for i, x := range v {
			order.PutUint16(buf[i*2:], uint16(x))
		}
		return buf, nil
	case []uint16:
		buf := make([]byte, len(v)*2)
		for i, x := range v {
			order.PutUint16(buf[i*2:], x)
		}
		return buf, nil
	case []int32:
		buf := make([]byte, len(v)*4)
		for i, x := range v {
			order.PutUint32(buf[i*4:], uint32(x))
		}
		return buf, nil
	case []uint32:
		buf := make([]byte, len(v)*4)
		for i, x := range v {
			order.PutUint32(buf[i*4:], x)
		}
		return buf, nil
	case []float32:
		buf := make([]byte, len(v)*4)
		for i, x := range v {
			order.PutUint32(buf[i*4:], math.Float32bits(x))
		}
		return buf, nil
	case []float64:
		buf := make([]byte, len(v)*8)
		for i, x := range v {
			order.PutUint64(buf[i*8:], math.Float64bits(x))
		}
		return buf, nil
	case []int64:
		buf := make([]byte, len(v)*8)
		for i, x := range v {
			order.PutUint64(buf[i*8:], uint64(x))
		}
		return buf, nil
	case []uint64:
		buf := make([]byte, len(v)*8)
		for i, x := range v {
			order.PutUint64(buf[i*8:], x)
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedClass, data)
	}
}
