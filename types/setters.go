package types

// setTyped writes value into dst at idx if dst actually holds a []T, and
// is a no-op otherwise (e.g. when Array.Data's class doesn't match the
// setter being called, or the slot was never allocated because the array
// isn't complex).
func setTyped[T any](dst interface{}, idx int, value T) {
	if s, ok := dst.([]T); ok {
		s[idx] = value
	}
}

// Element setters, one pair (real + imaginary) per numeric class. Writes
// outside the array's declared (rows, cols) bounds are silently ignored —
// this mirrors the behavior of the original implementation this codec was
// distilled from, which never surfaces an out-of-range write as an error.

func (a *Array) SetDouble(row, col int, value float64) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Real, idx, value)
	}
}

func (a *Array) SetDoubleImag(row, col int, value float64) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Imag, idx, value)
	}
}

func (a *Array) SetSingle(row, col int, value float32) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Real, idx, value)
	}
}

func (a *Array) SetSingleImag(row, col int, value float32) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Imag, idx, value)
	}
}

func (a *Array) SetInt8(row, col int, value int8) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Real, idx, value)
	}
}

func (a *Array) SetInt8Imag(row, col int, value int8) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Imag, idx, value)
	}
}

func (a *Array) SetUint8(row, col int, value uint8) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Real, idx, value)
	}
}

func (a *Array) SetUint8Imag(row, col int, value uint8) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Imag, idx, value)
	}
}

func (a *Array) SetInt16(row, col int, value int16) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Real, idx, value)
	}
}

func (a *Array) SetInt16Imag(row, col int, value int16) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Imag, idx, value)
	}
}

func (a *Array) SetUint16(row, col int, value uint16) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Real, idx, value)
	}
}

func (a *Array) SetUint16Imag(row, col int, value uint16) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Imag, idx, value)
	}
}

func (a *Array) SetInt32(row, col int, value int32) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Real, idx, value)
	}
}

func (a *Array) SetInt32Imag(row, col int, value int32) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Imag, idx, value)
	}
}

func (a *Array) SetUint32(row, col int, value uint32) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Real, idx, value)
	}
}

func (a *Array) SetUint32Imag(row, col int, value uint32) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Imag, idx, value)
	}
}

func (a *Array) SetInt64(row, col int, value int64) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Real, idx, value)
	}
}

func (a *Array) SetInt64Imag(row, col int, value int64) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Imag, idx, value)
	}
}

func (a *Array) SetUint64(row, col int, value uint64) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Real, idx, value)
	}
}

func (a *Array) SetUint64Imag(row, col int, value uint64) {
	if idx, ok := a.index(row, col); ok && a.Data != nil {
		setTyped(a.Data.Imag, idx, value)
	}
}
