package encoding

// xor combines a divisor-aligned window with the divisor (or with zeros) and
// drops the leading bit, which the alignment guarantees is zero afterwards.
// Both operands have the same length.
func xor(a, b BitString) BitString {
	out := make(BitString, len(b)-1, len(b))
	for i := 1; i < len(b); i++ {
		if a[i] == b[i] {
			out[i-1] = ZERO
		} else {
			out[i-1] = ONE
		}
	}
	return out
}

// reduce performs one step of the long division on a full width window.
func reduce(window, divisor, zeros BitString) BitString {
	if window[0] == ONE {
		return xor(divisor, window)
	}
	return xor(zeros, window)
}

// mod2div divides dividend by divisor over GF(2) and returns the remainder,
// len(divisor)-1 bits long. A dividend shorter than the divisor is treated as
// if it were padded with leading zeros.
func mod2div(dividend, divisor BitString) BitString {
	width := len(divisor)
	if len(dividend) < width {
		dividend = append(Zeros(width-len(dividend)), dividend...)
	}
	zeros := Zeros(width)
	window := dividend[:width].Clone()
	for next := width; next < len(dividend); next++ {
		window = append(reduce(window, divisor, zeros), dividend[next])
	}
	return reduce(window, divisor, zeros)
}

// EncodeCRC appends the CRC of data under the generator key. The remainder
// is returned separately as well; the codeword is len(data)+len(key)-1 bits.
func EncodeCRC(data, key BitString) (codeword BitString, remainder BitString, err error) {
	if err := data.validate(); err != nil {
		return nil, nil, err
	}
	if err := key.validateKey(); err != nil {
		return nil, nil, err
	}
	padded := make(BitString, 0, len(data)+len(key)-1)
	padded = append(padded, data...)
	padded = append(padded, Zeros(len(key)-1)...)
	remainder = mod2div(padded, key)

	codeword = make(BitString, 0, len(padded))
	codeword = append(codeword, data...)
	codeword = append(codeword, remainder...)
	return codeword, remainder, nil
}

// CRCRemainder divides a received codeword by key. An all-zero result means
// no error was detected.
func CRCRemainder(codeword, key BitString) (BitString, error) {
	if err := codeword.validate(); err != nil {
		return nil, err
	}
	if err := key.validateKey(); err != nil {
		return nil, err
	}
	return mod2div(codeword, key), nil
}

// VerifyCRC reports whether codeword divides cleanly by key. Error patterns
// that are themselves multiples of key go unnoticed.
func VerifyCRC(codeword, key BitString) (bool, error) {
	remainder, err := CRCRemainder(codeword, key)
	if err != nil {
		return false, err
	}
	return remainder.IsZero(), nil
}
