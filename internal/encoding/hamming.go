package encoding

// ParityBits returns the smallest r with 2^r >= n+r+1, the number of parity
// bits a Hamming code needs to protect n data bits.
func ParityBits(n int) int {
	r := 1
	for 1<<r < n+r+1 {
		r++
	}
	return r
}

// IsParityPosition reports whether the 1-indexed position pos holds a parity
// bit, which is the case for every power of two.
func IsParityPosition(pos uint) bool {
	return pos != 0 && pos&(pos-1) == 0
}

// EncodeHamming interleaves data with parity bits. Parity bit p covers every
// position j with j&p != 0, and is chosen so that the covered bits have even
// parity.
func EncodeHamming(data BitString) (BitString, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	n := len(data)
	r := ParityBits(n)
	codeword := Zeros(n + r)

	next := 0
	for pos := uint(1); pos <= uint(n+r); pos++ {
		if IsParityPosition(pos) {
			continue
		}
		codeword[pos-1] = data[next]
		next++
	}
	// the parity slots still hold ZERO so they do not disturb their own check
	for i := 0; i < r; i++ {
		p := uint(1) << i
		if calculateParity(codeword, p) {
			codeword[p-1] = ONE
		}
	}
	return codeword, nil
}

// DecodeHamming recomputes every parity check of codeword and returns the
// corrected word together with the syndrome. A syndrome of 0 means no error
// was found and the word is returned unchanged. Otherwise the syndrome is the
// 1-indexed position that was flipped back.
//
// With two or more errors the syndrome can point past the end of the word.
// The word is then returned unchanged with that syndrome, so callers can tell
// an uncorrectable word apart by checking pos > len(codeword).
func DecodeHamming(codeword BitString) (BitString, int, error) {
	if err := codeword.validate(); err != nil {
		return nil, 0, err
	}
	m := uint(len(codeword))
	syndrome := uint(0)
	for p := uint(1); p <= m; p <<= 1 {
		if calculateParity(codeword, p) {
			syndrome |= p
		}
	}
	corrected := codeword.Clone()
	if syndrome != 0 && syndrome <= m {
		flip(corrected, int(syndrome-1))
	}
	return corrected, int(syndrome), nil
}

// ExtractData strips the parity positions from a Hamming codeword.
func ExtractData(codeword BitString) BitString {
	out := make(BitString, 0, len(codeword))
	for pos := uint(1); pos <= uint(len(codeword)); pos++ {
		if !IsParityPosition(pos) {
			out = append(out, codeword[pos-1])
		}
	}
	return out
}

// ParityPositions lists the parity positions of a codeword of length m.
func ParityPositions(m int) []int {
	var out []int
	for p := 1; p <= m; p <<= 1 {
		out = append(out, p)
	}
	return out
}

// calculateParity reports whether an odd number of the positions checked by
// parity bit p hold a one.
func calculateParity(bits BitString, p uint) bool {
	odd := false
	for j := uint(1); j <= uint(len(bits)); j++ {
		if j&p != 0 && bits[j-1] == ONE {
			odd = !odd
		}
	}
	return odd
}
