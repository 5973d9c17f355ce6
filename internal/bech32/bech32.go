package bech32

import (
	"errors"
	"fmt"
	"strings"
)

// Charset is the Bech32 alphabet; a symbol's value is its index.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// Separator splits the human-readable prefix from the data part.
const Separator = '1'

// ChecksumLength is the number of 5-bit checksum symbols.
const ChecksumLength = 6

var generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

var (
	ErrMixedCase       = errors.New("bech32: mixed case string")
	ErrMissingSep      = errors.New("bech32: missing separator")
	ErrEmptyHRP        = errors.New("bech32: empty human-readable prefix")
	ErrShortChecksum   = errors.New("bech32: data part shorter than checksum")
	ErrInvalidChecksum = errors.New("bech32: invalid checksum")
	ErrInvalidPadding  = errors.New("bech32: invalid padding")
)

// ConvertBits regroups data from fromBits-wide values into toBits-wide
// values, most significant bit first. With pad set the final group is
// filled with zero bits on the right; without it leftover bits must be
// fewer than fromBits and all zero.
func ConvertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, fmt.Errorf("bech32: invalid bit group size %d->%d", fromBits, toBits)
	}
	var (
		acc  uint32
		bits uint
	)
	maxv := uint32(1)<<toBits - 1
	ret := make([]byte, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))
	for _, b := range data {
		if uint32(b)>>fromBits != 0 {
			return nil, fmt.Errorf("bech32: value %d exceeds %d bits", b, fromBits)
		}
		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte(acc>>bits&maxv))
		}
	}
	if pad {
		if bits > 0 {
			ret = append(ret, byte(acc<<(toBits-bits)&maxv))
		}
	} else if bits >= fromBits || acc<<(toBits-bits)&maxv != 0 {
		return nil, ErrInvalidPadding
	}
	return ret, nil
}

// HRPExpand returns the high 3 bits of every prefix character, a zero,
// then the low 5 bits of every prefix character.
func HRPExpand(hrp string) []byte {
	ret := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]>>5)
	}
	ret = append(ret, 0)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]&31)
	}
	return ret
}

// Polymod computes the 30-bit BCH remainder of values over GF(32),
// starting from an accumulator of 1.
func Polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= generator[i]
			}
		}
	}
	return chk
}

// CreateChecksum returns the six checksum symbols for hrp and data.
func CreateChecksum(hrp string, data []byte) []byte {
	values := append(HRPExpand(hrp), data...)
	values = append(values, make([]byte, ChecksumLength)...)
	mod := Polymod(values) ^ 1
	ret := make([]byte, ChecksumLength)
	for i := range ret {
		ret[i] = byte(mod >> uint(5*(5-i)) & 31)
	}
	return ret
}

// VerifyChecksum reports whether data ends with a valid checksum for hrp.
func VerifyChecksum(hrp string, data []byte) bool {
	return Polymod(append(HRPExpand(hrp), data...)) == 1
}

// Encode appends the checksum to data and maps everything to the alphabet.
// hrp is used verbatim; the result is lower case when hrp is.
func Encode(hrp string, data []byte) (string, error) {
	if hrp == "" {
		return "", ErrEmptyHRP
	}
	var sb strings.Builder
	sb.Grow(len(hrp) + 1 + len(data) + ChecksumLength)
	sb.WriteString(hrp)
	sb.WriteByte(Separator)
	combined := make([]byte, 0, len(data)+ChecksumLength)
	combined = append(combined, data...)
	combined = append(combined, CreateChecksum(hrp, data)...)
	for _, v := range combined {
		if int(v) >= len(Charset) {
			return "", fmt.Errorf("bech32: symbol %d out of range", v)
		}
		sb.WriteByte(Charset[v])
	}
	return sb.String(), nil
}

// Decode splits s at the last separator, validates the checksum and
// returns the lower-case prefix and the data symbols without checksum.
func Decode(s string) (string, []byte, error) {
	lower := strings.ToLower(s)
	if lower != s && strings.ToUpper(s) != s {
		return "", nil, ErrMixedCase
	}
	for i := 0; i < len(lower); i++ {
		if lower[i] < 33 || lower[i] > 126 {
			return "", nil, fmt.Errorf("bech32: invalid character %q at %d", lower[i], i)
		}
	}
	pos := strings.LastIndexByte(lower, Separator)
	if pos < 0 {
		return "", nil, ErrMissingSep
	}
	if pos == 0 {
		return "", nil, ErrEmptyHRP
	}
	if len(lower)-pos-1 < ChecksumLength {
		return "", nil, ErrShortChecksum
	}
	hrp := lower[:pos]
	data := make([]byte, 0, len(lower)-pos-1)
	for i := pos + 1; i < len(lower); i++ {
		v := strings.IndexByte(Charset, lower[i])
		if v < 0 {
			return "", nil, fmt.Errorf("bech32: invalid data character %q at %d", lower[i], i)
		}
		data = append(data, byte(v))
	}
	if !VerifyChecksum(hrp, data) {
		return "", nil, ErrInvalidChecksum
	}
	return hrp, data[:len(data)-ChecksumLength], nil
}
