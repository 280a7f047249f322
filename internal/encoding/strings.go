package encoding

import (
	"bytes"
	"fmt"
	"strconv"
)

const ONE byte = 49
const ZERO byte = 48

const blockLen = 8 // bits per character

// ByteToBit renders a byte as its eight bits, most significant first.
func ByteToBit(input byte) BitString {
	var buffer bytes.Buffer
	fmt.Fprintf(&buffer, "%.8b", input)
	return BitString(buffer.Bytes())
}

// FromText turns every byte of s into eight bits, so "A" becomes 01000001.
func FromText(s string) BitString {
	out := make(BitString, 0, len(s)*blockLen)
	for i := 0; i < len(s); i++ {
		out = append(out, ByteToBit(s[i])...)
	}
	return out
}

// ToText is the inverse of FromText. A trailing group shorter than eight
// bits is dropped.
func ToText(received BitString) string {
	message := make([]byte, len(received)/blockLen)
	for index := 0; index+blockLen <= len(received); index += blockLen {
		chunk := received[index : index+blockLen]
		char, _ := strconv.ParseUint(string(chunk), 2, blockLen)
		message[index/blockLen] = byte(char)
	}
	return string(message)
}
