// Package loader turns a raw Synacor binary file into the word
// stream the synacor package's Machine accepts via LoadProgram. It
// has no knowledge of the VM's internals — its only contract is
// producing a []uint16 from a file.
package loader

import (
	"encoding/binary"
	"fmt"
	"os"
)

// LoadFile reads path and decodes it as a little-endian stream of
// 16-bit words, discarding a trailing odd byte if present.
func LoadFile(path string) ([]uint16, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: couldn't read %q: %w", path, err)
	}
	return Decode(bin), nil
}

// Decode converts a raw byte slice into a little-endian stream of
// 16-bit words, discarding a trailing odd byte if present.
func Decode(bin []byte) []uint16 {
	n := len(bin) / 2
	words := make([]uint16, 0, n)
	for i := 0; i+1 < len(bin); i += 2 {
		words = append(words, binary.LittleEndian.Uint16(bin[i:i+2]))
	}
	return words
}
