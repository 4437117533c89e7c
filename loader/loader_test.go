package loader

import "testing"

func TestDecodeLittleEndian(t *testing.T) {
	// 9 as a little-endian uint16, 32768 as a little-endian uint16
	bin := []byte{0x09, 0x00, 0x00, 0x80}
	got := Decode(bin)
	want := []uint16{9, 32768}

	if len(got) != len(want) {
		t.Fatalf("Decode length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Decode()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDecodeDiscardsTrailingOddByte(t *testing.T) {
	bin := []byte{0x09, 0x00, 0xFF}
	got := Decode(bin)
	if len(got) != 1 {
		t.Fatalf("Decode length = %d, want 1 (trailing byte discarded)", len(got))
	}
	if got[0] != 9 {
		t.Fatalf("Decode()[0] = %d, want 9", got[0])
	}
}

func TestDecodeEmpty(t *testing.T) {
	got := Decode(nil)
	if len(got) != 0 {
		t.Fatalf("Decode(nil) = %v, want empty", got)
	}
}
