package i2c

import "testing"

func TestSigned(t *testing.T) {
	cases := []struct {
		in  []byte
		out int
	}{
		{[]byte{1, 2, 3, 4}, 1<<24 + 2<<16 + 3<<8 + 4},
		{[]byte{0x7f, 0xff}, 0x7fff},
		{[]byte{0xff, 0xff}, -1},
		{[]byte{0x6c, 0xfa}, 27898},
		{[]byte{0x80, 0x00}, -32768},
	}

	for _, tc := range cases {
		if res := Signed(tc.in); res != tc.out {
			t.Errorf("%d != expected %d for %v", res, tc.out, tc.in)
		}
	}
}

func TestUnsigned(t *testing.T) {
	cases := []struct {
		in  []byte
		out int
	}{
		{[]byte{0xff, 0xff}, 0xffff},
		{[]byte{0x5d, 0x23, 0x00}, 0x5d2300},
		{[]byte{0xff, 0xff, 0xff}, 0xffffff},
		{[]byte{0}, 0},
	}

	for _, tc := range cases {
		if res := Unsigned(tc.in); res != tc.out {
			t.Errorf("%d != expected %d for %v", res, tc.out, tc.in)
		}
	}
}
