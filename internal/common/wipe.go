package common

// WipeByteArray overwrites b with zeros. Passwords read from the terminal are
// wiped as soon as the request that needs them has been sent.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
