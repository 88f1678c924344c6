package primitives

import "io"

// SetRandReaderForTesting sets the random reader used by key generation and
// IV generation. Intended for tests only; restores the prior reader via the
// returned closure. Since this package is internal, external callers cannot
// reach this function.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}
