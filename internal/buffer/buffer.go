// package buffer provides audio block primitives.
package buffer

// BlockSize is the largest chunk of samples anything processes in one call.
const BlockSize = 4096

// Blocks allocates a set of channel buffers, each size samples long.
func Blocks(channels, size int) [][]float32 {
	b := make([][]float32, channels)
	for i := range b {
		b[i] = make([]float32, size)
	}
	return b
}
