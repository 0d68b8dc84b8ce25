package compress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitpack/format"
)

// sampleTransmission mimics a stored transmission dump: a long line of
// hexadecimal text, the redundancy of which every codec should exploit.
func sampleTransmission() []byte {
	return []byte(strings.Repeat("A0016C880162017C3686B18A3D4780", 64) + "\n")
}

func TestGetCodec(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err, "compression %s", compression)
		require.NotNil(t, codec)
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestNoOpCompressor_Passthrough(t *testing.T) {
	codec := NewNoOpCompressor()
	data := sampleTransmission()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := sampleTransmission()

	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		compressed, err := codec.Compress(data)
		require.NoError(t, err, "compression %s", compression)
		require.Less(t, len(compressed), len(data), "compression %s should shrink hex text", compression)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err, "compression %s", compression)
		require.Equal(t, data, decompressed, "compression %s", compression)
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(nil)
		require.NoError(t, err, "compression %s", compression)
		require.Empty(t, decompressed, "compression %s", compression)
	}
}

func TestZstdCompressor_DecompressInvalid(t *testing.T) {
	codec := NewZstdCompressor()

	_, err := codec.Decompress([]byte("not a zstd frame"))
	require.Error(t, err)
}
