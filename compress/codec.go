package compress

import (
	"fmt"

	"github.com/arloliu/bitpack/format"
)

// Compressor compresses raw transmission payloads for storage at rest.
//
// Transmission dumps are hex text and compress extremely well with any of
// the supported algorithms; compression is applied to the whole file
// content before it is written out.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a stored transmission payload to its original form.
//
// This interface mirrors the Compressor interface but focuses on the
// decompression operation. Separate interfaces allow asymmetric
// implementations where compression and decompression have different
// performance characteristics or resource requirements.
//
// Example:
//
//	decompressor := NewZstdCompressor()
//	raw, err := decompressor.Decompress(storedPayload)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: Decompressor implementations must be safe for concurrent
// use or document their thread safety requirements clearly.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input data should be previously compressed using the same
	// compression algorithm. The decompressor validates the data format and
	// returns an error if the data is corrupted or uses an incompatible
	// format.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
