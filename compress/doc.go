// Package compress provides compression codecs for stored transmission files.
//
// Transmission dumps are hexadecimal text, which is highly redundant and
// compresses well. This package lets callers keep dumps compressed at rest
// and restore them transparently before hex parsing, supporting:
//
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// The package defines three interfaces: Compressor, Decompressor, and the
// combined Codec. Built-in codecs are obtained through GetCodec with a
// format.CompressionType selector.
//
// The Zstd codec has two build-time implementations: a cgo binding
// (valyala/gozstd) when cgo is enabled, and a pure-Go implementation
// (klauspost/compress/zstd) otherwise. Both produce standard Zstandard
// frames and interoperate freely.
package compress
