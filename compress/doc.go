// Package compress provides the payload codecs used by the dataset container.
//
// A rarefaction dataset payload is a single encoded block of cumulative
// species counts, typically a few hundred bytes to a few kilobytes. Delta
// encoded count payloads are highly repetitive and compress well; raw float64
// payloads less so. Four codecs are available:
//
//   - NoOp: passthrough, for already-small payloads and baselines
//   - Zstd: best ratio; gozstd when cgo is available, klauspost/compress
//     otherwise (both produce interoperable Zstandard frames)
//   - S2: fastest, moderate ratio
//   - LZ4: block format, good balance for transport
//
// Codecs are stateless values safe for concurrent use; the zstd and lz4
// implementations pool their encoder state internally.
package compress
