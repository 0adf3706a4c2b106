// Package pool provides pooled scratch buffers for dataset encoding.
package pool

import "sync"

// DatasetBufferDefaultSize is the default capacity of a pooled buffer; a
// typical encoded dataset is well under 4KiB.
const (
	DatasetBufferDefaultSize  = 4 * 1024
	DatasetBufferMaxThreshold = 256 * 1024
)

// ByteBuffer is a reusable append-only byte buffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer while retaining the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool is a pool of ByteBuffers backed by sync.Pool. Buffers whose
// capacity grew past the configured threshold are discarded instead of
// retained, keeping the pool from hoarding memory after an unusually large
// dataset.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool producing buffers of the given default size.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var datasetDefaultPool = NewByteBufferPool(DatasetBufferDefaultSize, DatasetBufferMaxThreshold)

// GetDatasetBuffer retrieves a ByteBuffer from the default dataset pool.
func GetDatasetBuffer() *ByteBuffer {
	return datasetDefaultPool.Get()
}

// PutDatasetBuffer returns a ByteBuffer to the default dataset pool.
func PutDatasetBuffer(bb *ByteBuffer) {
	datasetDefaultPool.Put(bb)
}
