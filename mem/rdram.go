package mem

// Physical memory map constants.
const (
	// RDRAMBase is the KSEG0 address where RDRAM appears in the memory map.
	RDRAMBase = 0x80000000

	// AddressMask strips the KSEG segment bits from an address, mirroring
	// the cached/uncached segments onto the same physical memory.
	AddressMask = 0x1FFFFFFF

	// DefaultRDRAMMiB is the stock (unexpanded) RDRAM size.
	DefaultRDRAMMiB = 4
)

// RDRAM is the console's main memory: a fixed-size byte store with big-endian
// 32-bit access. Every access wraps within the backing store, so no address
// is out of bounds by construction. RDRAM also owns ROM image ingestion: a
// loaded image is copied into the store from offset 0 and the raw bytes are
// retained for header inspection by the caller.
type RDRAM struct {
	size uint32
	ram  []byte
	rom  []byte
}

// NewRDRAM creates a memory device of the given size in whole mebibytes.
// Sizes less than 1 MiB fall back to the stock 4 MiB.
func NewRDRAM(sizeMiB int) *RDRAM {
	if sizeMiB < 1 {
		sizeMiB = DefaultRDRAMMiB
	}
	size := uint32(sizeMiB) * 1024 * 1024
	return &RDRAM{
		size: size,
		ram:  make([]byte, size),
	}
}

// Size returns the backing store size in bytes.
func (m *RDRAM) Size() uint32 {
	return m.size
}

// ROM returns the most recently loaded raw ROM image, or nil if none has
// been loaded. The bytes are kept verbatim for header/CRC display; the
// device never recomputes them.
func (m *RDRAM) ROM() []byte {
	return m.rom
}

func (m *RDRAM) offset(addr uint32) uint32 {
	return (addr & AddressMask) % m.size
}

// Read32 returns the big-endian word at addr. Bytes near the end of the
// store wrap back to offset 0.
func (m *RDRAM) Read32(addr uint32) uint32 {
	off := m.offset(addr)
	var v uint32
	for i := uint32(0); i < 4; i++ {
		v = v<<8 | uint32(m.ram[(off+i)%m.size])
	}
	return v
}

// Write32 stores the word at addr big-endian, wrapping within the store.
func (m *RDRAM) Write32(addr uint32, value uint32) {
	off := m.offset(addr)
	for i := uint32(0); i < 4; i++ {
		m.ram[(off+i)%m.size] = byte(value >> (24 - 8*i))
	}
}

// LoadROM copies the image into the backing store byte-for-byte starting at
// offset 0, wrapping offsets modulo the store size, and keeps the raw image
// for later inspection. It returns the number of bytes ingested.
func (m *RDRAM) LoadROM(data []byte) int {
	m.rom = append([]byte(nil), data...)
	for i, b := range data {
		m.ram[uint32(i)%m.size] = b
	}
	return len(data)
}
