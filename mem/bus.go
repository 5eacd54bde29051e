// Package mem provides the memory-mapped bus and the devices that attach to
// it: the RDRAM backing store and the peripheral register stubs.
package mem

// Device is the capability every bus device exposes: 32-bit reads and writes
// over the address range it registered. Main memory and each peripheral stub
// implement Device; the Bus itself does too, so a core can be wired either
// straight to a single device or through the full bus routing.
type Device interface {
	// Read32 returns the 32-bit word at addr.
	Read32(addr uint32) uint32

	// Write32 stores a 32-bit word at addr.
	Write32(addr uint32, value uint32)
}

// FuncDevice adapts a read/write function pair to the Device interface, for
// callers that want to register ad-hoc handlers without defining a type.
// A nil ReadFn reads as zero; a nil WriteFn ignores writes.
type FuncDevice struct {
	ReadFn  func(addr uint32) uint32
	WriteFn func(addr uint32, value uint32)
}

// Read32 invokes ReadFn, or returns 0 when it is nil.
func (d FuncDevice) Read32(addr uint32) uint32 {
	if d.ReadFn == nil {
		return 0
	}
	return d.ReadFn(addr)
}

// Write32 invokes WriteFn, or does nothing when it is nil.
func (d FuncDevice) Write32(addr uint32, value uint32) {
	if d.WriteFn != nil {
		d.WriteFn(addr, value)
	}
}

// Bus routes 32-bit memory accesses to whichever device claims the address.
// Addresses with no registered device read as 0 and swallow writes; that is
// the defined behavior for unmapped regions, not an error.
//
// Accesses are masked to 4-byte alignment before lookup, so an unaligned
// address deterministically hits the word containing it. RegisterDevice
// assumes a 4-byte-aligned base.
type Bus struct {
	devices map[uint32]Device
}

// NewBus creates an empty bus with no devices registered.
func NewBus() *Bus {
	return &Bus{
		devices: make(map[uint32]Device),
	}
}

// RegisterDevice installs dev for every 4-byte-aligned address in
// [base, base+size). Later registrations win at overlapping addresses.
func (b *Bus) RegisterDevice(base, size uint32, dev Device) {
	for off := uint32(0); off < size; off += 4 {
		b.devices[base+off] = dev
	}
}

// Read32 returns the mapped device's word at addr, or 0 if unmapped.
func (b *Bus) Read32(addr uint32) uint32 {
	dev, ok := b.devices[addr&^3]
	if !ok {
		return 0
	}
	return dev.Read32(addr)
}

// Write32 forwards the word to the mapped device, or does nothing if
// addr is unmapped.
func (b *Bus) Write32(addr uint32, value uint32) {
	if dev, ok := b.devices[addr&^3]; ok {
		dev.Write32(addr, value)
	}
}
