package mem

// Peripheral register block base addresses. Each block is registered on the
// bus over a small window; the devices behind them are stubs that keep
// frame-level counters rather than modeling DMA or interrupts.
const (
	SPBase  = 0x04040000
	VIBase  = 0x04400000
	AIBase  = 0x04500000
	PIFBase = 0x1FC007C0

	// RegBlockSize is the window each register stub claims on the bus.
	RegBlockSize = 0x40
)

// VI register offsets.
const (
	VIOriginReg  = 0x04
	VIWidthReg   = 0x08
	VIIntrReg    = 0x0C
	VICurrentReg = 0x10
)

// VI is the video interface stub. It latches whatever the program writes to
// its registers and counts vertical syncs; no pixels are produced.
type VI struct {
	regs [RegBlockSize / 4]uint32

	currentLine uint32
	vsyncCount  uint64
}

// NewVI creates a video interface stub.
func NewVI() *VI {
	return &VI{}
}

// Read32 returns the latched register value. VI_CURRENT reads back the
// current half-line instead of a latch.
func (v *VI) Read32(addr uint32) uint32 {
	off := (addr - VIBase) % RegBlockSize
	if off == VICurrentReg {
		return v.currentLine
	}
	return v.regs[off/4]
}

// Write32 latches the register value.
func (v *VI) Write32(addr uint32, value uint32) {
	off := (addr - VIBase) % RegBlockSize
	v.regs[off/4] = value
}

// VSync marks the end of a frame: the sync counter advances and the line
// counter rewinds to the top of the screen.
func (v *VI) VSync() {
	v.vsyncCount++
	v.currentLine = 0
}

// VSyncCount returns the number of frames synced since reset.
func (v *VI) VSyncCount() uint64 {
	return v.vsyncCount
}

// Reset clears all latched registers and counters.
func (v *VI) Reset() {
	*v = VI{}
}

// AI register offsets.
const (
	AIDramAddrReg = 0x00
	AILenReg      = 0x04
	AIStatusReg   = 0x0C
)

// AI is the audio interface stub. Writes to AI_LEN account for samples
// "played" (4 bytes per stereo 16-bit sample); nothing reaches a speaker.
type AI struct {
	regs [RegBlockSize / 4]uint32

	samplesPlayed uint64
}

// NewAI creates an audio interface stub.
func NewAI() *AI {
	return &AI{}
}

// Read32 returns the latched register value. AI_STATUS always reads back
// idle: the stub never has a transfer in flight.
func (a *AI) Read32(addr uint32) uint32 {
	off := (addr - AIBase) % RegBlockSize
	if off == AIStatusReg {
		return 0
	}
	return a.regs[off/4]
}

// Write32 latches the register value. A write to AI_LEN is treated as a
// completed transfer of that many bytes.
func (a *AI) Write32(addr uint32, value uint32) {
	off := (addr - AIBase) % RegBlockSize
	a.regs[off/4] = value
	if off == AILenReg {
		a.samplesPlayed += uint64(value / 4)
	}
}

// PlaySamples accounts for count samples played outside of register traffic.
// The frame loop uses this in place of real audio DMA.
func (a *AI) PlaySamples(count int) {
	a.samplesPlayed += uint64(count)
}

// SamplesPlayed returns the running sample count since reset.
func (a *AI) SamplesPlayed() uint64 {
	return a.samplesPlayed
}

// Reset clears all latched registers and counters.
func (a *AI) Reset() {
	*a = AI{}
}

// SP register offsets.
const (
	SPStatusReg = 0x10

	// SPStatusHalt is the halt bit; the stub's RSP never runs, so status
	// always reads back halted.
	SPStatusHalt = 0x1
)

// SPTaskKind names the kind of work handed to the signal processor stub.
type SPTaskKind string

// Task kinds the frame loop hands to the SP.
const (
	SPTaskGraphics SPTaskKind = "graphics"
	SPTaskAudio    SPTaskKind = "audio"
)

// AudioFrameSamples is the standard per-frame audio batch size.
const AudioFrameSamples = 544

// SP is the signal processor stub. It counts tasks handed to it per frame
// and generates a fixed per-frame audio sample count for audio tasks.
type SP struct {
	tasksProcessed        uint64
	audioSamplesGenerated uint64
}

// NewSP creates a signal processor stub.
func NewSP() *SP {
	return &SP{}
}

// Read32 reads back halted status; all other registers read as zero.
func (s *SP) Read32(addr uint32) uint32 {
	if (addr-SPBase)%RegBlockSize == SPStatusReg {
		return SPStatusHalt
	}
	return 0
}

// Write32 is ignored; the stub's RSP cannot be started.
func (s *SP) Write32(addr uint32, value uint32) {}

// ProcessTask accounts for one task of the given kind.
func (s *SP) ProcessTask(kind SPTaskKind) {
	s.tasksProcessed++
	if kind == SPTaskAudio {
		s.audioSamplesGenerated += AudioFrameSamples
	}
}

// TasksProcessed returns the number of tasks handed to the SP since reset.
func (s *SP) TasksProcessed() uint64 {
	return s.tasksProcessed
}

// AudioSamplesGenerated returns the audio samples generated since reset.
func (s *SP) AudioSamplesGenerated() uint64 {
	return s.audioSamplesGenerated
}

// Reset clears the task counters.
func (s *SP) Reset() {
	*s = SP{}
}

// ControllerState is one controller's pose: a button bitmap plus the analog
// stick axes. The external GUI collaborator pokes this in from keyboard or
// gamepad input.
type ControllerState struct {
	Buttons uint16
	StickX  int8
	StickY  int8
}

// Word packs the state into the standard 4-byte controller response.
func (c ControllerState) Word() uint32 {
	return uint32(c.Buttons)<<16 | uint32(uint8(c.StickX))<<8 | uint32(uint8(c.StickY))
}

// PIFPorts is the number of controller ports the PIF serves.
const PIFPorts = 4

// PIF is the peripheral interface stub: 64 bytes of command RAM plus the
// latest state of each controller port. Reads over a port's response slot
// return the packed controller word.
type PIF struct {
	ram         [RegBlockSize]byte
	controllers [PIFPorts]ControllerState
}

// NewPIF creates a peripheral interface stub.
func NewPIF() *PIF {
	return &PIF{}
}

// SetController records the latest pose for a controller port. Out-of-range
// ports are ignored.
func (p *PIF) SetController(port int, state ControllerState) {
	if port < 0 || port >= PIFPorts {
		return
	}
	p.controllers[port] = state
}

// Controller returns the latest pose for a controller port. Out-of-range
// ports read as released.
func (p *PIF) Controller(port int) ControllerState {
	if port < 0 || port >= PIFPorts {
		return ControllerState{}
	}
	return p.controllers[port]
}

// Read32 returns command RAM contents, except that each port's response
// word (the first word of every 8-byte command slot) reads back the live
// controller state.
func (p *PIF) Read32(addr uint32) uint32 {
	off := (addr - PIFBase) % RegBlockSize
	if off%8 == 0 && off/8 < PIFPorts {
		return p.controllers[off/8].Word()
	}
	var v uint32
	for i := uint32(0); i < 4; i++ {
		v = v<<8 | uint32(p.ram[(off+i)%RegBlockSize])
	}
	return v
}

// Write32 stores the word into command RAM big-endian.
func (p *PIF) Write32(addr uint32, value uint32) {
	off := (addr - PIFBase) % RegBlockSize
	for i := uint32(0); i < 4; i++ {
		p.ram[(off+i)%RegBlockSize] = byte(value >> (24 - 8*i))
	}
}

// Reset clears command RAM and controller state.
func (p *PIF) Reset() {
	*p = PIF{}
}
