// Package system assembles the console: one CPU core wired to one bus/RDRAM
// pair plus the peripheral register stubs. The external GUI collaborator
// drives it a frame at a time and reads registers and counters back for
// display; nothing here spawns goroutines or blocks.
package system

import (
	"fmt"

	"github.com/n64sim/n64sim/emu"
	"github.com/n64sim/n64sim/mem"
	"github.com/n64sim/n64sim/rom"
)

// Option is a functional option for configuring the System.
type Option func(*System)

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(s *System) {
		s.cfg = cfg
	}
}

// WithLogger sets the trace line sink shared by the system and its core.
func WithLogger(logger emu.Logger) Option {
	return func(s *System) {
		s.logger = logger
	}
}

// System owns exactly one CPU core and one bus/RDRAM pair, along with the
// peripheral stubs registered on the bus. Ownership is exclusive: no other
// entity holds these.
type System struct {
	cfg    *Config
	logger emu.Logger

	cpu *emu.Core
	bus *mem.Bus
	ram *mem.RDRAM

	vi  *mem.VI
	ai  *mem.AI
	sp  *mem.SP
	pif *mem.PIF

	romHeader rom.Header
}

// New builds a system with the full memory map: RDRAM at its KSEG0 base and
// the SP, VI, AI, and PIF register blocks at their hardware addresses.
func New(opts ...Option) *System {
	s := &System{
		cfg: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.bus = mem.NewBus()
	s.ram = mem.NewRDRAM(s.cfg.MemoryMiB)
	s.vi = mem.NewVI()
	s.ai = mem.NewAI()
	s.sp = mem.NewSP()
	s.pif = mem.NewPIF()

	s.bus.RegisterDevice(mem.RDRAMBase, s.ram.Size(), s.ram)
	s.bus.RegisterDevice(mem.SPBase, mem.RegBlockSize, s.sp)
	s.bus.RegisterDevice(mem.VIBase, mem.RegBlockSize, s.vi)
	s.bus.RegisterDevice(mem.AIBase, mem.RegBlockSize, s.ai)
	s.bus.RegisterDevice(mem.PIFBase, mem.RegBlockSize, s.pif)

	s.cpu = emu.NewCore(
		s.bus,
		emu.WithLogger(s.logger),
		emu.WithPipelineDepth(s.cfg.PipelineDepth),
	)

	return s
}

// CPU returns the system's core.
func (s *System) CPU() *emu.Core {
	return s.cpu
}

// Bus returns the system's bus.
func (s *System) Bus() *mem.Bus {
	return s.bus
}

// RDRAM returns the system's main memory.
func (s *System) RDRAM() *mem.RDRAM {
	return s.ram
}

// VI returns the video interface stub.
func (s *System) VI() *mem.VI {
	return s.vi
}

// AI returns the audio interface stub.
func (s *System) AI() *mem.AI {
	return s.ai
}

// SP returns the signal processor stub.
func (s *System) SP() *mem.SP {
	return s.sp
}

// PIF returns the peripheral interface stub.
func (s *System) PIF() *mem.PIF {
	return s.pif
}

// ROMHeader returns the descriptor of the most recently loaded image.
func (s *System) ROMHeader() rom.Header {
	return s.romHeader
}

// Reset reinitializes the core and the peripheral stubs. Memory contents,
// including a loaded ROM image, are preserved.
func (s *System) Reset() {
	s.cpu.Reset()
	s.vi.Reset()
	s.ai.Reset()
	s.sp.Reset()
	s.pif.Reset()
	s.log("[N64] System Reset Complete")
}

// StepFrame runs one video frame: the configured number of CPU cycles, then
// the frame-level peripheral work (SP graphics and audio tasks, the audio
// sample batch, and the vertical sync).
func (s *System) StepFrame() {
	for i := 0; i < s.cfg.CyclesPerFrame; i++ {
		s.cpu.Step()
	}

	s.sp.ProcessTask(mem.SPTaskGraphics)
	s.sp.ProcessTask(mem.SPTaskAudio)
	s.ai.PlaySamples(mem.AudioFrameSamples)
	s.vi.VSync()
}

// LoadROM ingests an image into RDRAM and returns its display descriptor.
func (s *System) LoadROM(data []byte) rom.Header {
	n := s.ram.LoadROM(data)
	s.romHeader = rom.ParseHeader(data)
	s.log(fmt.Sprintf("[RDRAM/RI] Loaded ROM (%d bytes)", n))
	return s.romHeader
}

// LoadROMFile reads an image from disk and ingests it. On a read error the
// system is left untouched.
func (s *System) LoadROMFile(path string) (rom.Header, error) {
	data, err := rom.ReadFile(path)
	if err != nil {
		return rom.Header{}, err
	}
	return s.LoadROM(data), nil
}

// SetController records a controller pose on the PIF for the given port.
func (s *System) SetController(port int, state mem.ControllerState) {
	s.pif.SetController(port, state)
}

func (s *System) log(msg string) {
	if s.logger != nil {
		s.logger(msg)
	}
}
