package system_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/n64sim/n64sim/emu"
	"github.com/n64sim/n64sim/mem"
	"github.com/n64sim/n64sim/system"
)

// header64 builds a minimal 64-byte image with the given title.
func header64(name string) []byte {
	data := make([]byte, 0x40)
	copy(data[0x20:0x34], name)
	data[0x3E] = 'E'
	return data
}

var _ = Describe("System", func() {
	var sys *system.System

	BeforeEach(func() {
		sys = system.New()
	})

	Describe("New", func() {
		It("should wire RDRAM onto the bus at its KSEG0 base", func() {
			sys.RDRAM().Write32(0x80000010, 0x12345678)
			Expect(sys.Bus().Read32(0x80000010)).To(Equal(uint32(0x12345678)))
		})

		It("should wire the peripheral register blocks", func() {
			Expect(sys.Bus().Read32(mem.SPBase + mem.SPStatusReg)).
				To(Equal(uint32(mem.SPStatusHalt)))

			sys.Bus().Write32(mem.VIBase+mem.VIWidthReg, 320)
			Expect(sys.Bus().Read32(mem.VIBase + mem.VIWidthReg)).
				To(Equal(uint32(320)))
		})

		It("should honor the configuration", func() {
			cfg := system.DefaultConfig()
			cfg.MemoryMiB = 8
			cfg.PipelineDepth = 1

			big := system.New(system.WithConfig(cfg))

			Expect(big.RDRAM().Size()).To(Equal(uint32(8 * 1024 * 1024)))
			Expect(big.CPU().Pipeline().Depth()).To(Equal(1))
		})
	})

	Describe("StepFrame", func() {
		It("should advance the cycle counter by exactly one frame's cycles", func() {
			sys.StepFrame()
			Expect(sys.CPU().Cycles()).To(Equal(uint64(1000)))

			sys.StepFrame()
			Expect(sys.CPU().Cycles()).To(Equal(uint64(2000)))
		})

		It("should run the frame-level peripheral work", func() {
			sys.StepFrame()

			Expect(sys.VI().VSyncCount()).To(Equal(uint64(1)))
			Expect(sys.SP().TasksProcessed()).To(Equal(uint64(2)))
			Expect(sys.SP().AudioSamplesGenerated()).To(Equal(uint64(544)))
			Expect(sys.AI().SamplesPlayed()).To(Equal(uint64(544)))
		})

		It("should boot the core on the first frame", func() {
			sys.StepFrame()
			Expect(sys.CPU().Booted()).To(BeTrue())
		})
	})

	Describe("Reset", func() {
		It("should restore core counters and boot state", func() {
			sys.StepFrame()
			sys.Reset()

			Expect(sys.CPU().Cycles()).To(Equal(uint64(0)))
			Expect(sys.CPU().Instructions()).To(Equal(uint64(0)))
			Expect(sys.CPU().Booted()).To(BeFalse())
			Expect(sys.CPU().Registers().PC).To(Equal(uint32(emu.ResetVector)))
		})

		It("should clear the peripheral counters", func() {
			sys.StepFrame()
			sys.Reset()

			Expect(sys.VI().VSyncCount()).To(Equal(uint64(0)))
			Expect(sys.AI().SamplesPlayed()).To(Equal(uint64(0)))
			Expect(sys.SP().TasksProcessed()).To(Equal(uint64(0)))
		})

		It("should preserve loaded memory", func() {
			sys.LoadROM([]byte{0xDE, 0xAD, 0xBE, 0xEF})
			sys.Reset()

			Expect(sys.Bus().Read32(mem.RDRAMBase)).To(Equal(uint32(0xDEADBEEF)))
		})
	})

	Describe("LoadROM", func() {
		It("should ingest the image and return its descriptor", func() {
			hdr := sys.LoadROM(header64("FRAME TEST 64"))

			Expect(hdr.Name).To(Equal("FRAME TEST 64"))
			Expect(hdr.Size).To(Equal(0x40))
			Expect(sys.ROMHeader()).To(Equal(hdr))
		})

		It("should make the image readable through the bus", func() {
			sys.LoadROM([]byte{0x37, 0x82, 0x00, 0x08})
			Expect(sys.Bus().Read32(mem.RDRAMBase)).To(Equal(uint32(0x37820008)))
		})

		It("should yield a placeholder descriptor for short images", func() {
			hdr := sys.LoadROM([]byte{1, 2, 3})
			Expect(hdr.Name).To(Equal("Invalid ROM"))
		})
	})

	Describe("LoadROMFile", func() {
		It("should leave the system untouched on a read error", func() {
			sys.LoadROM(header64("KEEP ME"))

			_, err := sys.LoadROMFile("/does/not/exist.z64")

			Expect(err).To(HaveOccurred())
			Expect(sys.ROMHeader().Name).To(Equal("KEEP ME"))
		})
	})

	Describe("SetController", func() {
		It("should surface the pose through the PIF response word", func() {
			sys.SetController(0, mem.ControllerState{Buttons: 0x1000, StickX: 5})

			Expect(sys.Bus().Read32(mem.PIFBase)).To(Equal(uint32(0x10000500)))
		})
	})

	Describe("logging", func() {
		It("should report loads and resets through the logger", func() {
			var lines []string
			logged := system.New(system.WithLogger(func(msg string) {
				lines = append(lines, msg)
			}))

			logged.LoadROM(header64("LOG TEST"))
			logged.Reset()

			Expect(lines).To(ContainElement("[RDRAM/RI] Loaded ROM (64 bytes)"))
			Expect(lines).To(ContainElement("[N64] System Reset Complete"))
		})
	})
})
