package emu_test

import (
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/n64sim/n64sim/emu"
	"github.com/n64sim/n64sim/mem"
)

var _ = Describe("Core", func() {
	var (
		ram  *mem.RDRAM
		core *emu.Core
	)

	BeforeEach(func() {
		ram = mem.NewRDRAM(1)
		core = emu.NewCore(ram)
	})

	Describe("NewCore", func() {
		It("should come up unbooted at the reset vector", func() {
			Expect(core.Booted()).To(BeFalse())
			Expect(core.Cycles()).To(Equal(uint64(0)))
			Expect(core.Instructions()).To(Equal(uint64(0)))
			Expect(core.Registers().PC).To(Equal(uint32(emu.ResetVector)))
			Expect(core.ExceptionPending()).To(BeFalse())
		})
	})

	Describe("boot transition", func() {
		It("should jump to the boot vector on the first step", func() {
			pc := core.Step()

			Expect(core.Booted()).To(BeTrue())
			// The pipeline pre-increments past the boot vector.
			Expect(pc).To(Equal(uint32(emu.BootVector + 4)))
		})

		It("should fetch through the port from the second step on", func() {
			// ADDIU rs=1 imm=0x1005 (rd field = 2) at the boot vector's
			// physical address.
			ram.Write32(emu.BootVector&mem.AddressMask, 0x20201005)
			core.Registers().GPR[1] = 10

			core.Step() // boot
			core.Step() // fetches the word at BootVector

			depth := core.Pipeline().Depth()
			for i := 0; i < depth; i++ {
				core.Step()
			}

			Expect(core.Registers().GPR[2]).To(Equal(uint32(10 + 0x1005)))
		})

		It("should synthesize a no-op for the boot step", func() {
			core.Step()
			stage := core.Pipeline().Stage(0)

			Expect(stage.Inst).NotTo(BeNil())
			Expect(stage.Inst.IsNop()).To(BeTrue())
		})
	})

	Describe("Step", func() {
		It("should count cycles and instructions", func() {
			for i := 0; i < 10; i++ {
				core.Step()
			}

			Expect(core.Cycles()).To(Equal(uint64(10)))
			Expect(core.Instructions()).To(Equal(uint64(10)))
		})

		It("should hold the PC for a stalled cycle", func() {
			core.Step()
			pcBefore := core.Registers().PC

			core.Pipeline().Stall()
			pc := core.Step()

			Expect(pc).To(Equal(pcBefore))
			Expect(core.Registers().PC).To(Equal(pcBefore))
		})
	})

	Describe("Reset", func() {
		It("should restore the construction-time defaults", func() {
			for i := 0; i < 7; i++ {
				core.Step()
			}

			core.Reset()

			Expect(core.Cycles()).To(Equal(uint64(0)))
			Expect(core.Instructions()).To(Equal(uint64(0)))
			Expect(core.Booted()).To(BeFalse())
			Expect(core.Registers().PC).To(Equal(uint32(emu.ResetVector)))
		})

		It("should boot again on the next step", func() {
			core.Step()
			core.Reset()
			core.Step()

			Expect(core.Booted()).To(BeTrue())
			Expect(core.Registers().PC).To(Equal(uint32(emu.BootVector + 4)))
		})
	})

	Describe("trace logging", func() {
		var lines []string

		BeforeEach(func() {
			lines = nil
			core = emu.NewCore(ram, emu.WithLogger(func(msg string) {
				lines = append(lines, msg)
			}))
		})

		It("should log the boot hand-off", func() {
			core.Step()

			Expect(lines).To(ContainElement(
				fmt.Sprintf("[R4300i] Booted to 0x%08X", uint32(emu.BootVector))))
		})

		It("should emit a trace line every 500 cycles", func() {
			for i := 0; i < 1000; i++ {
				core.Step()
			}

			var traces []string
			for _, l := range lines {
				if strings.Contains(l, "Cycle") {
					traces = append(traces, l)
				}
			}
			Expect(traces).To(HaveLen(2))
			Expect(traces[0]).To(ContainSubstring("Cycle 00000500"))
			Expect(traces[1]).To(ContainSubstring("Cycle 00001000"))
		})

		It("should log the reset", func() {
			core.Reset()

			Expect(lines).To(ContainElement("[R4300i] CPU Core Reset to PIF Boot"))
		})
	})

	Describe("nil logger", func() {
		It("should behave identically without a logger", func() {
			for i := 0; i < 600; i++ {
				core.Step()
			}

			Expect(core.Cycles()).To(Equal(uint64(600)))
		})
	})

	Describe("pipeline depth option", func() {
		It("should honor the configured depth", func() {
			flat := emu.NewCore(ram, emu.WithPipelineDepth(1))
			Expect(flat.Pipeline().Depth()).To(Equal(1))
		})

		It("should keep the depth across resets", func() {
			flat := emu.NewCore(ram, emu.WithPipelineDepth(1))
			flat.Reset()
			Expect(flat.Pipeline().Depth()).To(Equal(1))
		})
	})
})
