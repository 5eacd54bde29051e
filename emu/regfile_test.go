package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/n64sim/n64sim/emu"
)

var _ = Describe("RegFile", func() {
	It("should come up with the reset-time defaults", func() {
		regs := emu.NewRegFile()

		Expect(regs.PC).To(Equal(uint32(emu.ResetVector)))
		Expect(regs.CP0.Status).To(Equal(uint32(emu.ResetStatus)))
		Expect(regs.HI).To(Equal(uint32(0)))
		Expect(regs.LO).To(Equal(uint32(0)))
		for i, v := range regs.GPR {
			Expect(v).To(Equal(uint32(0)), "GPR[%d]", i)
		}
	})

	It("should wrap integer values at 32 bits", func() {
		regs := emu.NewRegFile()
		regs.GPR[1] = 0xFFFFFFFF
		regs.GPR[1]++

		Expect(regs.GPR[1]).To(Equal(uint32(0)))
	})
})
