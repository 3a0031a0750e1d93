/*
Copyright © 2023 Jeff Berkowitz (pdxjjb@gmail.com)

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package sim_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gmofishsauce/hackasm/pkg/asm"
	"github.com/gmofishsauce/hackasm/pkg/sim"
)

func build(source string) *sim.Engine {
	p, err := asm.Assemble(strings.NewReader(source), "test", asm.Options{})
	Expect(err).NotTo(HaveOccurred())
	return sim.NewEngine(p.Words)
}

func peek(e *sim.Engine, addr uint16) uint16 {
	v, err := e.Peek(addr)
	Expect(err).NotTo(HaveOccurred())
	return v
}

func s16(i int) uint16 {
	return uint16(int16(i))
}

const maxProgram = `
@R0
D=M
@R1
D=D-M
@OUTPUT_FIRST
D;JGT
@R1
D=M
@OUTPUT_D
0;JMP
(OUTPUT_FIRST)
@R0
D=M
(OUTPUT_D)
@R2
M=D
(INFINITE_LOOP)
@INFINITE_LOOP
0;JMP
`

var _ = Describe("Engine", func() {
	It("should add two constants", func() {
		e := build("@2\nD=A\n@3\nD=D+A\n@0\nM=D\n")
		n, err := e.Run(1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(uint64(6)))
		Expect(e.Halted()).To(BeTrue())
		Expect(peek(e, 0)).To(Equal(uint16(5)))
		Expect(e.D()).To(Equal(uint16(5)))
		Expect(e.A()).To(Equal(uint16(0)))
	})

	DescribeTable("max",
		func(r0, r1, want int) {
			e := build(maxProgram)
			Expect(e.Poke(0, s16(r0))).To(Succeed())
			Expect(e.Poke(1, s16(r1))).To(Succeed())
			_, err := e.Run(1000)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Halted()).To(BeTrue())
			Expect(e.PC()).To(Equal(uint16(14)))
			Expect(peek(e, 2)).To(Equal(s16(want)))
		},
		Entry("second larger", 3, 5, 5),
		Entry("first larger", 9, 2, 9),
		Entry("negative", -4, -9, -4),
	)

	It("should not mistake a counting loop for a halt", func() {
		e := build("@5\nD=A\n(L)\n@L\nD=D-1;JGT\n@R0\nM=D\n")
		Expect(e.Poke(0, 99)).To(Succeed())
		n, err := e.Run(1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(uint64(14)))
		Expect(peek(e, 0)).To(Equal(uint16(0)))
	})

	It("should stop at the cycle limit", func() {
		e := build("(L)\n@L\nD=D+1;JMP\n")
		n, err := e.Run(100)
		Expect(n).To(Equal(uint64(100)))
		var cle sim.CycleLimitError
		Expect(errors.As(err, &cle)).To(BeTrue())
		Expect(e.Halted()).To(BeFalse())
	})

	It("should reject memory past the keyboard", func() {
		e := build("@30000\nM=1\n")
		_, err := e.Run(10)
		var bae *sim.BadAddressError
		Expect(errors.As(err, &bae)).To(BeTrue())
		Expect(bae.Addr).To(Equal(uint16(30000)))
		Expect(bae.PC).To(Equal(uint16(1)))
	})

	It("should read the keyboard", func() {
		e := build("@KBD\nD=M\n@R0\nM=D\n")
		e.SetKey(65)
		_, err := e.Run(10)
		Expect(err).NotTo(HaveOccurred())
		Expect(peek(e, 0)).To(Equal(uint16(65)))
	})

	It("should write the screen", func() {
		e := build("@SCREEN\nM=-1\n")
		_, err := e.Run(10)
		Expect(err).NotTo(HaveOccurred())
		Expect(peek(e, sim.ScreenBase)).To(Equal(uint16(0xFFFF)))
	})

	It("should report halted after halting", func() {
		e := build("@1\n")
		_, err := e.Run(10)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Step()).To(MatchError(sim.ErrHalted))
		e.Reset()
		Expect(e.Halted()).To(BeFalse())
		Expect(e.Step()).To(Succeed())
		Expect(e.A()).To(Equal(uint16(1)))
	})

	DescribeTable("comp",
		func(comp string, want int) {
			e := build("@7\nD=A\n@100\nD=" + comp + "\n")
			Expect(e.Poke(100, s16(-3))).To(Succeed())
			_, err := e.Run(10)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.D()).To(Equal(s16(want)))
		},
		Entry("0", "0", 0),
		Entry("1", "1", 1),
		Entry("-1", "-1", -1),
		Entry("D", "D", 7),
		Entry("A", "A", 100),
		Entry("M", "M", -3),
		Entry("!D", "!D", ^7),
		Entry("!A", "!A", ^100),
		Entry("!M", "!M", 2),
		Entry("-D", "-D", -7),
		Entry("-A", "-A", -100),
		Entry("-M", "-M", 3),
		Entry("D+1", "D+1", 8),
		Entry("A+1", "A+1", 101),
		Entry("M+1", "M+1", -2),
		Entry("D-1", "D-1", 6),
		Entry("A-1", "A-1", 99),
		Entry("M-1", "M-1", -4),
		Entry("D+A", "D+A", 107),
		Entry("D+M", "D+M", 4),
		Entry("D-A", "D-A", -93),
		Entry("D-M", "D-M", 10),
		Entry("A-D", "A-D", 93),
		Entry("M-D", "M-D", -10),
		Entry("D&A", "D&A", 4),
		Entry("D&M", "D&M", 5),
		Entry("D|A", "D|A", 103),
		Entry("D|M", "D|M", -1),
	)

	DescribeTable("jump",
		func(val string, jmp string, taken bool) {
			src := "D=" + val + "\n@TAKEN\nD;" + jmp + "\n@R0\nM=0\n@END\n0;JMP\n" +
				"(TAKEN)\n@R0\nM=1\n(END)\n@END\n0;JMP\n"
			e := build(src)
			Expect(e.Poke(0, 0xFFFF)).To(Succeed())
			_, err := e.Run(100)
			Expect(err).NotTo(HaveOccurred())
			if taken {
				Expect(peek(e, 0)).To(Equal(uint16(1)))
			} else {
				Expect(peek(e, 0)).To(Equal(uint16(0)))
			}
		},
		Entry("JGT on 1", "1", "JGT", true),
		Entry("JGT on 0", "0", "JGT", false),
		Entry("JEQ on 0", "0", "JEQ", true),
		Entry("JEQ on -1", "-1", "JEQ", false),
		Entry("JGE on 0", "0", "JGE", true),
		Entry("JGE on -1", "-1", "JGE", false),
		Entry("JLT on -1", "-1", "JLT", true),
		Entry("JLT on 0", "0", "JLT", false),
		Entry("JNE on 1", "1", "JNE", true),
		Entry("JNE on 0", "0", "JNE", false),
		Entry("JLE on -1", "-1", "JLE", true),
		Entry("JLE on 1", "1", "JLE", false),
		Entry("JMP on 0", "0", "JMP", true),
	)
})
