package vm

import (
	"strings"
	"testing"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"mov r0, 1",
		"loop: add r0,r1 ; comment",
		"jmp loop",
		"out $(1+2)",
		"als X, [r0]",
		"a: b: c:",
		"MOV R0,0xff_ff",
		"mov r0, $(MEM_SIZE-1)",
		";;;",
		"hlt,",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		parser := &Parser{}
		prog, err := parser.Parse(strings.NewReader(src))
		if err == nil && prog == nil {
			t.Fatal("nil program without error")
		}
		if err != nil && prog != nil {
			t.Fatal("program with error")
		}
	})
}
