package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"asmvm/host"
	"asmvm/vm"
)

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %v [-v] program.asm\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	source := flag.Arg(0)
	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	parser := &vm.Parser{Verbose: verbose}
	prog, err := parser.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	h := host.NewLocal(os.Stdout)
	defer h.Close()

	machine := vm.NewMachine(prog, h)
	machine.Verbose = verbose
	machine.Reset()

	err = machine.Run()
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
}
