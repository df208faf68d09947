/*
sequitur-fingerprint is a console utility printing a Sequitur grammar's
Fingerprint for a file's byte content. Usage is

	sequitur-fingerprint [-v] <file>

-v flag also prints grammar.Stats before the fingerprint line.

<file> defines the input file; "-" reads from stdin.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ava12/sequitur/grammar"
)

var verbose bool

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage is  sequitur-fingerprint [-v] <file>")
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), "  <file>")
		fmt.Fprintln(flag.CommandLine.Output(), "\tinput file name, \"-\" reads from stdin")
	}

	flag.BoolVar(&verbose, "v", false, "also print grammar stats")
	flag.Parse()

	fileName := flag.Arg(0)
	if fileName == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, e := readInput(fileName)
	if e != nil {
		fmt.Println(e.Error())
		os.Exit(3)
	}

	e = run(data)
	if e != nil {
		fmt.Println(e.Error())
		os.Exit(4)
	}
}

func readInput(fileName string) ([]byte, error) {
	if fileName == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(fileName)
}

func run(data []byte) error {
	e := grammar.New[byte]()
	e.Extend(data)

	if verbose {
		st := e.Stats()
		fmt.Printf("input length: %d\n", st.InputLength)
		fmt.Printf("rule count: %d\n", st.RuleCount)
		fmt.Printf("grammar symbols: %d\n", st.GrammarSymbolCount)
		fmt.Printf("compression ratio: %.4f\n", st.CompressionRatio)
	}

	fmt.Printf("%016x\n", e.Fingerprint())
	return nil
}
