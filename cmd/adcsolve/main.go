// Command adcsolve parses an ADC2019-style board problem, encodes it to
// CNF, drives an external SAT solver over it, and prints the decoded
// answer (spec.md §6 CLI "solve <problem> <W> <H> <satprog>").
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/adc2019/encoder"
	"github.com/katalvlaran/adc2019/parser"
	"github.com/katalvlaran/adc2019/satsolver"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <problem-file> <width> <height> <sat-program>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	debug := flag.Bool("debug", false, "keep the DIMACS input and solver output temp files")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) != 4 {
		usage()
		os.Exit(2)
	}

	problemPath := args[0]
	width, err := parseDim(args[1], "width")
	if err != nil {
		log.Fatal(err)
	}
	height, err := parseDim(args[2], "height")
	if err != nil {
		log.Fatal(err)
	}
	satProg := args[3]

	f, err := os.Open(problemPath)
	if err != nil {
		log.Fatalf("adcsolve: open %s: %v", problemPath, err)
	}
	problem, err := parser.ParseProblem(f)
	f.Close()
	if err != nil {
		log.Fatalf("adcsolve: parse %s:\n%v", problemPath, err)
	}

	driver := satsolver.NewDriver(satProg)
	driver.Debug = *debug
	enc := encoder.New(driver, problem, width, height)
	enc.GenPlacementConstraint()
	enc.GenRoutingConstraint()

	result, model, err := driver.Solve()
	if err != nil {
		log.Fatalf("adcsolve: solve: %v", err)
	}

	switch result {
	case satsolver.ResultSAT:
		ans := enc.GetAnswer(model)
		if _, err := ans.WriteTo(os.Stdout); err != nil {
			log.Fatalf("adcsolve: write answer: %v", err)
		}
	case satsolver.ResultUNSAT:
		fmt.Println("UNSAT")
	default:
		fmt.Println("UNKNOWN")
		os.Exit(1)
	}
}

func parseDim(s, name string) (int, error) {
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil || v <= 0 {
		return 0, fmt.Errorf("adcsolve: invalid %s %q", name, s)
	}
	return v, nil
}
