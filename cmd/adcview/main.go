// Command adcview renders a board problem, and optionally a solved
// answer alongside it, as plain text (spec.md §6 CLI "view <problem>
// [--answer <answer>]"; graphical rendering is explicitly out of scope).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/adc2019/parser"
	"github.com/katalvlaran/adc2019/puzzle"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [--answer <answer-file>] <problem-file>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	answerPath := flag.String("answer", "", "optional answer file to render over the problem")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}

	problem := mustParseProblem(args[0])

	fmt.Printf("board: %dx%d, %d blocks, %d lines\n",
		problem.MaxWidth(), problem.MaxHeight(), problem.BlockNum(), len(problem.LineIDs()))
	for _, b := range problem.Blocks() {
		fmt.Printf("  block #%d: %dx%d %s\n", b.ID(), b.Width(), b.Height(), b.Type())
	}

	if *answerPath == "" {
		return
	}

	ans := mustParseAnswer(*answerPath, problem.BlockNum())
	printGrid(ans)
}

func mustParseProblem(path string) *puzzle.Problem {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("adcview: open %s: %v", path, err)
	}
	defer f.Close()

	problem, err := parser.ParseProblem(f)
	if err != nil {
		log.Fatalf("adcview: parse %s:\n%v", path, err)
	}
	return problem
}

func mustParseAnswer(path string, blockNum int) *puzzle.Answer {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("adcview: open %s: %v", path, err)
	}
	defer f.Close()

	ans, err := parser.ParseAnswer(f, blockNum)
	if err != nil {
		log.Fatalf("adcview: parse %s:\n%v", path, err)
	}
	return ans
}

func printGrid(ans *puzzle.Answer) {
	fmt.Println("answer:")
	for _, id := range ans.BlockIDs() {
		pos, _ := ans.BlockPos(id)
		fmt.Printf("  block #%d @%s\n", id, pos.String())
	}
	if _, err := ans.WriteTo(os.Stdout); err != nil {
		log.Fatalf("adcview: render answer: %v", err)
	}
}
