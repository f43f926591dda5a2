package parser

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/adc2019/block"
	"github.com/katalvlaran/adc2019/position"
	"github.com/katalvlaran/adc2019/puzzle"
)

var (
	reSize     = regexp.MustCompile(`(?i)^SIZE\s+([1-9][0-9]*)\s*X\s*([1-9][0-9]*)`)
	reBlockNum = regexp.MustCompile(`(?i)^BLOCK_NUM\s+([1-9][0-9]*)`)
	reBlock    = regexp.MustCompile(`(?i)^BLOCK#([1-9][0-9]*)\s+([1-9][0-9]*)\s*X\s*([1-9][0-9]*)`)
	reBlock2   = regexp.MustCompile(`(?i)^BLOCK#([1-9][0-9]*)\s+@\(\s*([0-9]+)\s*,\s*([0-9]+)\s*\)`)
)

// lineReader wraps a *bufio.Scanner with 1-based line counting. rawNext
// returns the next physical line unconditionally (including blanks);
// next skips blank lines, matching the reference parser's two distinct
// read primitives (block body rows use rawNext; header lines use next).
type lineReader struct {
	sc     *bufio.Scanner
	lineNo int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &lineReader{sc: sc}
}

func (lr *lineReader) rawNext() (string, bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.lineNo++
	return lr.sc.Text(), true
}

func (lr *lineReader) next() (string, bool) {
	for {
		line, ok := lr.rawNext()
		if !ok {
			return "", false
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed, true
		}
	}
}

// problemParser holds the mutable state of one ParseProblem invocation.
type problemParser struct {
	lr      *lineReader
	errs    ErrorList
	problem *puzzle.Problem

	hasSize     bool
	sizeLine    int
	hasBlockNum bool
	blockNumLn  int
	blockNum    int

	curLine   string
	curLineNo int
}

func (pp *problemParser) error(msg string) {
	pp.errs = append(pp.errs, &SyntaxError{Line: pp.curLineNo, Text: pp.curLine, Message: msg})
}

// ParseProblem reads the problem text format described in spec.md §6.
// On success it returns a fully populated *puzzle.Problem and a nil
// error. On any parse error it returns (nil, ErrorList) accumulating
// every error found (spec.md §7).
func ParseProblem(r io.Reader) (*puzzle.Problem, error) {
	pp := &problemParser{lr: newLineReader(r)}

	for {
		line, ok := pp.lr.next()
		if !ok {
			break
		}
		pp.curLine = line
		pp.curLineNo = pp.lr.lineNo

		if pp.readSize() {
			continue
		}
		if pp.readBlockNum() {
			continue
		}
		if matched, done := pp.readBlock(); matched {
			if done {
				break
			}
			continue
		}
		pp.error("syntax error")
	}

	if len(pp.errs) > 0 {
		return nil, pp.errs
	}
	if pp.problem == nil {
		pp.error("missing SIZE line")
		return nil, pp.errs
	}
	return pp.problem, nil
}

func (pp *problemParser) readSize() bool {
	m := reSize.FindStringSubmatch(pp.curLine)
	if m == nil {
		return false
	}
	if pp.hasSize {
		pp.error("duplicated 'SIZE' line, previously defined at line " + strconv.Itoa(pp.sizeLine))
		return true
	}
	width, _ := strconv.Atoi(m[1])
	height, _ := strconv.Atoi(m[2])
	pp.problem = puzzle.NewProblem(width, height)
	pp.hasSize = true
	pp.sizeLine = pp.curLineNo
	return true
}

func (pp *problemParser) readBlockNum() bool {
	m := reBlockNum.FindStringSubmatch(pp.curLine)
	if m == nil {
		return false
	}
	if pp.hasBlockNum {
		pp.error("duplicated 'BLOCK_NUM' line, previously defined at line " + strconv.Itoa(pp.blockNumLn))
		return true
	}
	pp.blockNum, _ = strconv.Atoi(m[1])
	pp.hasBlockNum = true
	pp.blockNumLn = pp.curLineNo
	return true
}

// readBlock reads one BLOCK#k declaration and its body rows. matched
// reports whether the current line was a BLOCK# header at all; done
// reports whether the declared block count has now been reached (the
// parser's termination condition per spec.md §6).
func (pp *problemParser) readBlock() (matched, done bool) {
	m := reBlock.FindStringSubmatch(pp.curLine)
	if m == nil {
		return false, false
	}
	matched = true

	blockID, _ := strconv.Atoi(m[1])
	bw, _ := strconv.Atoi(m[2])
	bh, _ := strconv.Atoi(m[3])

	if pp.problem == nil {
		pp.error("BLOCK# line before SIZE line")
		return true, false
	}

	offsets := make([]position.Position, 0, bw*bh)
	labels := make(map[position.Position]int)

	for y := 0; y < bh; y++ {
		row, ok := pp.lr.rawNext()
		if !ok {
			pp.error("unexpected end of file while reading block body")
			return true, false
		}
		fields := strings.Split(row, ",")
		if len(fields) != bw {
			pp.curLine = row
			pp.curLineNo = pp.lr.lineNo
			pp.error("number of block patterns mismatch")
			return true, false
		}
		for x, raw := range fields {
			tok := strings.TrimSpace(raw)
			if tok == "+" {
				pos := position.New(x, y)
				offsets = append(offsets, pos)
				continue
			}
			label, err := strconv.Atoi(tok)
			if err != nil {
				pp.curLine = row
				pp.curLineNo = pp.lr.lineNo
				pp.error("invalid block cell token: " + tok)
				return true, false
			}
			if label == 0 {
				continue // outside the block's region
			}
			pos := position.New(x, y)
			offsets = append(offsets, pos)
			labels[pos] = label
		}
	}

	b, err := block.New(blockID, offsets, labels)
	if err != nil {
		pp.error(err.Error())
		return true, false
	}
	pp.problem.AddBlock(b)

	if pp.hasBlockNum && pp.problem.BlockNum() == pp.blockNum {
		done = true
	}
	return true, done
}

// ParseAnswer reads the answer text format described in spec.md §6.
// blockNum is the expected number of BLOCK# placement lines, normally
// puzzle.Problem.BlockNum() of the matching problem.
func ParseAnswer(r io.Reader, blockNum int) (*puzzle.Answer, error) {
	lr := newLineReader(r)
	var errs ErrorList

	line, ok := lr.next()
	if !ok {
		errs = append(errs, &SyntaxError{Line: lr.lineNo, Message: "[A1] syntax error"})
		return nil, errs
	}

	m := reSize.FindStringSubmatch(line)
	if m == nil {
		errs = append(errs, &SyntaxError{Line: lr.lineNo, Text: line, Message: "[A2] 'SIZE' expected"})
		return nil, errs
	}
	width, _ := strconv.Atoi(m[1])
	height, _ := strconv.Atoi(m[2])
	answer := puzzle.NewAnswer(width, height)

	for y := 0; y < height; y++ {
		row, ok := lr.next()
		if !ok {
			errs = append(errs, &SyntaxError{Line: lr.lineNo, Message: "[A3] syntax error"})
			return nil, errs
		}
		fields := strings.Split(row, ",")
		if len(fields) != width {
			errs = append(errs, &SyntaxError{Line: lr.lineNo, Text: row, Message: "[A4] syntax error"})
			return nil, errs
		}
		for x, raw := range fields {
			tok := strings.TrimSpace(raw)
			if tok == "+" {
				continue
			}
			label, err := strconv.Atoi(tok)
			if err != nil {
				errs = append(errs, &SyntaxError{Line: lr.lineNo, Text: row, Message: "[A4] invalid label: " + tok})
				return nil, errs
			}
			answer.SetLabel(position.New(x, y), label)
		}
	}

	for blockID := 1; blockID <= blockNum; blockID++ {
		row, ok := lr.next()
		if !ok {
			errs = append(errs, &SyntaxError{Line: lr.lineNo, Message: "[A6] syntax error"})
			return nil, errs
		}
		bm := reBlock2.FindStringSubmatch(row)
		if bm == nil {
			errs = append(errs, &SyntaxError{Line: lr.lineNo, Text: row, Message: "[A7] syntax error"})
			return nil, errs
		}
		actID, _ := strconv.Atoi(bm[1])
		x, _ := strconv.Atoi(bm[2])
		y, _ := strconv.Atoi(bm[3])
		if actID != blockID {
			errs = append(errs, &SyntaxError{
				Line: lr.lineNo, Text: row,
				Message: "[A5] wrong BLOCK#, " + strconv.Itoa(blockID) + " expected",
			})
			return nil, errs
		}
		answer.SetBlockPos(blockID, position.New(x, y))
	}

	return answer, nil
}
