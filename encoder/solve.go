package encoder

import (
	"github.com/katalvlaran/adc2019/puzzle"
	"github.com/katalvlaran/adc2019/satsolver"
)

// Solve encodes problem onto a width x height board, invokes satProg,
// and decodes a satisfying model into a puzzle.Answer. It builds the
// board with the given width/height rather than problem's own
// max_width/max_height, matching spec.md §9.
//
// On ResultSAT the returned Answer is non-nil. On ResultUNSAT or
// ResultUnknown the Answer is nil; err is non-nil only for a subprocess
// or I/O failure, not for a legitimate UNSAT/unknown result (spec.md §7).
func Solve(problem *puzzle.Problem, width, height int, satProg string) (*puzzle.Answer, satsolver.Result, error) {
	driver := satsolver.NewDriver(satProg)
	enc := New(driver, problem, width, height)

	enc.GenPlacementConstraint()
	enc.GenRoutingConstraint()

	result, model, err := driver.Solve()
	if err != nil {
		return nil, satsolver.ResultUnknown, err
	}
	if result != satsolver.ResultSAT {
		return nil, result, nil
	}

	return enc.GetAnswer(model), result, nil
}
