package testkit

import (
	"fmt"

	"errata"
)

// CheckErrataInvariants runs the structural invariants every Errata must
// hold after any sequence of operations:
// 1) Count matches the number of reachable annotations
// 2) the aggregate severity is the maximum over annotation levels, or
// DefaultSeverity when there are none
// 3) IsOK agrees with Count and the aggregate severity
func CheckErrataInvariants(e *errata.Errata) error {
	if e == nil {
		return fmt.Errorf("nil errata")
	}
	anns := e.Annotations()
	if len(anns) != e.Count() {
		return fmt.Errorf("count mismatch: Count()=%d, reachable=%d", e.Count(), len(anns))
	}

	if len(anns) == 0 {
		if e.Severity() != errata.DefaultSeverity {
			return fmt.Errorf("empty errata severity: got=%v want=%v", e.Severity(), errata.DefaultSeverity)
		}
		if !e.IsOK() {
			return fmt.Errorf("empty errata must be ok")
		}
		return nil
	}

	agg := anns[0].Severity()
	for _, a := range anns[1:] {
		agg = max(agg, a.Severity())
	}
	if e.Severity() != agg {
		return fmt.Errorf("aggregate severity: got=%v want=%v", e.Severity(), agg)
	}

	wantOK := agg < errata.FailureSeverity
	if e.IsOK() != wantOK {
		return fmt.Errorf("IsOK()=%v with severity %v", e.IsOK(), agg)
	}
	return nil
}
