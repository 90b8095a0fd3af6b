package ssi

import "errors"

//ErrConflict is returned when a commit observed a concurrent write to a row it read
var ErrConflict = errors.New("commit conflict")

//Oracle hands out logical commit timestamps and detects conflicting commits,
//after the status oracle in "A critique of snapshot isolation" [M Yabandeh, 2012]
type Oracle struct {
	time    uint64
	commits map[KH]uint64
}

//NewOracle creates the status oracle
func NewOracle() *Oracle {
	return &Oracle{
		time:    1,
		commits: make(map[KH]uint64),
	}
}

//Curr returns the current logical time kept by the oracle
func (o *Oracle) Curr() uint64 {
	return o.time
}

//Commit checks whether any transaction committed a write after time 'ts' to a
//row in the read set 'rr'. If so the commit is refused and 0 is returned,
//otherwise the write rows 'rw' are stamped with a fresh commit time.
func (o *Oracle) Commit(rr, rw KeySet, ts uint64) (tc uint64) {
	for r := range rr {
		if o.commits[r] > ts {
			return 0 //read row was overwritten since we started, conflict
		}
	}

	o.time++
	for r := range rw {
		o.commits[r] = o.time
	}

	return o.time
}
