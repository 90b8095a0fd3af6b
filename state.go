package bbx

import (
	"fmt"

	"github.com/advanderveer/bbx/ssi"
)

//State holds the sale's shared mutable rows behind serializable snapshot
//isolation: every operation reads and writes through one transaction and the
//commit either lands fully or not at all. Two operations racing for the same
//row cannot both commit, which is what turns the capacity decrement into an
//exactly-once affair.
type State struct {
	db *ssi.DB
}

//NewState initializes a state, reconstructing from an existing write log
func NewState(log []*Write) (s *State, err error) {
	s = &State{db: ssi.NewDB()}

	for _, w := range log {
		err = s.Apply(w)
		if err != nil {
			return nil, err
		}
	}

	return
}

//Apply commits the write to the state. Writes that conflict with reads made
//since their snapshot are refused and nothing of them is applied.
func (s *State) Apply(w *Write) (err error) {
	if w == nil {
		return //update calls without writes produce nil
	}

	err = s.db.Commit(w.TxData)
	if err == ssi.ErrConflict {
		return ErrApplyConflict
	}

	if err != nil {
		return fmt.Errorf("bbx: failed to commit write: %v", err)
	}

	return
}

//View data from the state, any writes made by 'f' are ignored
func (s *State) View(f func(kv *KV)) {
	f(&KV{s.db.NewTx()})
}

//Update runs 'f' on a snapshot and returns the resulting write without
//applying it. The caller decides whether the write commits, a write that is
//never applied has no effect.
func (s *State) Update(f func(kv *KV)) (w *Write) {
	tx := s.db.NewTx()
	f(&KV{tx})
	w = &Write{TxData: tx.Data()}
	if len(w.TxData.WriteRows) < 1 {
		return nil //no write rows means an empty op, make it nil
	}

	return
}
