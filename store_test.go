package bbx_test

import (
	"testing"

	"github.com/advanderveer/bbx"
	test "github.com/advanderveer/go-test"
)

var _ bbx.Store = &bbx.BadgerStore{}

func TestWriteLogAppendAndReplay(t *testing.T) {
	s, clean := bbx.TempBadgerStore()
	defer clean()

	st, err := bbx.NewState(nil)
	test.Ok(t, err)

	idn1 := bbx.NewIdentity([]byte{0x01})
	seed := bbx.CommitSeed(idn1.Tx(1))

	w1 := st.Update(func(kv *bbx.KV) {
		test.Ok(t, kv.CreateSale(&bbx.Sale{Capacity: 10, RequestDeadline: 5, ClaimOpenAt: 10}))
	})
	test.Ok(t, st.Apply(w1))

	w2 := st.Update(func(kv *bbx.KV) {
		test.Ok(t, kv.AttachVoucher(idn1.PK(), seed))
	})
	test.Ok(t, st.Apply(w2))

	tx := s.CreateTx(true)
	defer tx.Discard()
	test.Ok(t, tx.Append(w1))
	test.Ok(t, tx.Append(w2))
	test.Ok(t, tx.Commit())

	//reading the log back must observe commit order
	tx = s.CreateTx(false)
	defer tx.Discard()

	var log []*bbx.Write
	test.Ok(t, tx.Log(func(w *bbx.Write) error {
		log = append(log, w)
		return nil
	}))

	test.Equals(t, 2, len(log))
	test.Equals(t, w1.Hash(), log[0].Hash())
	test.Equals(t, w2.Hash(), log[1].Hash())

	//a state replayed from the stored log carries the full sale
	st2, err := bbx.NewState(log)
	test.Ok(t, err)
	st2.View(func(kv *bbx.KV) {
		sale, err := kv.ReadSale()
		test.Ok(t, err)
		test.Equals(t, uint64(10), sale.Capacity)

		v, err := kv.Voucher(idn1.PK())
		test.Ok(t, err)
		test.Equals(t, seed, v.Seed)
	})
}

func TestUncommittedWriteRefused(t *testing.T) {
	s, clean := bbx.TempBadgerStore()
	defer clean()

	st, err := bbx.NewState(nil)
	test.Ok(t, err)

	//never applied, so it carries no commit time
	w := st.Update(func(kv *bbx.KV) {
		kv.Set([]byte{0x01}, []byte{0x02})
	})

	tx := s.CreateTx(true)
	defer tx.Discard()
	test.Assert(t, tx.Append(w) != nil, "write without commit time should be refused")
}
