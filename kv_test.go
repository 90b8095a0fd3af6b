package bbx_test

import (
	"testing"

	"github.com/advanderveer/bbx"
	test "github.com/advanderveer/go-test"
)

func TestKVSaleRow(t *testing.T) {
	st, err := bbx.NewState(nil)
	test.Ok(t, err)

	w := st.Update(func(kv *bbx.KV) {

		//no sale yet
		_, err := kv.ReadSale()
		test.Equals(t, bbx.ErrNoSale, err)

		//create and read it right away
		test.Ok(t, kv.CreateSale(&bbx.Sale{Capacity: 10, RequestDeadline: 5, ClaimOpenAt: 10}))
		s, err := kv.ReadSale()
		test.Ok(t, err)
		test.Equals(t, uint64(10), s.Capacity)
		test.Equals(t, uint64(0), s.Committed)

		//creating twice is refused
		test.Equals(t, bbx.ErrSaleExists, kv.CreateSale(&bbx.Sale{Capacity: 1}))

		//counters write back through WriteSale
		s.Committed++
		kv.WriteSale(s)
		s, err = kv.ReadSale()
		test.Ok(t, err)
		test.Equals(t, uint64(1), s.Committed)
	})

	test.Ok(t, st.Apply(w))
}

func TestKVVoucherRows(t *testing.T) {
	idn1 := bbx.NewIdentity([]byte{0x01})
	idn2 := bbx.NewIdentity([]byte{0x02})
	seed := bbx.CommitSeed(idn1.Tx(1))

	st, err := bbx.NewState(nil)
	test.Ok(t, err)

	w := st.Update(func(kv *bbx.KV) {

		//nothing attached yet
		_, err := kv.Voucher(idn1.PK())
		test.Equals(t, bbx.ErrNoVoucher, err)

		//attach and read back
		test.Ok(t, kv.AttachVoucher(idn1.PK(), seed))
		v, err := kv.Voucher(idn1.PK())
		test.Ok(t, err)
		test.Equals(t, idn1.PK(), v.Owner)
		test.Equals(t, seed, v.Seed)

		//one voucher per owner at a time
		test.Equals(t, bbx.ErrVoucherExists, kv.AttachVoucher(idn1.PK(), seed))

		//other owners hold nothing
		_, err = kv.Voucher(idn2.PK())
		test.Equals(t, bbx.ErrNoVoucher, err)

		//detaching consumes the record
		v, err = kv.DetachVoucher(idn1.PK())
		test.Ok(t, err)
		test.Equals(t, seed, v.Seed)

		_, err = kv.DetachVoucher(idn1.PK())
		test.Equals(t, bbx.ErrNoVoucher, err)
	})

	test.Ok(t, st.Apply(w))
}
