package bbx_test

import (
	"testing"

	"github.com/advanderveer/bbx"
	test "github.com/advanderveer/go-test"
)

func TestPrinting(t *testing.T) {
	idn1 := bbx.NewIdentity([]byte{0x01})
	test.Equals(t, 8, len(idn1.String()))
	idn1.SetName("bob")
	test.Equals(t, "bob", idn1.String())

	//identity bytes fully determine the keys
	idn2 := bbx.NewIdentity([]byte{0x01})
	test.Equals(t, idn1.PK(), idn2.PK())

	idn3 := bbx.NewIdentity([]byte{0x02})
	test.Assert(t, idn1.PK() != idn3.PK(), "different identity bytes should give different keys")
}

func TestTxMinting(t *testing.T) {
	idn1 := bbx.NewIdentity([]byte{0x01})

	ctx1 := idn1.Tx(100)
	test.Equals(t, idn1.PK(), ctx1.Caller)
	test.Equals(t, uint64(1), ctx1.Seq)
	test.Equals(t, uint64(100), ctx1.TimeUs)

	//the sequence number is monotonic and the tx id unique per transaction
	ctx2 := idn1.Tx(100)
	test.Equals(t, uint64(2), ctx2.Seq)
	test.Assert(t, ctx1.TxID != ctx2.TxID, "tx ids should be unique per transaction")
}

func TestTxVerification(t *testing.T) {
	idn1 := bbx.NewIdentity([]byte{0x01})
	ctx := idn1.Tx(100)
	test.Equals(t, true, ctx.Verify())

	//any tampering with the signed fields must invalidate the context
	ctx.TimeUs++
	test.Equals(t, false, ctx.Verify())
	ctx.TimeUs--
	test.Equals(t, true, ctx.Verify())

	ctx.Seq++
	test.Equals(t, false, ctx.Verify())
	ctx.Seq--

	ctx.Caller = bbx.NewIdentity([]byte{0x02}).PK()
	test.Equals(t, false, ctx.Verify())
}
