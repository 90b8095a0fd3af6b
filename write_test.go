package bbx_test

import (
	"testing"

	"github.com/advanderveer/bbx"
	test "github.com/advanderveer/go-test"
)

func TestWriteHashing(t *testing.T) {
	s1, err := bbx.NewState(nil)
	test.Ok(t, err)

	w1 := s1.Update(func(kv *bbx.KV) {
		kv.Set([]byte{0x01}, []byte{0x02})
	})

	//hashing is stable over the same write
	test.Equals(t, w1.Hash(), w1.Hash())

	w2 := s1.Update(func(kv *bbx.KV) {
		kv.Set([]byte{0x01}, []byte{0x03})
	})

	test.Assert(t, w1.Hash() != w2.Hash(), "different writes should hash differently")
}
