package bbx

import (
	"encoding/binary"
	"fmt"
)

//Sale is the single shared ledger of one blind box sale: the total supply,
//the two phase boundaries and the monotone counters. It is created once by
//the operator and mutated by every request and claim.
type Sale struct {
	//Capacity is the maximum number of commitments ever grantable
	Capacity uint64

	//RequestDeadline is the chain position after which requests are rejected,
	//a request at the deadline itself still succeeds
	RequestDeadline uint64

	//ClaimOpenAt is the chain position before which claims are rejected, a
	//claim at the opening position itself succeeds
	ClaimOpenAt uint64

	//Committed counts granted vouchers, it never exceeds Capacity
	Committed uint64

	//Fulfilled counts consumed vouchers, it never exceeds Committed
	Fulfilled uint64
}

const saleLen = 5 * 8

//Encode the sale as fixed-width big-endian fields
func (s *Sale) Encode() (d []byte) {
	d = make([]byte, saleLen)
	binary.BigEndian.PutUint64(d, s.Capacity)
	binary.BigEndian.PutUint64(d[8:], s.RequestDeadline)
	binary.BigEndian.PutUint64(d[16:], s.ClaimOpenAt)
	binary.BigEndian.PutUint64(d[24:], s.Committed)
	binary.BigEndian.PutUint64(d[32:], s.Fulfilled)
	return
}

//DecodeSale reads a sale back from its encoded form
func DecodeSale(d []byte) (s *Sale, err error) {
	if len(d) != saleLen {
		return nil, fmt.Errorf("bbx: invalid sale encoding of %d bytes", len(d))
	}

	return &Sale{
		Capacity:        binary.BigEndian.Uint64(d),
		RequestDeadline: binary.BigEndian.Uint64(d[8:]),
		ClaimOpenAt:     binary.BigEndian.Uint64(d[16:]),
		Committed:       binary.BigEndian.Uint64(d[24:]),
		Fulfilled:       binary.BigEndian.Uint64(d[32:]),
	}, nil
}
