package bbx

import (
	"github.com/advanderveer/bbx/ssi"
)

const (
	saleKey    = "_sale"
	voucherKey = "_voucher"
)

//KV exposes the sale's rows on top of a generic transaction. Every check is
//an explicit read so racing operations conflict on commit instead of silently
//losing updates.
type KV struct{ *ssi.Tx }

//CreateSale writes the sale row, it must not exist yet
func (kv *KV) CreateSale(s *Sale) (err error) {
	if kv.Get([]byte(saleKey)) != nil {
		return ErrSaleExists
	}

	kv.Set([]byte(saleKey), s.Encode())
	return
}

//ReadSale returns the current sale row
func (kv *KV) ReadSale() (s *Sale, err error) {
	v := kv.Get([]byte(saleKey))
	if v == nil {
		return nil, ErrNoSale
	}

	return DecodeSale(v)
}

//WriteSale overwrites the sale row, used after mutating the counters
func (kv *KV) WriteSale(s *Sale) {
	kv.Set([]byte(saleKey), s.Encode())
}

//AttachVoucher stores a voucher row for the owner, at most one may exist
func (kv *KV) AttachVoucher(owner PK, seed Seed) (err error) {
	k := vkey(owner)
	if kv.Get(k) != nil {
		return ErrVoucherExists
	}

	kv.Set(k, seed.Bytes())
	return
}

//Voucher returns the owner's voucher row without consuming it
func (kv *KV) Voucher(owner PK) (v *Voucher, err error) {
	raw := kv.Get(vkey(owner))
	if len(raw) != SeedLen {
		return nil, ErrNoVoucher
	}

	v = &Voucher{Owner: owner}
	copy(v.Seed[:], raw)
	return
}

//DetachVoucher consumes the owner's voucher row and returns it
func (kv *KV) DetachVoucher(owner PK) (v *Voucher, err error) {
	v, err = kv.Voucher(owner)
	if err != nil {
		return nil, err
	}

	kv.Del(vkey(owner))
	return
}

func vkey(owner PK) []byte {
	return append(owner[:], []byte(voucherKey)...)
}
