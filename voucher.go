package bbx

//Voucher is the single-use record that proves a successful commitment. It
//exists if and only if the owner has requested and not yet claimed, an owner
//never holds more than one at a time.
type Voucher struct {
	Owner PK
	Seed  Seed
}

//Reward is the item issued on a successful claim. Ownership transfers to the
//claimer and the item is immutable afterwards.
type Reward struct {
	Owner PK
	Tier  Tier

	//Height of the header the tier was derived from and the id of the claim
	//transaction, kept so any outcome can be re-derived and audited
	Height uint64
	TxID   TxID
}
