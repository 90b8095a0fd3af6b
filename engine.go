package bbx

import (
	"github.com/pkg/errors"

	"github.com/advanderveer/bbx/chain"
)

//Vault stores issued rewards keyed by owner, the engine only ever appends
type Vault interface {
	Issue(r *Reward) (err error)
	Rewards(owner PK) (rs []*Reward, err error)
}

//Engine drives one blind box sale through its two phases. It owns the
//transactional state the ledger and vouchers live in, observes the chain
//oracle fresh on every operation and hands issued rewards to the vault.
//Every operation either commits fully or leaves no trace.
type Engine struct {
	operator PK
	state    *State
	store    Store
	vault    Vault
	oracle   chain.Oracle
}

//NewEngine sets up an engine with 'operator' as the only identity allowed to
//open the sale. If the store holds a write log from an earlier run the
//ledger state is replayed from it.
func NewEngine(operator PK, oracle chain.Oracle, store Store, vault Vault) (e *Engine, err error) {
	e = &Engine{operator: operator, oracle: oracle, store: store, vault: vault}

	var log []*Write
	if store != nil {
		tx := store.CreateTx(false)
		defer tx.Discard()
		if err = tx.Log(func(w *Write) error {
			log = append(log, w)
			return nil
		}); err != nil {
			return nil, errors.Wrap(err, "failed to read write log")
		}
	}

	e.state, err = NewState(log)
	if err != nil {
		return nil, errors.Wrap(err, "failed to replay write log")
	}

	return
}

//Open creates the sale ledger with zero counters. Only the operator may call
//it and only once, a second open fails with ErrSaleExists.
func (e *Engine) Open(ctx *TxCtx, capacity, requestDeadline, claimOpenAt uint64) (err error) {
	if !ctx.Verify() {
		return ErrInvalidSignature
	}

	if ctx.Caller != e.operator {
		return ErrNotOperator
	}

	var opErr error
	w := e.state.Update(func(kv *KV) {
		opErr = kv.CreateSale(&Sale{
			Capacity:        capacity,
			RequestDeadline: requestDeadline,
			ClaimOpenAt:     claimOpenAt,
		})
	})

	if opErr != nil {
		return opErr
	}

	return e.commit(w)
}

//Request grants the caller a voucher holding a freshly committed seed. It
//fails when the chain position cannot be determined, when the position is
//past the request deadline, when the capacity is exhausted or when the
//caller already holds a voucher. On success the committed counter and the
//voucher land in one atomic commit.
func (e *Engine) Request(ctx *TxCtx) (v *Voucher, err error) {
	if !ctx.Verify() {
		return nil, ErrInvalidSignature
	}

	pos, err := e.oracle.Head()
	if err != nil {
		return nil, ErrOracleUnavailable
	}

	seed := CommitSeed(ctx)

	var opErr error
	w := e.state.Update(func(kv *KV) {
		s, err := kv.ReadSale()
		if err != nil {
			opErr = err
			return
		}

		if s.Committed >= s.Capacity {
			opErr = ErrCapacityExhausted
			return
		}

		if pos > s.RequestDeadline {
			opErr = ErrDeadlinePassed
			return
		}

		if opErr = kv.AttachVoucher(ctx.Caller, seed); opErr != nil {
			return
		}

		s.Committed++
		kv.WriteSale(s)
	})

	if opErr != nil {
		return nil, opErr
	}

	if err = e.commit(w); err != nil {
		return nil, err
	}

	return &Voucher{Owner: ctx.Caller, Seed: seed}, nil
}

//Claim consumes the caller's voucher and issues the reward. The header the
//tier derives from is the one at the chain position current at claim time,
//so neither party can know it when the seed was committed. It fails when the
//position or that header cannot be determined, when the claim window hasn't
//opened or when the caller holds no voucher. A failed claim leaves the
//voucher intact.
func (e *Engine) Claim(ctx *TxCtx) (r *Reward, err error) {
	if !ctx.Verify() {
		return nil, ErrInvalidSignature
	}

	pos, err := e.oracle.Head()
	if err != nil {
		return nil, ErrOracleUnavailable
	}

	hdr, err := e.oracle.HeaderAt(pos)
	if err != nil {
		return nil, ErrOracleUnavailable
	}

	var opErr error
	w := e.state.Update(func(kv *KV) {
		s, err := kv.ReadSale()
		if err != nil {
			opErr = err
			return
		}

		if pos < s.ClaimOpenAt {
			opErr = ErrClaimNotOpen
			return
		}

		v, err := kv.DetachVoucher(ctx.Caller)
		if err != nil {
			opErr = err
			return
		}

		s.Fulfilled++
		kv.WriteSale(s)

		r = &Reward{
			Owner:  ctx.Caller,
			Tier:   DeriveTier(v.Seed, hdr, ctx),
			Height: hdr.Height,
			TxID:   ctx.TxID,
		}
	})

	if opErr != nil {
		return nil, opErr
	}

	if err = e.commit(w); err != nil {
		return nil, err
	}

	if e.vault != nil {
		if err = e.vault.Issue(r); err != nil {
			return nil, errors.Wrap(err, "failed to issue reward")
		}
	}

	return
}

//Sale returns a copy of the current sale ledger row
func (e *Engine) Sale() (s *Sale, err error) {
	e.state.View(func(kv *KV) {
		s, err = kv.ReadSale()
	})

	return
}

//Voucher returns the caller's pending voucher without consuming it
func (e *Engine) Voucher(owner PK) (v *Voucher, err error) {
	e.state.View(func(kv *KV) {
		v, err = kv.Voucher(owner)
	})

	return
}

//commit applies the write to the ledger state and persists it to the write
//log, a conflict means another operation won the race and this one failed
//without effect
func (e *Engine) commit(w *Write) (err error) {
	if w == nil {
		return //the operation read but changed nothing
	}

	if err = e.state.Apply(w); err != nil {
		return err
	}

	if e.store == nil {
		return
	}

	tx := e.store.CreateTx(true)
	defer tx.Discard()
	if err = tx.Append(w); err != nil {
		return errors.Wrap(err, "failed to append write")
	}

	return tx.Commit()
}
