package odds

import (
	"math/rand"

	"github.com/advanderveer/bbx"
	"github.com/advanderveer/bbx/chain"
)

//Result holds the tier counts of a simulation run
type Result struct {
	N      uint64
	Counts [5]uint64 //indexed by tier-1
}

//Run simulates 'n' independent derivations with uniformly random contexts,
//seeds and headers and counts the resulting tiers. It exercises the exact
//commit and derive path the engine uses, only the inputs are drawn from
//'rnd' instead of from real transactions and chain state.
func Run(n uint64, rnd *rand.Rand) (res *Result) {
	res = &Result{N: n}

	for i := uint64(0); i < n; i++ {
		ctx := &bbx.TxCtx{
			Seq:    rnd.Uint64(),
			TimeUs: rnd.Uint64(),
		}
		rnd.Read(ctx.Caller[:])
		rnd.Read(ctx.TxID[:])

		hdr := &chain.Header{
			Height: Uint64n(1000000, rnd),
			TimeUs: rnd.Uint64(),
		}
		rnd.Read(hdr.Mix[:])

		t := bbx.DeriveTier(bbx.CommitSeed(ctx), hdr, ctx)
		res.Counts[t-1]++
	}

	return
}

//ChiSquare returns the chi-square statistic of the observed tier counts
//against the nominal probabilities, 4 degrees of freedom
func (res *Result) ChiSquare() (x float64) {
	for i, obs := range res.Counts {
		exp := Expected(res.N, bbx.Tier(i+1))
		d := float64(obs) - exp
		x += d * d / exp
	}

	return
}
