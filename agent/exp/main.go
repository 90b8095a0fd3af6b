package main

import (
	"fmt"

	"github.com/advanderveer/bbx"
	"github.com/advanderveer/bbx/agent"
	"github.com/advanderveer/bbx/chain"
)

func main() {
	c := chain.NewMemChain()

	cfg := agent.DefaultConf()
	cfg.Capacity = 10
	cfg.RequestDeadline = 5
	cfg.ClaimOpenAt = 10

	a, err := agent.New(cfg, c)
	if err != nil {
		panic(err)
	}

	defer a.Close()

	if err = a.Open(); err != nil {
		panic(err)
	}

	//participants request while the chain advances to the deadline
	idns := make([]*bbx.Identity, 5)
	c.ProduceN(5, 1)
	for i := range idns {
		idns[i] = bbx.NewIdentity(nil)
		v, err := a.Request(idns[i])
		if err != nil {
			panic(err)
		}

		fmt.Printf("%s requested, seed %s\n", idns[i], v.Seed)
	}

	//advance past the claim opening and reveal the outcomes
	c.ProduceN(5, 2)
	for _, idn := range idns {
		r, err := a.Claim(idn)
		if err != nil {
			panic(err)
		}

		fmt.Printf("%s claimed %s at height %d\n", idn, r.Tier, r.Height)
	}

	s, err := a.Sale()
	if err != nil {
		panic(err)
	}

	fmt.Printf("sale done: %d committed, %d fulfilled\n", s.Committed, s.Fulfilled)
}
