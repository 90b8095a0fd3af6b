package bbx_test

import (
	"testing"

	"github.com/advanderveer/bbx"
	test "github.com/advanderveer/go-test"
)

type testClock uint64

func (c testClock) ReadUs() uint64 { return uint64(c) }

func TestWallClock(t *testing.T) {
	c1 := bbx.NewWallClock()
	test.Assert(t, c1.ReadUs() > 1500000000000000, "should give a time after some time in the past")
}
