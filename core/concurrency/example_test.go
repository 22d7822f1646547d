package concurrency_test

import (
	"fmt"

	"github.com/momentics/epring/api"
	"github.com/momentics/epring/core/concurrency"
)

func Example() {
	// Storage belongs to the caller; the ring only borrows it.
	var storage [4]api.Record
	var ring concurrency.RecordRing
	if err := ring.Init(storage[:], len(storage)); err != nil {
		panic(err)
	}

	for _, p := range []string{"A", "B", "C", "D"} {
		var rec api.Record
		rec.SetPayload([]byte(p))
		fmt.Println("write", p, ring.Write(rec))
	}
	fmt.Println("used", ring.SpaceUsed(), "available", ring.SpaceAvailable())

	var out api.Record
	for ring.Read(&out) == api.StatusOK {
		fmt.Println("read", string(out.Payload()))
	}

	// Output:
	// write A ok
	// write B ok
	// write C ok
	// write D full
	// used 3 available 0
	// read A
	// read B
	// read C
}
