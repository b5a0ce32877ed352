package benchmarks

import (
	"strconv"

	"github.com/randalmurphal/maptel/pkg/maptel"
)

// number returns a distinct valid telephone number for i.
func number(i int) string {
	return strconv.Itoa(100000 + i)
}

// buildChain creates a table holding number(0) -> number(1) -> ... -> number(n).
func buildChain(r *maptel.Registry, n int) maptel.Handle {
	h := r.Create()
	for i := 0; i < n; i++ {
		if err := r.Insert(h, number(i), number(i+1)); err != nil {
			panic(err)
		}
	}
	return h
}

// buildCycle is buildChain with number(n) mapped back to number(0).
func buildCycle(r *maptel.Registry, n int) maptel.Handle {
	h := buildChain(r, n)
	if err := r.Insert(h, number(n), number(0)); err != nil {
		panic(err)
	}
	return h
}
