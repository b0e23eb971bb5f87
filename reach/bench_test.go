package reach_test

import (
	"testing"

	"github.com/katalvlaran/dfafactor/automaton"
	"github.com/katalvlaran/dfafactor/reach"
)

// BenchmarkFinalReachableFrom_Chain measures a full walk down a 10k-state chain.
func BenchmarkFinalReachableFrom_Chain(b *testing.B) {
	const n = 10000
	a := chain(b, n)
	r, _ := reach.New(a)

	b.ReportAllocs()
	b.SetBytes(int64(n + a.TransitionCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = r.FinalReachableFrom(0)
	}
}

// BenchmarkReachableFromInitial_Unreachable explores every accessible state
// before answering no.
func BenchmarkReachableFromInitial_Unreachable(b *testing.B) {
	const n = 10000
	a := chain(b, n)
	r, _ := reach.New(a)
	target := automaton.State(0)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = r.Reachable(1, func(s automaton.State) bool { return s == target })
	}
}
