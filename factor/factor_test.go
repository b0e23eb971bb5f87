package factor_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfafactor/automaton"
	"github.com/katalvlaran/dfafactor/factor"
	"github.com/katalvlaran/dfafactor/reach"
)

// build constructs an automaton from compact "from symbol to" rules.
func build(t testing.TB, alphabet, states int, initial automaton.State, finals []automaton.State, rules ...string) *automaton.Automaton {
	t.Helper()
	b, err := automaton.NewBuilder(alphabet, states, initial)
	require.NoError(t, err)
	for _, f := range finals {
		require.NoError(t, b.AddFinal(f))
	}
	for _, r := range rules {
		var from, to int
		var sym string
		f := strings.Fields(r)
		require.Len(t, f, 3, "rule %q", r)
		from, to, sym = mustInt(t, f[0]), mustInt(t, f[2]), f[1]
		require.NoError(t, b.AddTransition(automaton.Transition{
			From: automaton.State(from), Symbol: sym[0], To: automaton.State(to),
		}))
	}

	return b.Build()
}

func mustInt(t testing.TB, s string) int {
	t.Helper()
	n := 0
	for _, c := range s {
		require.True(t, c >= '0' && c <= '9', "bad state %q", s)
		n = n*10 + int(c-'0')
	}

	return n
}

func newChecker(t testing.TB, a *automaton.Automaton) *factor.Checker {
	t.Helper()
	c, err := factor.New(a)
	require.NoError(t, err)

	return c
}

// scenarioA is a·b*: 0 -a-> 1, 1 -b-> 1, F={1}.
func scenarioA(t testing.TB) *automaton.Automaton {
	return build(t, 2, 2, 0, []automaton.State{1}, "0 a 1", "1 b 1")
}

// evenB accepts a(bb)*a and a(bb)*c over {a,b,c}.
func evenB(t testing.TB, finals ...automaton.State) *automaton.Automaton {
	return build(t, 3, 4, 0, finals, "0 a 1", "1 b 2", "2 b 1", "1 a 3", "1 c 3")
}

func TestNew_Nil(t *testing.T) {
	c, err := factor.New(nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, factor.ErrAutomatonNil)
}

func TestExists_ScenarioA(t *testing.T) {
	c := newChecker(t, scenarioA(t))

	assert.True(t, c.Exists("a"), "0 -a-> 1 with 1 final")
	assert.True(t, c.Exists("b"), "1 -b-> 1, 1 reachable via 0 a 1")
	assert.True(t, c.Exists("bb"))
	assert.True(t, c.Exists("abbb"))
	assert.True(t, c.Exists(""))
	assert.False(t, c.Exists("ba"))
	assert.False(t, c.Exists("aa"))
	assert.False(t, c.Exists("c"), "no transition carries c")
	assert.False(t, c.Exists("Z"))
}

func TestExists_OutOfAlphabetQuery(t *testing.T) {
	// a single-symbol alphabet: any other letter cannot start a trace
	a := build(t, 1, 1, 0, []automaton.State{0}, "0 a 0")
	c := newChecker(t, a)

	assert.True(t, c.Exists("aaaa"))
	assert.False(t, c.Exists("b"))
	assert.False(t, c.Exists("aab"))
}

func TestExists_EvenB(t *testing.T) {
	c := newChecker(t, evenB(t, 3))

	cases := []struct {
		w0   string
		want bool
	}{
		{"", true},
		{"a", true},
		{"c", true},
		{"ab", true},
		{"aba", false},
		{"abc", false},
		{"abbbc", false},
		{"abbbbc", true},
		{"b", true},
		{"bb", true},
		{"bbbbbbbbbbbb", true},
		{"ac", true},
		{"aac", false},
		{"aacb", false},
		{"aacbccb", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Exists(tc.w0), "w0=%q", tc.w0)
	}
}

func TestExists_EmptyLanguage(t *testing.T) {
	c := newChecker(t, evenB(t))

	for _, w0 := range []string{"", "a", "b", "ab", "bb", "ac", "aba", "bbbbbbbbbbbb"} {
		assert.False(t, c.Exists(w0), "w0=%q", w0)
	}
}

func TestExists_PrefixMustBeReachable(t *testing.T) {
	// 2 -b-> 1 traces "b" into a final state, but 2 is not accessible
	a := build(t, 2, 3, 0, []automaton.State{1}, "0 a 1", "2 b 1")
	c := newChecker(t, a)

	assert.True(t, c.Exists("a"))
	assert.False(t, c.Exists("b"))
}

func TestExists_SuffixMustReachFinal(t *testing.T) {
	// 0 -a-> 1 -b-> 2 dead end, 1 final
	a := build(t, 2, 3, 0, []automaton.State{1}, "0 a 1", "1 b 2")
	c := newChecker(t, a)

	assert.True(t, c.Exists("a"))
	assert.False(t, c.Exists("ab"))
	assert.False(t, c.Exists("b"))
}

func TestExists_LaterCandidateWins(t *testing.T) {
	// first 'a' transition (3 -a-> 3) is inaccessible, second one works
	a := build(t, 2, 4, 0, []automaton.State{2}, "3 a 3", "0 b 1", "1 a 2")
	c := newChecker(t, a)

	assert.True(t, c.Exists("a"))
	assert.True(t, c.Exists("ba"))
	assert.False(t, c.Exists("aa"))
}

func TestFind_Witness(t *testing.T) {
	a := evenB(t, 3)
	c := newChecker(t, a)

	w, ok := c.Find("bb")
	require.True(t, ok)
	assert.Equal(t, automaton.State(1), w.Start)
	assert.Equal(t, automaton.State(1), w.End)
	assert.Equal(t, []automaton.State{1, 2, 1}, w.Trace)
	assert.Equal(t, "abba", w.Word("bb"))
	assert.True(t, a.Accepts(w.Word("bb")))

	w, ok = c.Find("")
	require.True(t, ok)
	assert.Equal(t, []automaton.State{0}, w.Trace)
	assert.Equal(t, "aa", w.Word(""))

	_, ok = c.Find("aba")
	assert.False(t, ok)
}

func TestFind_TraceOrderUsesAnalyzerHooks(t *testing.T) {
	var visited int
	a := scenarioA(t)
	c, err := factor.New(a, reach.WithOnVisit(func(automaton.State) { visited++ }))
	require.NoError(t, err)

	assert.True(t, c.Exists("b"))
	assert.Positive(t, visited)
}

// oracle answers factor existence by brute force: transitive closure plus a
// replay of w0 from every state.
func oracle(a *automaton.Automaton, w0 string) bool {
	n := a.StateCount()
	closure := make([][]bool, n)
	for i := range closure {
		closure[i] = make([]bool, n)
		closure[i][i] = true
	}
	for _, t := range a.Transitions() {
		closure[t.From][t.To] = true
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !closure[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if closure[k][j] {
					closure[i][j] = true
				}
			}
		}
	}
	coaccessible := func(s automaton.State) bool {
		for f := 0; f < n; f++ {
			if closure[s][f] && a.IsFinal(automaton.State(f)) {
				return true
			}
		}
		return false
	}
	for s0 := 0; s0 < n; s0++ {
		if !closure[a.Initial()][s0] {
			continue
		}
		if sn, ok := a.RunFrom(automaton.State(s0), w0); ok && coaccessible(sn) {
			return true
		}
	}

	return false
}

// randomDFA draws a deterministic automaton with the given density of
// defined transitions.
func randomDFA(t testing.TB, rng *rand.Rand, states, alphabet int, density float64) *automaton.Automaton {
	t.Helper()
	b, err := automaton.NewBuilder(alphabet, states, automaton.State(rng.Intn(states)))
	require.NoError(t, err)
	for s := 0; s < states; s++ {
		if rng.Float64() < 0.3 {
			require.NoError(t, b.AddFinal(automaton.State(s)))
		}
		for c := 0; c < alphabet; c++ {
			if rng.Float64() < density {
				require.NoError(t, b.AddTransition(automaton.Transition{
					From: automaton.State(s), Symbol: byte('a' + c), To: automaton.State(rng.Intn(states)),
				}))
			}
		}
	}

	return b.Build()
}

func randomWord(rng *rand.Rand, alphabet, maxLen int) string {
	buf := make([]byte, rng.Intn(maxLen+1))
	for i := range buf {
		buf[i] = byte('a' + rng.Intn(alphabet))
	}

	return string(buf)
}

func TestExists_MatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		a := randomDFA(t, rng, 1+rng.Intn(7), 1+rng.Intn(3), 0.5)
		c := newChecker(t, a)
		for q := 0; q < 20; q++ {
			w0 := randomWord(rng, a.AlphabetSize()+1, 4)
			require.Equal(t, oracle(a, w0), c.Exists(w0), "round %d w0=%q transitions=%v", round, w0, a.Transitions())
		}
	}
}

func TestExists_FactorMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 100; round++ {
		a := randomDFA(t, rng, 2+rng.Intn(6), 1+rng.Intn(3), 0.8)
		c := newChecker(t, a)

		// every factor of an accepted word must be reported
		for q := 0; q < 30; q++ {
			w := randomWord(rng, a.AlphabetSize(), 6)
			if !a.Accepts(w) {
				continue
			}
			for i := 0; i <= len(w); i++ {
				for j := i; j <= len(w); j++ {
					require.True(t, c.Exists(w[i:j]), "w=%q factor=%q", w, w[i:j])
				}
			}
		}
	}
}

func TestFind_WitnessIsAccepted(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 100; round++ {
		a := randomDFA(t, rng, 1+rng.Intn(6), 1+rng.Intn(3), 0.6)
		c := newChecker(t, a)
		for q := 0; q < 20; q++ {
			w0 := randomWord(rng, a.AlphabetSize(), 3)
			w, ok := c.Find(w0)
			if !ok {
				continue
			}
			word := w.Word(w0)
			require.True(t, a.Accepts(word), "witness %q for %q", word, w0)
			require.Contains(t, word, w0)
			require.Len(t, w.Trace, len(w0)+1)
		}
	}
}

func TestEmptyFactorLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 100; round++ {
		a := randomDFA(t, rng, 1+rng.Intn(6), 1+rng.Intn(3), 0.4)
		r, err := reach.New(a)
		require.NoError(t, err)
		c := newChecker(t, a)

		assert.Equal(t, r.FinalReachableFrom(a.Initial()), c.Exists(""))
	}
}
