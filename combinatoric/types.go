package combinatoric

import "math"

// Tables holds the flat log-scale combinatorial precomputations for a
// solve with K frames. Built once via New, read concurrently thereafter.
type Tables struct {
	k        int
	width    int // k + 1
	logK     []float64
	logKFact []float64
	lnKFact  []float64
	logCnk   []float64 // flat (width x width); only entries with kk <= n-kk are populated
}

// New builds the combinatorial tables for 0..K.
func New(k int) (*Tables, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}

	width := k + 1
	t := &Tables{
		k:        k,
		width:    width,
		logK:     make([]float64, width),
		logKFact: make([]float64, width),
		lnKFact:  make([]float64, width),
		logCnk:   make([]float64, width*width),
	}

	// t.logK[0] is the sentinel -1.0; t.logKFact[0] and t.lnKFact[0] are 0,
	// matching the factorial identity 0! == 1.
	t.logK[0] = -1.0
	for i := 1; i <= k; i++ {
		t.logK[i] = math.Log10(float64(i))
		t.logKFact[i] = t.logKFact[i-1] + t.logK[i]
		t.lnKFact[i] = t.lnKFact[i-1] + math.Log(float64(i))
	}

	// Only the kk <= n-kk half is stored; LogCnk mirrors the rest at query
	// time via C(n,k) == C(n,n-k).
	for n := 0; n <= k; n++ {
		for kk := 0; kk <= n/2; kk++ {
			t.logCnk[n*width+kk] = t.logKFact[n] - t.logKFact[n-kk] - t.logKFact[kk]
		}
	}

	return t, nil
}

// K returns the table's frame-count bound.
func (t *Tables) K() int {
	return t.k
}

// LogK returns log10(k). LogK(0) is the -1.0 sentinel and must never be
// consumed by a scoring formula.
func (t *Tables) LogK(k int) float64 {
	return t.logK[k]
}

// LogKFact returns log10(k!).
func (t *Tables) LogKFact(k int) float64 {
	return t.logKFact[k]
}

// LnKFact returns ln(k!).
func (t *Tables) LnKFact(k int) float64 {
	return t.lnKFact[k]
}

// LogCnk returns log10(C(n,k)) for 0 <= k <= n <= K. It panics for indices
// outside that range.
func (t *Tables) LogCnk(n, k int) float64 {
	if k < 0 || k > n || n > t.k {
		panic("combinatoric: LogCnk index out of range")
	}
	kk := k
	if nk := n - k; nk < kk {
		kk = nk
	}

	return t.logCnk[n*t.width+kk]
}
