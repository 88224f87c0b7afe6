package quadrature

import "container/heap"

// Func1 is a scalar integrand. A non-nil error aborts the integration.
type Func1 func(x float64) (float64, error)

// panel is a subinterval with the rule applied to the whole interval and to
// each of its halves; the difference of the two is the error estimate.
type panel struct {
	a, b        float64
	coarse      float64
	left, right float64
}

func (p panel) value() float64 { return p.left + p.right }
func (p panel) err() float64   { return abs(p.left + p.right - p.coarse) }

func newPanel(r *Rule, f Func1, a, b, coarse float64) (p panel, err error) {
	p = panel{a: a, b: b, coarse: coarse}
	c := 0.5 * (a + b)
	if p.left, err = r.Apply(f, a, c); err != nil {
		return
	}
	p.right, err = r.Apply(f, c, b)
	return
}

// panelHeap is a max-heap on the panel error estimate.
type panelHeap []panel

func (h panelHeap) Len() int           { return len(h) }
func (h panelHeap) Less(i, j int) bool { return h[i].err() > h[j].err() }
func (h panelHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *panelHeap) Push(x any)        { *h = append(*h, x.(panel)) }
func (h *panelHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}

func (h panelHeap) sums() (value, abserr float64) {
	for _, p := range h {
		value += p.value()
		abserr += p.err()
	}
	return
}

// Integrate1D integrates f over [a, b] by global adaptive bisection: the panel
// with the largest error estimate is split until the summed estimate meets
// max(EpsAbs, EpsRel |value|) or Limit subdivisions have been made. On
// ErrNonconvergence the returned value and abserr are the best available.
func Integrate1D(f Func1, a, b float64, r *Rule, opts Options) (value, abserr float64, err error) {
	if a == b {
		return
	}
	if a > b {
		value, abserr, err = Integrate1D(f, b, a, r, opts)
		value = -value
		return
	}
	var (
		coarse float64
		first  panel
	)
	if coarse, err = r.Apply(f, a, b); err != nil {
		return
	}
	if first, err = newPanel(r, f, a, b, coarse); err != nil {
		return
	}
	h := &panelHeap{first}
	for subdivisions := 0; ; subdivisions++ {
		value, abserr = h.sums()
		if abserr <= opts.tolerance(value) {
			return
		}
		if subdivisions >= opts.Limit {
			err = ErrNonconvergence
			return
		}
		worst := heap.Pop(h).(panel)
		c := 0.5 * (worst.a + worst.b)
		if c <= worst.a || c >= worst.b {
			// Panel is at the resolution of float64
			heap.Push(h, worst)
			err = ErrNonconvergence
			return
		}
		var left, right panel
		if left, err = newPanel(r, f, worst.a, c, worst.left); err != nil {
			return
		}
		if right, err = newPanel(r, f, c, worst.b, worst.right); err != nil {
			return
		}
		heap.Push(h, left)
		heap.Push(h, right)
	}
}
