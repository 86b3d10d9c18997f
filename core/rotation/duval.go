package rotation

// Duval finds the minimum rotation through the Lyndon factorization of the
// doubled string (Duval 1983; Eppstein 2011). The doubled buffer is never
// materialized: position x of ss is s[x mod n].
//
// The scan stops as soon as a run of equal Lyndon factors covers exactly n
// symbols; the run's start is the answer. For a periodic s = u^k (k >= 2)
// this is the first minimal offset plus len(u), not the first minimal
// offset. Booth reproduces that convention.
type Duval struct{}

// MinRotation implements Backend.
func (Duval) MinRotation(s string) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	at := func(x int) byte {
		if x >= n {
			return s[x-n]
		}
		return s[x]
	}
	end := 2 * n

	var (
		old, k, rep int
		ps, pe      int // previous factor [ps, pe)
		ws, we      int // current factor [ws, we)
	)
	for k < end {
		i, j := k, k+1
		for j < end && at(i) <= at(j) {
			if at(i) == at(j) {
				i++
			} else {
				i = k
			}
			j++
		}
		for k < i+1 {
			k += j - i
			ps, pe = ws, we
			ws, we = old, k
			old = k

			l := we - ws
			if pe-ps == l && sameSpan(at, ps, ws, l) {
				rep++
			} else {
				rep = 1
			}
			if l*rep == n {
				return mod(old-i, n)
			}
		}
	}
	return 0
}

func sameSpan(at func(int) byte, a, b, l int) bool {
	for t := 0; t < l; t++ {
		if at(a+t) != at(b+t) {
			return false
		}
	}
	return true
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
