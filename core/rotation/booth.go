package rotation

// Booth is Booth's least-rotation algorithm (1980) driven by a failure
// function over the doubled string. It runs in O(n) with two int slices of
// scratch space.
//
// Booth finds the first minimal offset. To stay interchangeable with Duval
// the result is shifted by the primitive period when s is a power of a
// shorter word.
type Booth struct{}

// MinRotation implements Backend.
func (Booth) MinRotation(s string) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	k := leastRotation(s)
	if p := primitivePeriod(s); p < n {
		k = (k + p) % n
	}
	return k
}

func leastRotation(s string) int {
	n := len(s)
	at := func(x int) byte { return s[x%n] }

	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		sj := at(j)
		i := f[j-k-1]
		for i != -1 && sj != at(k+i+1) {
			if sj < at(k+i+1) {
				k = j - i - 1
			}
			i = f[i]
		}
		if sj != at(k+i+1) { // i == -1
			if sj < at(k) {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	return k
}

// primitivePeriod returns the length of the shortest u with s == u^m, or
// len(s) when s is primitive.
func primitivePeriod(s string) int {
	n := len(s)
	pi := make([]int, n)
	q := 0
	for x := 1; x < n; x++ {
		for q > 0 && s[x] != s[q] {
			q = pi[q-1]
		}
		if s[x] == s[q] {
			q++
		}
		pi[x] = q
	}
	p := n - pi[n-1]
	if n%p != 0 {
		return n
	}
	return p
}
