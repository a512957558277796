package model

// FreqMap counts occurrences per pity value.
type FreqMap map[int]int

func (m FreqMap) Add(v int) int {
	return m.AddN(v, 1)
}

func (m FreqMap) AddN(v, n int) int {
	m[v] += n
	return m[v]
}

func (m FreqMap) Clone() FreqMap {
	out := make(FreqMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge returns a new FreqMap holding the summed counts of m and other.
// Neither input is mutated.
func (m FreqMap) Merge(other FreqMap) FreqMap {
	out := m.Clone()
	for k, v := range other {
		out[k] += v
	}
	return out
}

// Total is the sum of all counts.
func (m FreqMap) Total() int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

// AccPityFreqMap maps accounts to their pity-frequency distribution.
type AccPityFreqMap map[uint64]FreqMap

func (a AccPityFreqMap) Add(uid uint64, pity int) int {
	return a.AddN(uid, pity, 1)
}

func (a AccPityFreqMap) AddN(uid uint64, pity, n int) int {
	m, ok := a[uid]
	if !ok {
		m = FreqMap{}
		a[uid] = m
	}
	return m.AddN(pity, n)
}

func (a AccPityFreqMap) Clone() AccPityFreqMap {
	out := make(AccPityFreqMap, len(a))
	for uid, m := range a {
		out[uid] = m.Clone()
	}
	return out
}

// Merge returns a new histogram combining both inputs without mutating
// either, making repeated pairwise merges associative.
func (a AccPityFreqMap) Merge(other AccPityFreqMap) AccPityFreqMap {
	out := a.Clone()
	for uid, m := range other {
		if existing, ok := out[uid]; ok {
			out[uid] = existing.Merge(m)
		} else {
			out[uid] = m.Clone()
		}
	}
	return out
}

// Condense buckets each pity value v into ceil(v/bucket)*bucket; values below
// one bucket round up to one bucket. Per-account totals are conserved.
// The receiver is not mutated.
func (a AccPityFreqMap) Condense(bucket int) AccPityFreqMap {
	out := make(AccPityFreqMap, len(a))
	for uid, m := range a {
		condensed := make(FreqMap, len(m))
		for pity, n := range m {
			q := (pity + bucket - 1) / bucket
			if q < 1 {
				q = 1
			}
			condensed.AddN(q*bucket, n)
		}
		out[uid] = condensed
	}
	return out
}

// CombineAll sums every account's distribution into one.
func (a AccPityFreqMap) CombineAll() FreqMap {
	out := FreqMap{}
	for _, m := range a {
		for pity, n := range m {
			out.AddN(pity, n)
		}
	}
	return out
}
