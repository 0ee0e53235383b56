package visiogen

// TileSequence slides a k-wide window across seq and returns every distinct
// k-mer mapped to the ordered list of its window start offsets. Offsets are
// relative to baseOffset so a sub-segment of a larger coordinate space can
// be tiled in place. A sequence shorter than k tiles to an empty map.
//
// Window extraction fans out across the pool in contiguous chunks, each
// worker filling its own map, and the chunks are merged afterwards. Callers
// must not depend on the map's iteration order; the position lists
// themselves are ascending.
func TileSequence(pool *Pool, seq string, k, baseOffset int) map[string][]int {
	tiled := make(map[string][]int)
	if k <= 0 || len(seq) < k {
		return tiled
	}

	windows := len(seq) - k + 1
	ranges := pool.chunks(windows)
	partials := make([]map[string][]int, len(ranges))

	pool.Each(len(ranges), func(c int) {
		part := make(map[string][]int)
		for i := ranges[c][0]; i < ranges[c][1]; i++ {
			kmer := seq[i : i+k]
			part[kmer] = append(part[kmer], i+baseOffset)
		}
		partials[c] = part
	})

	// chunks cover ascending window starts, so appending chunk by chunk
	// keeps every position list sorted
	for _, part := range partials {
		for kmer, positions := range part {
			tiled[kmer] = append(tiled[kmer], positions...)
		}
	}
	return tiled
}
