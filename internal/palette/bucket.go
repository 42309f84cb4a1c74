package palette

import (
	"iter"
	"math"
	"sort"
)

// quantKey packs the high 4 bits of each channel into a single integer,
// grouping colors that fall within the same 16x16x16 cube of RGB space.
// Red occupies the most significant bits, then green, then blue.
func quantKey(c RGB) uint16 {
	return uint16(c.R>>4)<<8 | uint16(c.G>>4)<<4 | uint16(c.B>>4)
}

// bucket accumulates all samples that share a quantization key.
type bucket struct {
	sumR, sumG, sumB int
	count            int
}

func (b *bucket) add(c RGB) {
	b.sumR += int(c.R)
	b.sumG += int(c.G)
	b.sumB += int(c.B)
	b.count++
}

// cluster is a finalized bucket, or a group of merged buckets: an averaged
// color plus the number of samples it represents.
type cluster struct {
	color      RGB
	population int
}

// accumulate consumes the sample sequence and groups it into quantization
// buckets. Single pass, O(1) amortized per sample.
func accumulate(seq iter.Seq[RGB]) map[uint16]*bucket {
	buckets := make(map[uint16]*bucket)
	for c := range seq {
		b, ok := buckets[quantKey(c)]
		if !ok {
			b = &bucket{}
			buckets[quantKey(c)] = b
		}
		b.add(c)
	}
	return buckets
}

// finalize reduces every bucket to its averaged color (each channel rounded
// half away from zero) and orders the result by population descending.
// Equal populations are ordered by quantization key ascending so the merge
// phase never sees map iteration order.
func finalize(buckets map[uint16]*bucket) []cluster {
	type keyed struct {
		key uint16
		cl  cluster
	}

	finalized := make([]keyed, 0, len(buckets))
	for key, b := range buckets {
		finalized = append(finalized, keyed{
			key: key,
			cl: cluster{
				color: RGB{
					R: roundChannel(b.sumR, b.count),
					G: roundChannel(b.sumG, b.count),
					B: roundChannel(b.sumB, b.count),
				},
				population: b.count,
			},
		})
	}

	sort.Slice(finalized, func(i, j int) bool {
		if finalized[i].cl.population != finalized[j].cl.population {
			return finalized[i].cl.population > finalized[j].cl.population
		}
		return finalized[i].key < finalized[j].key
	})

	clusters := make([]cluster, len(finalized))
	for i, f := range finalized {
		clusters[i] = f.cl
	}
	return clusters
}

// roundChannel averages a channel sum over count samples, rounding half away
// from zero.
func roundChannel(sum, count int) uint8 {
	return uint8(math.Round(float64(sum) / float64(count)))
}
