package palette

import "math"

// distance calculates the Euclidean distance between two colors in RGB space.
func distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// mergeClusters greedily consolidates clusters whose averaged colors sit
// within threshold of each other. The input must be ordered population
// descending: popular colors become the initial seeds and absorb their minor
// variants. Each incoming cluster is absorbed by the FIRST existing cluster
// within threshold, scanned in creation order, not the nearest one; this
// keeps the output stable and reproducible. A threshold <= 0 disables
// merging entirely.
//
// Worst case O(n^2), acceptable because n is bounded by the 16x16x16
// quantization space regardless of image size.
func mergeClusters(clusters []cluster, threshold float64) []cluster {
	if threshold <= 0 {
		return clusters
	}

	merged := make([]cluster, 0, len(clusters))
	for _, in := range clusters {
		absorbed := false
		for i := range merged {
			if distance(in.color, merged[i].color) <= threshold {
				merged[i] = absorb(merged[i], in)
				absorbed = true
				break
			}
		}
		if !absorbed {
			merged = append(merged, in)
		}
	}
	return merged
}

// absorb folds cl into dst, weighting each channel by the populations the two
// sides carry at the time of absorption. Channels round half away from zero.
func absorb(dst, cl cluster) cluster {
	total := dst.population + cl.population
	weighted := func(a, b uint8) uint8 {
		sum := float64(a)*float64(dst.population) + float64(b)*float64(cl.population)
		return uint8(math.Round(sum / float64(total)))
	}
	return cluster{
		color: RGB{
			R: weighted(dst.color.R, cl.color.R),
			G: weighted(dst.color.G, cl.color.G),
			B: weighted(dst.color.B, cl.color.B),
		},
		population: total,
	}
}
