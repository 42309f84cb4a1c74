package palette

import "iter"

// alphaCutoff is the minimum alpha value (out of 255) for a pixel to be
// considered opaque enough to sample.
const alphaCutoff = 128

// samples strides through an interleaved 8-bit RGBA buffer and yields the
// color of every step-th pixel that is at least half opaque. Pixels with
// alpha below the cutoff contribute nothing. A trailing partial pixel at the
// end of the buffer is ignored. The step is clamped to a minimum of 1.
func samples(pix []byte, step int) iter.Seq[RGB] {
	if step < 1 {
		step = 1
	}
	return func(yield func(RGB) bool) {
		for base := 0; base+3 < len(pix); base += 4 * step {
			if pix[base+3] < alphaCutoff {
				continue
			}
			if !yield(RGB{R: pix[base], G: pix[base+1], B: pix[base+2]}) {
				return
			}
		}
	}
}
