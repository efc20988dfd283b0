package yale

// applyLabial rewrites ㅜ to ㅡ wherever it directly follows ㅁ ㅂ ㅃ or ㅍ.
// Adjacency is judged on the input stream only, in a single pass.
func applyLabial(in []symbol) []symbol {
	out := make([]symbol, len(in))
	copy(out, in)
	for i := 0; i+1 < len(in); i++ {
		left, right := in[i], in[i+1]
		if !left.jamo || !right.jamo || right.r != roundedU {
			continue
		}
		if _, ok := labials[left.r]; ok {
			out[i+1].r = unroundedU
		}
	}
	return out
}
