package phi

// Blend4 combines four factors with the descending golden weighting shared by
// the chiral protection score and the consciousness blend. Each successive
// weight takes Φ⁻¹ of the mass the previous weights left behind, so the
// weights descend (≈0.618, 0.236, 0.090) and the remainder (≈0.056) falls on
// the last factor. The four weights sum to exactly 1.
func Blend4(a, b, c, d float64) float64 {
	w0 := InvPhi
	w1 := (1 - w0) * InvPhi
	w2 := (1 - w0 - w1) * InvPhi
	w3 := 1 - w0 - w1 - w2
	return a*w0 + b*w1 + c*w2 + d*w3
}
