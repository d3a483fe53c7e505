package tdidt

import "math"

/*
BinaryEntropy returns the entropy in bits of a two-valued distribution
where one value has probability p: -p·log2(p) - (1-p)·log2(1-p), taking
0·log2(0) as 0. It is 0 for p 0 and 1, and 1 for p 0.5.
*/
func BinaryEntropy(p float64) float64 {
	return -plog2(p) - plog2(1-p)
}

/*
ConditionalEntropy returns the entropy of the outcome given a split of
examples into a left branch with leftPos positive and leftNeg negative
outcomes and a right branch with rightPos and rightNeg: the entropy of
each branch weighted by its share of the examples. It returns NaN when
either branch is empty, so such splits are never chosen.
*/
func ConditionalEntropy(leftPos, leftNeg, rightPos, rightNeg int) float64 {
	leftTotal := leftPos + leftNeg
	rightTotal := rightPos + rightNeg
	if leftTotal == 0 || rightTotal == 0 {
		return math.NaN()
	}
	total := float64(leftTotal + rightTotal)
	return float64(leftTotal)/total*countEntropy(leftPos, leftNeg) +
		float64(rightTotal)/total*countEntropy(rightPos, rightNeg)
}

/*
countEntropy computes the entropy of a branch from its counts so that
mirrored branches (pos, neg) and (neg, pos) get the exact same value.
*/
func countEntropy(pos, neg int) float64 {
	total := float64(pos + neg)
	return -plog2(float64(pos)/total) - plog2(float64(neg)/total)
}

func plog2(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return p * math.Log2(p)
}
