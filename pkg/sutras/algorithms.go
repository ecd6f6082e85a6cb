/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: algorithms.go
Description: Sutra arithmetic implementations for the Vedic Dispatcher. Each sutra is
a pure function over two int64 operands. Every function is total: when its structural
precondition does not hold it falls back to the standard result, so a mis-selected
sutra still returns a correct product.
*/

package sutras

import (
	"math/bits"
)

// DigitCount returns the number of decimal digits in |n|. Zero has one digit.
func DigitCount(n int64) int {
	if n < 0 {
		n = -n
	}
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

// LastDigit returns the final decimal digit of |n|
func LastDigit(n int64) int64 {
	if n < 0 {
		n = -n
	}
	return n % 10
}

// NearestBase returns the power of ten closest to n, or 0 for n <= 0.
// For 98 that is 100; for 12 it is 10.
func NearestBase(n int64) int64 {
	if n <= 0 {
		return 0
	}
	lower := int64(1)
	for lower <= n/10 {
		lower *= 10
	}
	// 10^18 is the largest power of ten representable in int64
	if lower >= 1e18 {
		return lower
	}
	upper := lower * 10
	if n-lower < upper-n {
		return lower
	}
	return upper
}

// DistanceRatio returns |n - base| / base for the nearest power-of-ten base.
// Returns 1.0 when no base exists (n <= 0).
func DistanceRatio(n int64) float64 {
	base := NearestBase(n)
	if base == 0 {
		return 1.0
	}
	dist := n - base
	if dist < 0 {
		dist = -dist
	}
	return float64(dist) / float64(base)
}

// EkadhikenaPurvena multiplies via the "by one more than the previous one"
// identity for operands ending in 5: (10j+5)(10k+5) = 100jk + 50(j+k) + 25.
// For the perfect squaring case a == b this reduces to k(k+1)*100 + 25.
func EkadhikenaPurvena(a, b int64) int64 {
	if a <= 0 || b <= 0 || a%10 != 5 || b%10 != 5 {
		return a * b
	}
	j := a / 10
	k := b / 10
	return 100*j*k + 50*(j+k) + 25
}

// NikhilamMultiply multiplies via base complements: with both operands near
// a shared power-of-ten base, (base+d1)(base+d2) = (a+d2)*base + d1*d2.
func NikhilamMultiply(a, b int64) int64 {
	if a <= 0 || b <= 0 {
		return a * b
	}
	base := NearestBase(a)
	if base < 10 || base != NearestBase(b) {
		return a * b
	}
	d1 := a - base
	d2 := b - base
	return (a+d2)*base + d1*d2
}

// Antyayordasake multiplies operands whose last digits sum to ten and whose
// leading digits match: (10k+p)(10k+q) with p+q=10 is 100k(k+1) + pq.
func Antyayordasake(a, b int64) int64 {
	p := a % 10
	q := b % 10
	k := a / 10
	if a <= 0 || b <= 0 || p+q != 10 || k != b/10 || k <= 0 {
		return a * b
	}
	return 100*k*(k+1) + p*q
}

// UrdhvaTiryagbhyam multiplies via vertical-and-crosswise digit convolution.
// Exact for any operand pair whose product fits in int64.
func UrdhvaTiryagbhyam(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)

	da := decimalDigits(a)
	db := decimalDigits(b)

	// Cross products per column, least significant first
	columns := make([]int64, len(da)+len(db))
	for i, x := range da {
		for j, y := range db {
			columns[i+j] += x * y
		}
	}

	// Carry propagation and recomposition
	var result, place int64
	var carry int64
	place = 1
	for i := 0; i < len(columns); i++ {
		total := columns[i] + carry
		result += (total % 10) * place
		carry = total / 10
		if i < len(columns)-1 {
			place *= 10
		}
	}

	if negative {
		return -result
	}
	return result
}

// decimalDigits returns the decimal digits of |n|, least significant first
func decimalDigits(n int64) []int64 {
	if n < 0 {
		n = -n
	}
	digits := make([]int64, 0, 19)
	for {
		digits = append(digits, n%10)
		n /= 10
		if n == 0 {
			return digits
		}
	}
}

// ParavartyaDivide computes the truncated quotient via shift-and-subtract
// long division, the binary analogue of "transpose and apply". Returns 0
// for a zero divisor; callers reject zero divisors before dispatch.
func ParavartyaDivide(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)

	ua := uint64(a)
	if a < 0 {
		ua = -ua
	}
	ub := uint64(b)
	if b < 0 {
		ub = -ub
	}

	var quotient uint64
	if ua >= ub {
		shift := bits.Len64(ua) - bits.Len64(ub)
		remainder := ua
		for s := shift; s >= 0; s-- {
			if t := ub << uint(s); t <= remainder {
				remainder -= t
				quotient |= 1 << uint(s)
			}
		}
	}

	if negative {
		return -int64(quotient)
	}
	return int64(quotient)
}

// StandardMultiply is the trusted baseline product
func StandardMultiply(a, b int64) int64 {
	return a * b
}

// StandardDivide is the trusted baseline quotient.
// Callers reject zero divisors before dispatch.
func StandardDivide(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	return a / b
}
