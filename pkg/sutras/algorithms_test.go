/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: algorithms_test.go
Description: Tests for the sutra arithmetic implementations. Every sutra must agree
with the standard baseline inside its territory and fall back to the baseline
result when its precondition does not hold.
*/

package sutras

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDigitCount tests decimal digit counting including zero and negatives
func TestDigitCount(t *testing.T) {
	assert.Equal(t, 1, DigitCount(0))
	assert.Equal(t, 1, DigitCount(7))
	assert.Equal(t, 2, DigitCount(42))
	assert.Equal(t, 3, DigitCount(100))
	assert.Equal(t, 6, DigitCount(123456))
	assert.Equal(t, 4, DigitCount(-1234))
	assert.Equal(t, 19, DigitCount(9_223_372_036_854_775_807))
}

// TestNearestBase tests nearest power-of-ten resolution
func TestNearestBase(t *testing.T) {
	assert.Equal(t, int64(0), NearestBase(0))
	assert.Equal(t, int64(0), NearestBase(-5))
	assert.Equal(t, int64(1), NearestBase(1))
	assert.Equal(t, int64(10), NearestBase(12))
	assert.Equal(t, int64(100), NearestBase(98))
	assert.Equal(t, int64(100), NearestBase(103))
	assert.Equal(t, int64(1000), NearestBase(997))
	// 55 sits exactly between; ties go to the upper base
	assert.Equal(t, int64(100), NearestBase(55))
	assert.Equal(t, int64(10), NearestBase(54))
}

// TestEkadhikenaPurvena tests the squaring shortcut for numbers ending in 5
func TestEkadhikenaPurvena(t *testing.T) {
	// Perfect squaring cases
	assert.Equal(t, int64(625), EkadhikenaPurvena(25, 25))
	assert.Equal(t, int64(11025), EkadhikenaPurvena(105, 105))
	assert.Equal(t, int64(9025), EkadhikenaPurvena(95, 95))

	// Cross products of different operands both ending in 5
	assert.Equal(t, int64(25*35), EkadhikenaPurvena(25, 35))
	assert.Equal(t, int64(115*125), EkadhikenaPurvena(115, 125))

	// Precondition violated: exact fallback
	assert.Equal(t, int64(24*25), EkadhikenaPurvena(24, 25))
	assert.Equal(t, int64(-25*25), EkadhikenaPurvena(-25, 25))
	assert.Equal(t, int64(0), EkadhikenaPurvena(0, 25))
}

// TestNikhilamMultiply tests base-complement multiplication near powers of ten
func TestNikhilamMultiply(t *testing.T) {
	assert.Equal(t, int64(9506), NikhilamMultiply(98, 97))
	assert.Equal(t, int64(9996*9997), NikhilamMultiply(9996, 9997))
	assert.Equal(t, int64(103*104), NikhilamMultiply(103, 104))
	assert.Equal(t, int64(998*1004), NikhilamMultiply(998, 1004))

	// Mismatched bases fall back
	assert.Equal(t, int64(98*12), NikhilamMultiply(98, 12))
	// Single-digit base rejected
	assert.Equal(t, int64(7*8), NikhilamMultiply(7, 8))
	// Non-positive operands fall back
	assert.Equal(t, int64(-98*97), NikhilamMultiply(-98, 97))
}

// TestAntyayordasake tests the last-digits-sum-to-ten shortcut
func TestAntyayordasake(t *testing.T) {
	assert.Equal(t, int64(2021), Antyayordasake(47, 43))
	assert.Equal(t, int64(21*29), Antyayordasake(21, 29))
	assert.Equal(t, int64(94*96), Antyayordasake(94, 96))
	assert.Equal(t, int64(125*125), Antyayordasake(125, 125))

	// Last digits not summing to ten
	assert.Equal(t, int64(47*44), Antyayordasake(47, 44))
	// Different leading prefixes
	assert.Equal(t, int64(47*53), Antyayordasake(47, 53))
	// Single-digit operands have zero prefix
	assert.Equal(t, int64(3*7), Antyayordasake(3, 7))
}

// TestUrdhvaTiryagbhyam tests crosswise digit convolution across magnitudes
func TestUrdhvaTiryagbhyam(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{0, 12345},
		{1, 1},
		{9, 9},
		{12, 34},
		{99, 99},
		{123, 456},
		{123456, 654321},
		{999999, 999999},
		{-123, 456},
		{-123, -456},
		{1000001, 999999},
	}
	for _, c := range cases {
		assert.Equal(t, c.a*c.b, UrdhvaTiryagbhyam(c.a, c.b), "UrdhvaTiryagbhyam(%d, %d)", c.a, c.b)
	}
}

// TestParavartyaDivide tests shift-and-subtract division against the baseline
func TestParavartyaDivide(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{10, 3},
		{100, 10},
		{7, 9},
		{987654, 321},
		{1, 1},
		{-100, 7},
		{100, -7},
		{-100, -7},
		{9_223_372_036_854_775_807, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.a/c.b, ParavartyaDivide(c.a, c.b), "ParavartyaDivide(%d, %d)", c.a, c.b)
	}

	// Zero divisor yields the sentinel; rejection happens upstream
	assert.Equal(t, int64(0), ParavartyaDivide(42, 0))
}

// TestStandardBaselines tests the trusted baseline operations
func TestStandardBaselines(t *testing.T) {
	assert.Equal(t, int64(56), StandardMultiply(7, 8))
	assert.Equal(t, int64(14), StandardDivide(100, 7))
	assert.Equal(t, int64(0), StandardDivide(100, 0))
}
