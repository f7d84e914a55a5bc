// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sorting

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Constants for radix sort
const (
	// radixDigitBits is the width of one digit group.
	radixDigitBits = 4

	// radixBuckets is the number of distinct digit values per pass.
	radixBuckets = 1 << radixDigitBits

	radixDigitMask = radixBuckets - 1
)

// RadixSort sorts integers in ascending order with an LSD radix sort on
// 4-bit digits. Signed element types use RadixSortSigned's pass layout,
// unsigned ones RadixSortUnsigned's.
//
// It performs O(n * bits/4) work and allocates one scratch slice of len(s).
// RadixSort is not guaranteed to be stable.
func RadixSort[E constraints.Integer](s []E) {
	if isSigned[E]() {
		radixSortSigned(s)
	} else {
		radixSortUnsigned(s)
	}
}

// RadixSortUnsigned sorts unsigned integers in ascending order using
// bits/4 counting-sort passes from the least significant digit up.
func RadixSortUnsigned[E constraints.Unsigned](s []E) {
	radixSortUnsigned(s)
}

// RadixSortSigned sorts two's complement integers in ascending order.
// It runs the unsigned digit passes over every bit below the sign bit and
// finishes with a two-bucket pass that moves negative values in front of
// non-negative ones.
func RadixSortSigned[E constraints.Signed](s []E) {
	radixSortSigned(s)
}

func radixSortUnsigned[E constraints.Integer](s []E) {
	if len(s) <= 1 {
		return
	}

	src, dst := s, make([]E, len(s))
	for shift := 0; shift < bitWidth[E](); shift += radixDigitBits {
		countingPass(src, dst, radixBuckets, digitAt[E](shift, radixDigitMask))
		src, dst = dst, src
	}
	copyBack(s, src)
}

func radixSortSigned[E constraints.Integer](s []E) {
	if len(s) <= 1 {
		return
	}

	// Bits below the sign bit covered by full-width digits.
	full := (bitWidth[E]() - 1) / radixDigitBits * radixDigitBits

	src, dst := s, make([]E, len(s))
	for shift := 0; shift < full; shift += radixDigitBits {
		countingPass(src, dst, radixBuckets, digitAt[E](shift, radixDigitMask))
		src, dst = dst, src
	}

	// The remaining three magnitude bits just below the sign bit.
	countingPass(src, dst, radixBuckets>>1, digitAt[E](full, radixDigitMask>>1))
	src, dst = dst, src

	// Two's complement negatives look larger than every non-negative value
	// when viewed as unsigned digits, so pull them to the front.
	countingPass(src, dst, 2, signBucket[E])
	src, dst = dst, src

	copyBack(s, src)
}

// countingPass scatters src into dst ordered by digit(v), which must return
// a value in [0, buckets). Equal digits keep their relative order.
func countingPass[E constraints.Integer](src, dst []E, buckets int, digit func(E) int) {
	var table [radixBuckets]int
	count := table[:buckets]

	for _, v := range src {
		count[digit(v)]++
	}

	// Exclusive prefix sums give each bucket its first output slot.
	offset := 0
	for b, c := range count {
		count[b] = offset
		offset += c
	}

	for _, v := range src {
		d := digit(v)
		dst[count[d]] = v
		count[d]++
	}
}

// digitAt returns a digit extractor for the bits selected by mask after
// shifting right by shift. Signed values are read as their two's complement
// bit pattern.
func digitAt[E constraints.Integer](shift int, mask uint64) func(E) int {
	return func(v E) int {
		return int(uint64(v) >> shift & mask)
	}
}

func signBucket[E constraints.Integer](v E) int {
	if v < 0 {
		return 0
	}
	return 1
}

// copyBack copies the final pass output into s unless it already lives there.
func copyBack[E constraints.Integer](s, out []E) {
	if &out[0] != &s[0] {
		copy(s, out)
	}
}

func isSigned[E constraints.Integer]() bool {
	var zero E
	return ^zero < zero
}

func bitWidth[E constraints.Integer]() int {
	var zero E
	return int(unsafe.Sizeof(zero)) * 8
}
