// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "math/big"

// primeGte returns the smallest prime >= n. Unique tables use prime-sized
// bucket arrays (rather than power-of-two, the convention the memoization
// cache uses) to spread the hash of (then, els) more evenly across buckets,
// following BuDDy's node-table growth policy.
func primeGte(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	return big.NewInt(int64(n)).ProbablyPrime(20)
}
