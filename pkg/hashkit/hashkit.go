// Package hashkit contains hash functions suitable for use in hashed containers.
package hashkit

import "hash/maphash"

// New returns a hash function over K that is randomly seeded at creation time.
// Each returned function carries its own seed,
// so two hashed containers will not share bucket placement,
// which keeps hash-flooding attacks from being portable between instances.
func New[K comparable]() func(K) uint64 {
	seed := maphash.MakeSeed()
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// DJBInit is the starting accumulator value of the DJB hash combinators.
const DJBInit uint64 = 5381

// DJBCombine folds a value into a DJB hash accumulator.
// It is meant for writing hash functions of compound keys by hand:
//
//	h := hashkit.DJBInit
//	h = hashkit.DJBCombine(h, hashkit.String(key.Name))
//	h = hashkit.DJBCombine(h, hashkit.Uint64(uint64(key.N)))
func DJBCombine(acc, h uint64) uint64 {
	return acc<<5 + acc + h
}

// DJB combines the given hash values into one.
func DJB(hs ...uint64) uint64 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

// String hashes a string-like value with the DJB function.
func String[S ~string](s S) uint64 {
	h := DJBInit
	for i := 0; i < len(s); i++ {
		h = DJBCombine(h, uint64(s[i]))
	}
	return h
}

// Uint64 is the identity hash of an unsigned integer value.
func Uint64(u uint64) uint64 { return u }
