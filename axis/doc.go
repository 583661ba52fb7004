// Package axis generates short, coherent descriptor sets ("conditions") by
// sampling one value per semantic axis and then removing incoherent
// combinations.
//
// # Overview
//
// A Domain bundles four static tables:
//
//	axes        physique: [skinny, wiry, stocky, ...]
//	weights     wealth: {poor: 4.0, decadent: 0.5}
//	policy      mandatory [physique wealth], optional [health age ...], max 2
//	exclusions  wealth=decadent blocks health in [sickly]
//
// Domain.Generate samples every mandatory axis, then a random number
// (0..MaxOptional) of distinct optional axes, then applies the exclusion
// rules in table order. The result is an immutable, insertion-ordered
// Assignment that serializes to a prompt fragment:
//
//	a, err := d.Generate(axis.WithSeed(42))
//	fmt.Println(a.Prompt()) // "wiry, poor, weary"
//
// # Determinism
//
// Given the same seed and the same Domain, Generate always returns the same
// Assignment. Seeds are expanded into a math/rand/v2 PCG source (see NewRand).
// Without a seed each call draws a fresh source from crypto/rand; there is no
// shared package-level generator.
//
// # Exclusions
//
// Resolution is a single forward pass over the rule list. A rule fires when
// its trigger value is still present; a rule whose trigger was removed by an
// earlier rule does not fire. Blocked axes are removed outright, mandatory
// ones included. Nothing is resampled.
//
// # Errors
//
//   - errors.ErrConfiguration: NewDomain or LoadFile found a structurally
//     invalid table (unknown axis or value, overlapping policy lists,
//     MaxOptional out of range).
//   - errors.ErrInvalidInput: the sampler was given an empty value list or a
//     non-positive weight.
package axis
