// Package pgsgd implements the path-guided stochastic gradient descent
// (PG-SGD) engine that computes a 1D layout of a bidirected sequence graph's
// nodes.
//
// Run launches the lock-free, multi-threaded engine: N worker goroutines
// perform atomic coordinate updates on a shared Positions vector, driven by
// a non-uniform term-pair sampler, while a supervisor goroutine advances the
// learning-rate schedule and a snapshotter goroutine periodically captures
// the position vector. RunDeterministic is the single-goroutine,
// reproducible counterpart: same inputs and seed produce byte-identical
// output.
//
// Positions are not protected by a mutex; two workers touching the same
// coordinate may lose an update. This is deliberate, not an oversight: the
// optimizer is statistically robust to missed updates given enough
// sampling, and upgrading to a CAS loop would change the algorithm's
// observable behavior, not just its implementation.
package pgsgd
