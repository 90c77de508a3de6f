package pew

// sink is written by Sink so stored values stay observable to the compiler.
var sink any

// Sink stores v in a package-level variable so the compiler cannot prove the
// computation that produced it is dead and optimize it away. Best-effort: it
// costs one interface assignment per call, which benchmark bodies can keep
// out of tight inner measurements by sinking an accumulated value once.
func Sink[T any](v T) {
	sink = v
}
