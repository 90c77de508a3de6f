// Package pew is a micro-benchmark execution engine. A benchmark suite is an
// ordered list of named entries; each entry binds an input size range, an
// optional input generator, and one or more bodies. Every (entry, body, size)
// triple runs repeatedly until both a minimum total active time and a minimum
// run count are satisfied, and the mean time per run is reported as CSV:
//
//	Name,Time (ns)
//	range_bench/bm_vector_range/1024,103674
//	range_bench/bm_vector_range/4096,412499
//
// Bodies receive a State carrying this run's input and a pause/resume timer,
// so setup work can be excluded from the measured interval:
//
//	func bmVectorRange(s *pew.State[uint64]) {
//		n := s.Input()
//		s.Pause()
//		vec := makeVec(n)
//		s.Resume()
//		for range n {
//			pew.Sink(vec[len(vec)-1])
//			vec = vec[:len(vec)-1]
//		}
//	}
//
// The pew-transpose command pivots the CSV output for plotting, and
// pew-compare tracks results over time to catch regressions.
package pew
