/*
Package bytescan implements a byte-oriented substring search engine built
from hand-tuned scalar and SIMD algorithms, specialised by needle length:

  - length 0: the empty-needle convention, always matching at index 0.
  - length 1-4: dedicated SWAR kernels in package scalar (scalar.Find1..4),
    evaluating several candidate alignments per 8-byte load.
  - length >= 5, no vector kernel available: the general scalar scanner
    (scalar.General), a 4-byte anomaly prefilter with suffix-then-prefix
    verification.
  - length >= 4, vector kernel available: package simd's AVX2 scanner on
    amd64 or NEON scanner on arm64, each a 4-wide unaligned-load prefilter
    gate over the haystack with scalar verification on a hit.

Every search is synchronous, read-only, and allocation-free on the hot
path; there is no background work, no cancellation primitive, and no
logging, because the engine itself does not fail; only precondition
violations at construction time (see package span) and ordinary misses
(the len(haystack) sentinel) are possible outcomes.
*/
package bytescan
