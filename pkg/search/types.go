package search

// Strategy selects the coordination mechanism used to collect matches from
// concurrent workers.
type Strategy string

const (
	// StrategyCounter collects matches into a mutex-guarded slice admitted
	// through an atomic slot-reservation counter
	StrategyCounter Strategy = "counter"

	// StrategyChannel funnels matches through a bounded queue consumed by a
	// single collector goroutine
	StrategyChannel Strategy = "channel"
)

// Constants for engine defaults
const (
	// DefaultQueueSize is the capacity of the bounded match queue used by
	// the channel strategy
	DefaultQueueSize = 100

	// DefaultBatchSize is the number of candidates a worker claims per pull
	DefaultBatchSize = 64
)

// Match is a candidate integer whose digest satisfied the trailing-zero
// criterion, paired with the digest's lowercase hex rendering.
type Match struct {
	// Candidate is the matched integer
	Candidate uint64 `json:"candidate" yaml:"candidate"`

	// Digest is the lowercase hexadecimal digest text
	Digest string `json:"digest" yaml:"digest"`
}

// Config holds the configuration for one search. It is immutable for the
// life of the search and shared read-only across workers.
type Config struct {
	// Zeros is the required number of trailing '0' characters (>= 0)
	Zeros int

	// Results is the number of matches to collect (>= 1)
	Results int

	// Workers is the number of concurrent search workers
	Workers int

	// Strategy selects the coordination mechanism
	Strategy Strategy

	// QueueSize is the bounded queue capacity for the channel strategy
	// (defaults to DefaultQueueSize)
	QueueSize int

	// BatchSize is the number of candidates claimed per worker pull
	// (defaults to DefaultBatchSize)
	BatchSize int

	// MaxCandidate caps the candidate space at an inclusive upper bound;
	// 0 leaves the space unbounded. A capped search that runs out of
	// candidates completes with a partial result.
	MaxCandidate uint64

	// RateLimit throttles digest computations per second across all
	// workers (0 for unlimited)
	RateLimit int
}

// Stats is a point-in-time snapshot of a running search
type Stats struct {
	// CandidatesExamined is the number of candidates evaluated so far
	CandidatesExamined uint64

	// MatchesFound is the number of matches admitted so far
	MatchesFound int
}
