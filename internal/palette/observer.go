package palette

import "log"

// TrialReport summarizes one finished trial for an Observer.
type TrialReport struct {
	Index      int
	Seed       uint64
	Iterations int
	Converged  bool
	Score      float64
	NonEmpty   int
}

// Observer receives progress reports from Cluster.
//
// TrialFinished is called from worker goroutines, possibly concurrently and in
// any order; implementations must be safe for concurrent use. TrialSelected is
// called once, after all trials have finished.
type Observer interface {
	TrialFinished(r TrialReport)
	TrialSelected(r TrialReport)
}

type nopObserver struct{}

func (nopObserver) TrialFinished(TrialReport) {}
func (nopObserver) TrialSelected(TrialReport) {}

// LogObserver returns an Observer that writes one line per event to logger.
func LogObserver(logger *log.Logger) Observer {
	return logObserver{logger: logger}
}

type logObserver struct {
	logger *log.Logger
}

func (o logObserver) TrialFinished(r TrialReport) {
	o.logger.Printf("palette: trial %d (seed %d) finished after %d iterations, converged=%t, score=%.3f, clusters=%d",
		r.Index, r.Seed, r.Iterations, r.Converged, r.Score, r.NonEmpty)
}

func (o logObserver) TrialSelected(r TrialReport) {
	o.logger.Printf("palette: selected trial %d with score %.3f", r.Index, r.Score)
}

func (t Trial) report() TrialReport {
	seen := make([]bool, len(t.Centroids))
	nonEmpty := 0
	for _, a := range t.Assignments {
		if !seen[a] {
			seen[a] = true
			nonEmpty++
		}
	}
	return TrialReport{
		Index:      t.Index,
		Seed:       t.Seed,
		Iterations: t.Iterations,
		Converged:  t.Converged,
		Score:      t.Score,
		NonEmpty:   nonEmpty,
	}
}
