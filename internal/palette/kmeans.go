package palette

import (
	"math/rand/v2"
	"runtime"
	"sync"
)

// Trial is the outcome of one seeded k-means run.
type Trial struct {
	// Index is the trial's position in the run, 0-based.
	Index int `json:"index"`

	// Seed is the seed the trial's random source was built from.
	Seed uint64 `json:"seed"`

	// Centroids holds exactly Config.Clusters entries. A centroid that lost
	// all its members keeps its last position.
	Centroids []Lab `json:"centroids"`

	// Assignments maps every sample, by position, to a centroid index.
	Assignments []int `json:"-"`

	// Score is the sum of squared distances from each sample to its centroid.
	Score float64 `json:"score"`

	// Iterations is the number of assign/update rounds performed.
	Iterations int `json:"iterations"`

	// Converged reports whether the trial stopped before MaxIterations.
	Converged bool `json:"converged"`
}

// Cluster runs cfg.Trials independent k-means trials over samples and returns
// the one with the lowest score. When scores tie exactly, the trial with the
// lowest index wins.
//
// Trials run concurrently on up to GOMAXPROCS goroutines. They share only the
// read-only samples slice, and the winner is picked after every trial has
// finished, so the result does not depend on scheduling.
func Cluster(samples []Lab, cfg Config) (Trial, error) {
	if err := cfg.validateFor(len(samples)); err != nil {
		return Trial{}, err
	}
	obs := cfg.observer()

	trials := make([]Trial, cfg.Trials)
	workers := runtime.GOMAXPROCS(0)
	if workers > cfg.Trials {
		workers = cfg.Trials
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				trials[i] = runTrial(samples, cfg, i)
				obs.TrialFinished(trials[i].report())
			}
		}()
	}
	for i := range trials {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	best := selectBest(trials)
	obs.TrialSelected(best.report())
	return best, nil
}

// selectBest reduces trials in index order, keeping a later trial only when
// its score is strictly lower.
func selectBest(trials []Trial) Trial {
	best := trials[0]
	for _, t := range trials[1:] {
		if t.Score < best.Score {
			best = t
		}
	}
	return best
}

func runTrial(samples []Lab, cfg Config, index int) Trial {
	seed := cfg.Seed + uint64(index)
	rng := rand.New(rand.NewPCG(seed, seed))

	centroids := seedCentroids(samples, cfg.Clusters, rng)
	assignments := make([]int, len(samples))
	sums := make([]Lab, cfg.Clusters)
	counts := make([]int, cfg.Clusters)

	iterations := 0
	converged := false
	for iterations < cfg.MaxIterations {
		iterations++
		assign(samples, centroids, assignments)
		movement := updateCentroids(samples, assignments, centroids, sums, counts)
		if movement < cfg.ConvergenceThreshold {
			converged = true
			break
		}
	}

	// Reassign against the final centroids so the assignments and the score
	// describe the centroids being returned.
	score := assign(samples, centroids, assignments)

	return Trial{
		Index:       index,
		Seed:        seed,
		Centroids:   centroids,
		Assignments: assignments,
		Score:       score,
		Iterations:  iterations,
		Converged:   converged,
	}
}

// seedCentroids picks k initial centroids with k-means++: the first uniformly
// at random, each following one with probability proportional to its squared
// distance from the nearest centroid chosen so far.
func seedCentroids(samples []Lab, k int, rng *rand.Rand) []Lab {
	centroids := make([]Lab, 0, k)
	centroids = append(centroids, samples[rng.IntN(len(samples))])

	dists := make([]float64, len(samples))
	for i, s := range samples {
		dists[i] = s.DistanceSquared(centroids[0])
	}

	for len(centroids) < k {
		var total float64
		for _, d := range dists {
			total += d
		}
		c := samples[sampleWeighted(dists, total, rng)]
		centroids = append(centroids, c)
		for i, s := range samples {
			if d := s.DistanceSquared(c); d < dists[i] {
				dists[i] = d
			}
		}
	}
	return centroids
}

// sampleWeighted draws an index with probability weights[i]/total. Zero
// weights are never drawn unless every weight is zero, in which case the draw
// is uniform.
func sampleWeighted(weights []float64, total float64, rng *rand.Rand) int {
	if total <= 0 {
		return rng.IntN(len(weights))
	}
	target := rng.Float64() * total
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		target -= w
		if target < 0 {
			return i
		}
	}
	// Rounding left a sliver of target; fall back to the last positive weight.
	return last
}

// assign stores the nearest centroid of every sample in assignments and
// returns the total squared distance. Ties go to the lower centroid index.
func assign(samples, centroids []Lab, assignments []int) float64 {
	var total float64
	for i, s := range samples {
		best := 0
		bestDist := s.DistanceSquared(centroids[0])
		for c := 1; c < len(centroids); c++ {
			if d := s.DistanceSquared(centroids[c]); d < bestDist {
				best = c
				bestDist = d
			}
		}
		assignments[i] = best
		total += bestDist
	}
	return total
}

// updateCentroids moves every non-empty centroid to the mean of its members
// and returns the summed squared movement. sums and counts are scratch space.
func updateCentroids(samples []Lab, assignments []int, centroids, sums []Lab, counts []int) float64 {
	for c := range centroids {
		sums[c] = Lab{}
		counts[c] = 0
	}
	for i, a := range assignments {
		s := samples[i]
		sums[a].L += s.L
		sums[a].A += s.A
		sums[a].B += s.B
		counts[a]++
	}

	var movement float64
	for c := range centroids {
		if counts[c] == 0 {
			continue
		}
		n := float64(counts[c])
		next := Lab{L: sums[c].L / n, A: sums[c].A / n, B: sums[c].B / n}
		movement += centroids[c].DistanceSquared(next)
		centroids[c] = next
	}
	return movement
}
