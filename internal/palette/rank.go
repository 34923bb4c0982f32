package palette

import "sort"

// Cluster is a non-empty cluster of the winning trial.
type Cluster struct {
	// Index is the centroid's position in Trial.Centroids.
	Index    int     `json:"index"`
	Centroid Lab     `json:"centroid"`
	Count    int     `json:"count"`
	Share    float64 `json:"share"`
}

// Rank computes the population share of every centroid in t and returns the
// non-empty clusters ordered by descending share. Equal shares are ordered by
// ascending centroid index.
func Rank(t Trial) []Cluster {
	counts := make([]int, len(t.Centroids))
	for _, a := range t.Assignments {
		counts[a]++
	}

	n := float64(len(t.Assignments))
	clusters := make([]Cluster, 0, len(counts))
	for i, count := range counts {
		if count == 0 {
			continue
		}
		clusters = append(clusters, Cluster{
			Index:    i,
			Centroid: t.Centroids[i],
			Count:    count,
			Share:    float64(count) / n,
		})
	}

	// Counts share a denominator, so comparing them is an exact share comparison.
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Count != clusters[j].Count {
			return clusters[i].Count > clusters[j].Count
		}
		return clusters[i].Index < clusters[j].Index
	})
	return clusters
}
