package palette

// Result is the full outcome of an analysis.
type Result struct {
	// Colors is the ranked palette, most dominant first.
	Colors []RankedColor

	// Clusters lines up with Colors and carries the Lab centroid and member
	// count behind each entry.
	Clusters []Cluster

	// Trial is the winning k-means trial.
	Trial Trial
}

// Labels returns, for each pixel, the index into Colors of the entry it was
// assigned to.
func (r *Result) Labels() []int {
	rankOf := make([]int, len(r.Trial.Centroids))
	for rank, c := range r.Clusters {
		rankOf[c.Index] = rank
	}
	labels := make([]int, len(r.Trial.Assignments))
	for i, a := range r.Trial.Assignments {
		labels[i] = rankOf[a]
	}
	return labels
}

// Analyze extracts the ranked palette of buf.
//
// The result holds at most cfg.Clusters entries ordered by descending share;
// empty clusters are omitted rather than padded. Parameter errors are
// reported as ErrInvalidParameter before any pixel is converted.
func Analyze(buf *PixelBuffer, cfg Config) ([]RankedColor, error) {
	res, err := AnalyzeDetailed(buf, cfg)
	if err != nil {
		return nil, err
	}
	return res.Colors, nil
}

// AnalyzeDetailed is Analyze, also returning the clusters and winning trial.
func AnalyzeDetailed(buf *PixelBuffer, cfg Config) (*Result, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.validateFor(buf.Len()); err != nil {
		return nil, err
	}

	samples := ConvertPixels(buf)
	trial, err := Cluster(samples, cfg)
	if err != nil {
		return nil, err
	}

	clusters := Rank(trial)
	return &Result{
		Colors:   Encode(clusters),
		Clusters: clusters,
		Trial:    trial,
	}, nil
}
