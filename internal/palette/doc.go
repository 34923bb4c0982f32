// Package palette extracts a ranked dominant-colour palette from decoded pixels.
//
// The pipeline runs in four stages, each usable on its own:
//
//	PixelBuffer -> ConvertPixels -> Cluster -> Rank -> Encode
//
//   - ConvertPixels maps 8-bit sRGB pixels to CIE Lab (D65), one sample per
//     pixel, in row-major order.
//   - Cluster runs several independently seeded k-means trials over the Lab
//     samples and keeps the one with the lowest distortion score.
//   - Rank turns the winning trial into clusters ordered by population share.
//   - Encode maps each cluster centroid back to an 8-bit sRGB colour.
//
// Analyze chains all four. Decoding compressed image bytes is not part of this
// package; see the imaging package for DecodePixels and ExtractPalette.
//
// # Determinism
//
// Every trial derives its random source from Config.Seed plus the trial
// index. Trials run concurrently, but the winner is chosen by (score, trial
// index) after all trials finish, so identical input and configuration always
// produce bit-identical output regardless of scheduling.
//
// # Errors
//
// Invalid configuration (non-positive cluster, trial or iteration counts, a
// negative or NaN convergence threshold, or more clusters than samples) is
// reported as ErrInvalidParameter before any clustering starts. A trial that
// ends with empty clusters is not an error; empty clusters are simply absent
// from the ranked output.
package palette
