package bc1

import (
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/color565"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/estimate"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/format"
	"github.com/Sewer56/dxt-lossless-transform-sub001/internal/optimizer"
)

// transformForSearch adapts Transform to optimizer.Transformer: the
// brute-force search only ever varies decorrelation and split-endpoints,
// never normalization, matching the non-experimental search path in
// determine_optimal_transform.rs.
func transformForSearch(src, dst []byte, decorrelation color565.Variant, split bool) error {
	return Transform(src, dst, format.Settings{Decorrelation: decorrelation, SplitEndpoints: split})
}

// DetermineOptimalAndTransform finds the TransformSettings estimated to
// produce the smallest output for src and leaves that transform's output
// in dst. It is the "transform_auto" operation from the core library
// surface: a combined search-and-apply call, faster than calling the
// search and then a separate full transform with the winning settings.
func DetermineOptimalAndTransform(src, dst []byte, mode optimizer.Mode, est estimate.Estimator) (format.Settings, error) {
	return optimizer.Search(src, dst, mode, est, transformForSearch)
}
