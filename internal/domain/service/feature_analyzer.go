package service

import (
	"context"

	"closet/internal/domain/entity"
)

// FeatureAnalyzer extracts structured attributes from a cloth image.
// Image processing itself is out of scope; the local implementation derives
// deterministic features from the image bytes so the pipeline stays testable.
type FeatureAnalyzer interface {
	Analyze(ctx context.Context, imageURL string, image []byte) (*entity.ClothFeatures, error)
}
