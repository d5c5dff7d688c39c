// Package stylist extracts cloth features. Real image understanding is out
// of scope; the analyzer derives stable features from the image bytes so
// identical uploads always produce identical attributes.
package stylist

import (
	"context"
	"crypto/sha256"

	"closet/internal/domain/entity"
	"closet/internal/domain/service"
)

var (
	colors    = []string{"white", "black", "red", "blue", "green", "beige"}
	patterns  = []string{"plain", "striped", "checked", "floral"}
	materials = []string{"cotton", "polyester", "wool", "silk"}
)

type hashAnalyzer struct{}

// NewHashAnalyzer creates the deterministic feature analyzer.
func NewHashAnalyzer() service.FeatureAnalyzer {
	return &hashAnalyzer{}
}

// Analyze derives features from a SHA-256 digest of the image bytes,
// falling back to the URL when the bytes are unavailable.
func (a *hashAnalyzer) Analyze(_ context.Context, imageURL string, image []byte) (*entity.ClothFeatures, error) {
	src := image
	if len(src) == 0 {
		src = []byte(imageURL)
	}

	h := sha256.Sum256(src)

	warmth := int(h[3])%5 + 1

	return &entity.ClothFeatures{
		Color:       colors[int(h[0])%len(colors)],
		Pattern:     patterns[int(h[1])%len(patterns)],
		Material:    materials[int(h[2])%len(materials)],
		WarmthLevel: warmth,
		IsRainOk:    h[4]%2 == 0,
		Seasons:     seasonsForWarmth(warmth),
	}, nil
}

// seasonsForWarmth keeps the season set consistent with warmth: light
// clothes map to the warm half of the year, heavy ones to the cold half.
func seasonsForWarmth(warmth int) []string {
	switch {
	case warmth <= 2:
		return []string{entity.SeasonSpring, entity.SeasonSummer, entity.SeasonAutumn}
	case warmth == 3:
		return []string{entity.SeasonSpring, entity.SeasonAutumn}
	default:
		return []string{entity.SeasonAutumn, entity.SeasonWinter}
	}
}
