package impl

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"closet/internal/domain/entity"
)

const (
	baseScore        = 10.0
	rainPenalty      = 3.0
	seasonPenalty    = 1.5
	neutralWarmth    = 3
	fallbackCategory = "other"
)

// targetWarmth maps temperature to the preferred warmth level: the colder
// the day, the heavier the cloth.
func targetWarmth(tempC float64) int {
	switch {
	case tempC <= 5:
		return 5
	case tempC <= 12:
		return 4
	case tempC <= 18:
		return 3
	case tempC <= 24:
		return 2
	default:
		return 1
	}
}

// scoreCloth computes the compatibility score of a cloth against the
// weather context. Clothes without features score the neutral baseline and
// are never excluded for missing metadata alone.
func scoreCloth(cloth *entity.Cloth, weather *entity.Weather, season string) float64 {
	target := targetWarmth(weather.TempC)

	warmth := neutralWarmth
	if cloth.Features != nil && cloth.Features.WarmthLevel > 0 {
		warmth = cloth.Features.WarmthLevel
	}

	score := baseScore - math.Abs(float64(target-warmth))

	if cloth.Features != nil {
		if weather.IsRainy() && !cloth.Features.IsRainOk {
			score -= rainPenalty
		}

		if len(cloth.Features.Seasons) > 0 && !containsSeason(cloth.Features.Seasons, season) {
			score -= seasonPenalty
		}
	}

	return score
}

func containsSeason(seasons []string, season string) bool {
	for _, s := range seasons {
		if strings.EqualFold(s, season) {
			return true
		}
	}

	return false
}

// scoredCloth pairs a candidate with its score for selection.
type scoredCloth struct {
	cloth *entity.Cloth
	score float64
}

// selectOutfit picks the best-scoring cloth per category. Ties break by the
// newest cloth first, then by identifier, so identical inputs always yield
// the identical outfit.
func selectOutfit(clothes []*entity.Cloth, weather *entity.Weather, season string) []scoredCloth {
	byCategory := make(map[string][]scoredCloth)
	for _, cloth := range clothes {
		category := normalizeCategory(cloth.Category)
		byCategory[category] = append(byCategory[category], scoredCloth{
			cloth: cloth,
			score: scoreCloth(cloth, weather, season),
		})
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	selection := make([]scoredCloth, 0, len(categories))
	for _, category := range categories {
		candidates := byCategory[category]
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].score != candidates[j].score {
				return candidates[i].score > candidates[j].score
			}
			if !candidates[i].cloth.CreatedAt.Equal(candidates[j].cloth.CreatedAt) {
				return candidates[i].cloth.CreatedAt.After(candidates[j].cloth.CreatedAt)
			}

			return candidates[i].cloth.ID.String() < candidates[j].cloth.ID.String()
		})

		selection = append(selection, candidates[0])
	}

	return selection
}

func normalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return fallbackCategory
	}

	return category
}

// composeReason builds the deterministic justification string, naming the
// dominant factor: rain-safety beats temperature match, which beats
// freshness (everything rested and no feature data to speak of).
func composeReason(selection []scoredCloth, weather *entity.Weather) string {
	target := targetWarmth(weather.TempC)

	rainSafe := false
	warmthMatched := false
	for _, sc := range selection {
		if sc.cloth.Features == nil {
			continue
		}
		if weather.IsRainy() && sc.cloth.Features.IsRainOk {
			rainSafe = true
		}
		if sc.cloth.Features.WarmthLevel == target {
			warmthMatched = true
		}
	}

	var lead string
	switch {
	case weather.IsRainy() && rainSafe:
		lead = fmt.Sprintf("Rain expected at %.1f°C, so rain-ready pieces come first", weather.TempC)
	case warmthMatched:
		lead = fmt.Sprintf("Matched warmth to %.1f°C %s weather", weather.TempC, strings.ToLower(weather.Condition))
	default:
		lead = "Everything picked is fresh and fully rested"
	}

	parts := make([]string, 0, len(selection))
	for _, sc := range selection {
		parts = append(parts, describePick(sc))
	}

	return lead + ": " + strings.Join(parts, "; ")
}

func describePick(sc scoredCloth) string {
	category := normalizeCategory(sc.cloth.Category)

	if sc.cloth.Features == nil || (sc.cloth.Features.Color == "" && sc.cloth.Features.Pattern == "") {
		return fmt.Sprintf("%s (score %.1f)", category, sc.score)
	}

	desc := strings.TrimSpace(sc.cloth.Features.Color + " " + sc.cloth.Features.Pattern)

	return fmt.Sprintf("%s: %s (score %.1f)", category, desc, sc.score)
}
