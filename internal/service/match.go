package service

import (
	"context"

	"github.com/smartchef/backend/internal/matching"
	"github.com/smartchef/backend/internal/metrics"
)

// RecipeSource supplies the full catalog to match against.
type RecipeSource interface {
	All(ctx context.Context) ([]matching.Recipe, string)
}

type MatchService struct {
	source RecipeSource
}

func NewMatchService(source RecipeSource) *MatchService {
	return &MatchService{source: source}
}

// Match ranks the catalog against input. When servings > 0 every result's
// ingredients are rescaled to that serving count. The second return value
// is the catalog source.
func (s *MatchService) Match(ctx context.Context, input matching.MatchInput, servings int) ([]matching.MatchResult, string) {
	recipes, source := s.source.All(ctx)

	results := matching.Match(recipes, input)
	if servings > 0 {
		for i := range results {
			results[i].Recipe = matching.ScaleRecipe(results[i].Recipe, servings)
		}
	}

	metrics.MatchRequests.Inc()
	metrics.MatchResults.Observe(float64(len(results)))
	return results, source
}
