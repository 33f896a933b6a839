package catalog

import (
	"context"
	"fmt"

	"github.com/travelmate-app/backend/internal/domain"
)

// CategoryGroup is one primary category with the sub categories legal for it,
// both in display order.
type CategoryGroup struct {
	Primary domain.PrimaryCategory
	Subs    []domain.SubCategory
}

// Categories returns the active situation taxonomy grouped by primary
// category. Sub categories appear only under primaries they are mapped to.
func (s *Service) Categories(ctx context.Context) ([]CategoryGroup, error) {
	primaries, err := s.categories.ListPrimary(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list primary categories: %w", err)
	}

	subs, err := s.categories.ListSub(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list sub categories: %w", err)
	}

	mappings, err := s.categories.ListMappings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list category mappings: %w", err)
	}

	subByCode := make(map[string]domain.SubCategory, len(subs))
	for _, sc := range subs {
		subByCode[sc.Code] = sc
	}

	// Sub codes per primary, preserving the display order of the sub list.
	allowed := make(map[string]map[string]bool, len(primaries))
	for _, m := range mappings {
		if allowed[m.PrimaryCode] == nil {
			allowed[m.PrimaryCode] = make(map[string]bool)
		}
		allowed[m.PrimaryCode][m.SubCode] = true
	}

	groups := make([]CategoryGroup, 0, len(primaries))
	for _, pc := range primaries {
		group := CategoryGroup{Primary: pc, Subs: []domain.SubCategory{}}
		for _, sc := range subs {
			if allowed[pc.Code][sc.Code] {
				group.Subs = append(group.Subs, sc)
			}
		}
		groups = append(groups, group)
	}

	s.log.DebugContext(ctx, "catalog assembled",
		"primaries", len(groups),
		"mappings", len(mappings),
	)

	return groups, nil
}
