package pricing

import (
	"sort"
	"strings"

	"nextops_proposals/internal/domain/entities"
)

// Recommendation truncation per product tier.
const (
	maxModulesAvulso  = 2
	maxModulesERPCore = 4
	maxModulesERPIA   = 6
)

// Recommend scores every module against the company profile and returns the
// best-scoring module keys for the product, truncated to the product tier's
// limit. Diagnostics carry no modules, so the result is always empty for
// ProductDiagnostico. Modules that score zero are never recommended.
//
// Scoring: +2 when the profile's sector is one of the module's sectors,
// +3 when the main interest is one the module addresses, +1 when any profile
// department is a substring of the module key. Ties keep catalog order
// (stable sort).
func Recommend(c Catalog, product string, profile entities.CompanyProfile) []string {
	if product == ProductDiagnostico {
		return nil
	}

	type scored struct {
		key   string
		score int
	}

	ranked := make([]scored, 0, len(c.Modules))
	for _, m := range c.Modules {
		// ERP Core ships without the IA add-ons.
		if product == ProductERPCore && strings.HasPrefix(m.Key, "ia_") {
			continue
		}

		score := 0
		if containsString(m.Sectors, profile.Sector) {
			score += 2
		}
		if containsString(m.Interests, profile.MainInterest) {
			score += 3
		}
		for _, d := range profile.Departments {
			if d != "" && strings.Contains(m.Key, d) {
				score++
				break
			}
		}
		if score == 0 {
			continue
		}
		ranked = append(ranked, scored{key: m.Key, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	limit := maxModulesERPIA
	switch product {
	case ProductModuloAvulso:
		limit = maxModulesAvulso
	case ProductERPCore:
		limit = maxModulesERPCore
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	keys := make([]string, 0, len(ranked))
	for _, r := range ranked {
		keys = append(keys, r.key)
	}
	return keys
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
