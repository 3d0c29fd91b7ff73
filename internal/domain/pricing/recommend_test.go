package pricing

import (
	"testing"

	"nextops_proposals/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func retailProfile() entities.CompanyProfile {
	return entities.CompanyProfile{
		CompanyName:  "Mercearia Central",
		Sector:       "retalho",
		MainInterest: "automatizar_processos",
		Departments:  []string{"logistica"},
	}
}

func TestRecommend_DiagnosticHasNoModules(t *testing.T) {
	got := Recommend(DefaultCatalog(), ProductDiagnostico, retailProfile())
	assert.Empty(t, got)
}

func TestRecommend_ERPCoreRetail(t *testing.T) {
	// stock and encomendas score 5 (sector + interest); pipeline, rotas,
	// suporte and integracoes score 3 (interest only). Truncated to four,
	// ties keep catalog order.
	got := Recommend(DefaultCatalog(), ProductERPCore, retailProfile())
	assert.Equal(t, []string{"stock", "encomendas", "pipeline", "rotas"}, got)
}

func TestRecommend_AvulsoTruncatesToTwo(t *testing.T) {
	got := Recommend(DefaultCatalog(), ProductModuloAvulso, retailProfile())
	assert.Equal(t, []string{"stock", "encomendas"}, got)
}

func TestRecommend_ERPCoreExcludesIAModules(t *testing.T) {
	profile := entities.CompanyProfile{Sector: "saude", MainInterest: "automatizar_processos"}
	got := Recommend(DefaultCatalog(), ProductERPCore, profile)
	for _, key := range got {
		assert.NotContains(t, key, "ia_")
	}
}

func TestRecommend_ERPIAIncludesIAModules(t *testing.T) {
	profile := entities.CompanyProfile{Sector: "saude", MainInterest: "automatizar_processos"}
	got := Recommend(DefaultCatalog(), ProductERPIA, profile)
	assert.Equal(t, []string{"suporte", "ia_docs", "ia_assist", "ia_triagem", "pipeline", "stock"}, got)
}

func TestRecommend_DepartmentSubstringScoresOne(t *testing.T) {
	// No sector or interest hit anywhere; only the financeiro module key
	// contains the department value.
	profile := entities.CompanyProfile{Sector: "outro", Departments: []string{"financeiro"}}
	got := Recommend(DefaultCatalog(), ProductERPCore, profile)
	assert.Equal(t, []string{"financeiro"}, got)
}

func TestRecommend_ZeroScoreExcluded(t *testing.T) {
	profile := entities.CompanyProfile{Sector: "outro"}
	got := Recommend(DefaultCatalog(), ProductERPIA, profile)
	assert.Empty(t, got)
}

func TestRecommend_DepartmentsCountOnce(t *testing.T) {
	// Multiple matching departments still add a single point: rh alone would
	// not outrank a sector match.
	profile := entities.CompanyProfile{Sector: "outro", Departments: []string{"rh", "rh"}}
	got := Recommend(DefaultCatalog(), ProductERPCore, profile)
	assert.Equal(t, []string{"rh"}, got)
}
