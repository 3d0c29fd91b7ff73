package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_UnknownProduct(t *testing.T) {
	_, err := Calculate(DefaultCatalog(), "nope", nil, "1-10", "ate_100k", Payment5050)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownProduct))
}

func TestCalculate_DiagnosticIsFree(t *testing.T) {
	c := DefaultCatalog()
	// Module selection, brackets and payment terms must all be ignored.
	result, err := Calculate(c, ProductDiagnostico, []string{"stock", "ia_docs"}, "500+", "5m_plus", Payment3Parcelas)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "Diagnóstico Operacional (Gratuito)", result.Items[0].Description)
	assert.Equal(t, 0.0, result.Items[0].UnitPrice)
	assert.Equal(t, 0.0, result.Total)
	assert.Equal(t, 1, result.Sprints)
}

func TestCalculate_DiagnosticIgnoresOverlay(t *testing.T) {
	c := Merge(DefaultCatalog(), &Config{
		Products: []ProductOverride{{Key: ProductDiagnostico, BasePrice: 999, SprintsBase: 7}},
	})
	result, err := Calculate(c, ProductDiagnostico, nil, "1-10", "ate_100k", Payment5050)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Total)
	assert.Equal(t, 1, result.Sprints)
}

func TestCalculate_RetailScenario(t *testing.T) {
	result, err := Calculate(DefaultCatalog(), ProductERPCore, []string{"stock", "encomendas"}, "1-10", "ate_100k", Payment5050)
	require.NoError(t, err)

	require.Len(t, result.Items, 3)
	assert.Equal(t, "ERP Core — Setup & Configuração", result.Items[0].Description)
	assert.Equal(t, 4500.0, result.Items[0].Total)
	assert.Equal(t, "Produtos & Stock", result.Items[1].Description)
	assert.Equal(t, 1400.0, result.Items[1].Total)
	assert.Equal(t, "Encomendas", result.Items[2].Description)
	assert.Equal(t, 1300.0, result.Items[2].Total)

	assert.Equal(t, 7200.0, result.Total)
	assert.Equal(t, 5, result.Sprints)
}

func TestCalculate_RoundsEachLine(t *testing.T) {
	// 4500 × 1.15 × 1.05 = 5433.75 → 5434. The stock line is the float
	// product 1400 × 1.15 × 1.05 = 1690.4999999999998 (not 1690.5), so it
	// rounds down to 1690.
	result, err := Calculate(DefaultCatalog(), ProductERPCore, []string{"stock"}, "11-50", "100k_500k", Payment5050)
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, 5434.0, result.Items[0].Total)
	assert.Equal(t, 1690.0, result.Items[1].Total)
	assert.Equal(t, 7124.0, result.Total)
}

func TestCalculate_PaymentAdjustments(t *testing.T) {
	t.Run("upfront discount", func(t *testing.T) {
		result, err := Calculate(DefaultCatalog(), ProductERPCore, nil, "1-10", "ate_100k", Payment100Upfront)
		require.NoError(t, err)

		require.Len(t, result.Items, 2)
		last := result.Items[1]
		assert.Equal(t, "Desconto pagamento antecipado", last.Description)
		assert.Equal(t, -225.0, last.UnitPrice)
		assert.Equal(t, -225.0, last.Total)
		assert.Equal(t, 4275.0, result.Total)
	})

	t.Run("installment surcharge", func(t *testing.T) {
		result, err := Calculate(DefaultCatalog(), ProductERPCore, nil, "1-10", "ate_100k", Payment3Parcelas)
		require.NoError(t, err)

		require.Len(t, result.Items, 2)
		last := result.Items[1]
		assert.Equal(t, "Acréscimo parcelamento", last.Description)
		assert.Equal(t, 135.0, last.UnitPrice)
		assert.Equal(t, 135.0, last.Total)
		assert.Equal(t, 4635.0, result.Total)
	})

	t.Run("neutral option adds no line", func(t *testing.T) {
		result, err := Calculate(DefaultCatalog(), ProductERPCore, nil, "1-10", "ate_100k", Payment5050)
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, 4500.0, result.Total)
	})
}

func TestCalculate_LenientLookups(t *testing.T) {
	// Unknown brackets fall back to 1.0, unknown payment to no adjustment,
	// unknown modules are skipped.
	result, err := Calculate(DefaultCatalog(), ProductERPCore, []string{"nope"}, "weird", "weird", "weird")
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, 4500.0, result.Total)
	assert.Equal(t, 3, result.Sprints)
}

func TestCalculate_Deterministic(t *testing.T) {
	c := DefaultCatalog()
	first, err := Calculate(c, ProductERPIA, []string{"ia_docs", "suporte"}, "51-200", "1m_5m", Payment100Upfront)
	require.NoError(t, err)
	second, err := Calculate(c, ProductERPIA, []string{"ia_docs", "suporte"}, "51-200", "1m_5m", Payment100Upfront)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculate_OverlayChangesPricing(t *testing.T) {
	c := Merge(DefaultCatalog(), &Config{
		Products: []ProductOverride{{Key: ProductERPCore, BasePrice: 5000, SprintsBase: 2}},
		Modules:  []ModuleOverride{{Key: "stock", Price: 1000, Sprints: 2}},
	})
	result, err := Calculate(c, ProductERPCore, []string{"stock"}, "1-10", "ate_100k", Payment5050)
	require.NoError(t, err)

	assert.Equal(t, 6000.0, result.Total)
	assert.Equal(t, 4, result.Sprints)
}

func TestRoundNearest(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1690.5, 1691},
		{1690.4, 1690},
		{-134.5, -134},
		{-135.5, -135},
		{0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, roundNearest(tc.in), "roundNearest(%v)", tc.in)
	}
}

func TestCalculate_ItemsQuantityAlwaysOne(t *testing.T) {
	result, err := Calculate(DefaultCatalog(), ProductERPIA, []string{"ia_docs", "ia_assist"}, "11-50", "500k_1m", Payment100Upfront)
	require.NoError(t, err)
	for _, it := range result.Items {
		assert.Equal(t, 1, it.Quantity)
	}
}
