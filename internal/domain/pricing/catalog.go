// Package pricing holds the proposal pricing engine: the static catalog, the
// settings overlay merge, the module recommendation selector and the price
// calculator. Everything in this package is a pure function over immutable
// inputs; persistence and transport live in the outer layers.
package pricing

// Product is a sellable offering from the catalog. Only BasePrice and
// SprintsBase may be overridden by the settings overlay.
type Product struct {
	Key         string  `json:"key"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"` // 0 = gratuito
	SprintsBase int     `json:"sprints_base"`
	Icon        string  `json:"icon"`
	Highlight   bool    `json:"highlight,omitempty"`
}

// Module is an optional add-on. Sectors and Interests drive the
// recommendation selector; Price and Sprints may be overridden.
type Module struct {
	Key       string   `json:"key"`
	Title     string   `json:"title"`
	Price     float64  `json:"price"`
	Sprints   int      `json:"sprints"`
	Sectors   []string `json:"sectors"`
	Interests []string `json:"interests"`
}

// RangeOption is one bracket of an ordered enumeration (employee count,
// annual revenue) carrying a pricing multiplier.
type RangeOption struct {
	Value      string  `json:"value"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// ChoiceOption is a plain value/label pair (sectors, interests, departments).
type ChoiceOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PaymentOption carries a signed discount fraction: positive reduces the
// total (early payment), negative increases it (installments).
type PaymentOption struct {
	Value    string  `json:"value"`
	Label    string  `json:"label"`
	Discount float64 `json:"discount"`
}

// Product keys.
const (
	ProductDiagnostico  = "diagnostico"
	ProductERPCore      = "erp_core"
	ProductERPIA        = "erp_ia"
	ProductModuloAvulso = "modulo_avulso"
)

// Catalog is the full reference data set the engine computes over. Callers
// obtain one via DefaultCatalog (optionally merged with a settings overlay)
// and must treat it as immutable.
type Catalog struct {
	Products       []Product
	Modules        []Module
	Sectors        []ChoiceOption
	EmployeeRanges []RangeOption
	RevenueRanges  []RangeOption
	Interests      []ChoiceOption
	Departments    []ChoiceOption
	PaymentOptions []PaymentOption
}

var defaultProducts = []Product{
	{
		Key:         ProductDiagnostico,
		Title:       "Diagnóstico Operacional",
		Description: "Mapa de ganhos rápidos, identificação de 3 gargalos e 3 automações prioritárias. Proposta de sprint incluída.",
		BasePrice:   0,
		SprintsBase: 1,
		Icon:        "Search",
		Highlight:   true,
	},
	{
		Key:         ProductERPCore,
		Title:       "ERP Core",
		Description: "Módulos essenciais a funcionar, equipa alinhada. Permissões, auditoria, dashboards e exports.",
		BasePrice:   4500,
		SprintsBase: 3,
		Icon:        "Boxes",
	},
	{
		Key:         ProductERPIA,
		Title:       "ERP + IA",
		Description: "Automação real com inteligência artificial. Leitura de documentos, assistente interno, triagem e resumos automáticos.",
		BasePrice:   7500,
		SprintsBase: 4,
		Icon:        "Wand2",
	},
	{
		Key:         ProductModuloAvulso,
		Title:       "Módulo Avulso",
		Description: "Módulo individual para necessidades específicas: pipeline, stock, encomendas, rotas, suporte ou dashboards.",
		BasePrice:   1500,
		SprintsBase: 1,
		Icon:        "Puzzle",
	},
}

var defaultModules = []Module{
	{Key: "pipeline", Title: "Pipeline & Tarefas", Price: 1200, Sprints: 1, Sectors: []string{"servicos", "tecnologia", "consultoria"}, Interests: []string{"automatizar_processos", "visibilidade"}},
	{Key: "stock", Title: "Produtos & Stock", Price: 1400, Sprints: 1, Sectors: []string{"retalho", "industria", "logistica", "alimentar"}, Interests: []string{"reduzir_custos", "automatizar_processos"}},
	{Key: "encomendas", Title: "Encomendas", Price: 1300, Sprints: 1, Sectors: []string{"retalho", "logistica", "industria", "alimentar"}, Interests: []string{"automatizar_processos", "crescimento"}},
	{Key: "clientes", Title: "Clientes & Equipas", Price: 900, Sprints: 1, Sectors: []string{"servicos", "retalho", "saude", "tecnologia", "consultoria"}, Interests: []string{"visibilidade", "conformidade"}},
	{Key: "rotas", Title: "Rotas & Operações", Price: 1500, Sprints: 1, Sectors: []string{"logistica", "transportes", "alimentar"}, Interests: []string{"reduzir_custos", "automatizar_processos"}},
	{Key: "suporte", Title: "Suporte & Tickets", Price: 1100, Sprints: 1, Sectors: []string{"tecnologia", "servicos", "saude"}, Interests: []string{"automatizar_processos", "visibilidade"}},
	{Key: "dashboards", Title: "Dashboards & KPIs", Price: 800, Sprints: 1, Sectors: []string{"servicos", "retalho", "industria", "saude", "tecnologia", "logistica", "consultoria", "alimentar", "construcao", "educacao"}, Interests: []string{"visibilidade", "crescimento"}},
	{Key: "integracoes", Title: "Integrações (APIs)", Price: 1600, Sprints: 1, Sectors: []string{"tecnologia", "logistica", "industria"}, Interests: []string{"automatizar_processos", "crescimento"}},
	{Key: "ia_docs", Title: "IA — Leitura de Docs", Price: 2000, Sprints: 1, Sectors: []string{"servicos", "saude", "consultoria", "juridico"}, Interests: []string{"automatizar_processos", "reduzir_custos"}},
	{Key: "ia_assist", Title: "IA — Assistente Interno", Price: 2200, Sprints: 1, Sectors: []string{"servicos", "tecnologia", "consultoria", "saude"}, Interests: []string{"automatizar_processos", "visibilidade"}},
	{Key: "ia_triagem", Title: "IA — Triagem & Resumos", Price: 1800, Sprints: 1, Sectors: []string{"saude", "servicos", "consultoria", "juridico"}, Interests: []string{"automatizar_processos", "reduzir_custos"}},
	{Key: "financeiro", Title: "Módulo Financeiro", Price: 1400, Sprints: 1, Sectors: []string{"servicos", "retalho", "industria", "consultoria"}, Interests: []string{"visibilidade", "conformidade", "reduzir_custos"}},
	{Key: "rh", Title: "Recursos Humanos", Price: 1200, Sprints: 1, Sectors: []string{"servicos", "industria", "saude", "educacao"}, Interests: []string{"conformidade", "visibilidade"}},
}

var defaultSectors = []ChoiceOption{
	{Value: "retalho", Label: "Retalho"},
	{Value: "logistica", Label: "Logística"},
	{Value: "transportes", Label: "Transportes"},
	{Value: "industria", Label: "Indústria"},
	{Value: "servicos", Label: "Serviços"},
	{Value: "saude", Label: "Saúde"},
	{Value: "tecnologia", Label: "Tecnologia"},
	{Value: "consultoria", Label: "Consultoria"},
	{Value: "juridico", Label: "Jurídico"},
	{Value: "alimentar", Label: "Alimentar"},
	{Value: "construcao", Label: "Construção"},
	{Value: "educacao", Label: "Educação"},
	{Value: "outro", Label: "Outro"},
}

var defaultEmployeeRanges = []RangeOption{
	{Value: "1-10", Label: "1 – 10", Multiplier: 1.0},
	{Value: "11-50", Label: "11 – 50", Multiplier: 1.15},
	{Value: "51-200", Label: "51 – 200", Multiplier: 1.3},
	{Value: "201-500", Label: "201 – 500", Multiplier: 1.5},
	{Value: "500+", Label: "500+", Multiplier: 1.8},
}

var defaultRevenueRanges = []RangeOption{
	{Value: "ate_100k", Label: "Até 100 000 €", Multiplier: 1.0},
	{Value: "100k_500k", Label: "100 000 – 500 000 €", Multiplier: 1.05},
	{Value: "500k_1m", Label: "500 000 – 1 000 000 €", Multiplier: 1.1},
	{Value: "1m_5m", Label: "1 000 000 – 5 000 000 €", Multiplier: 1.2},
	{Value: "5m_plus", Label: "5 000 000+ €", Multiplier: 1.35},
}

var defaultInterests = []ChoiceOption{
	{Value: "reduzir_custos", Label: "Reduzir custos operacionais"},
	{Value: "automatizar_processos", Label: "Automatizar processos"},
	{Value: "visibilidade", Label: "Visibilidade / Dashboards"},
	{Value: "conformidade", Label: "Conformidade / Compliance"},
	{Value: "crescimento", Label: "Suportar crescimento"},
}

var defaultDepartments = []ChoiceOption{
	{Value: "financeiro", Label: "Financeiro"},
	{Value: "comercial", Label: "Comercial"},
	{Value: "operacoes", Label: "Operações"},
	{Value: "rh", Label: "Recursos Humanos"},
	{Value: "logistica", Label: "Logística"},
	{Value: "it", Label: "IT / Tecnologia"},
	{Value: "producao", Label: "Produção"},
	{Value: "qualidade", Label: "Qualidade"},
}

// Payment option values.
const (
	Payment100Upfront = "100_upfront"
	Payment5050       = "50_50"
	Payment3Parcelas  = "3_parcelas"
)

var defaultPaymentOptions = []PaymentOption{
	{Value: Payment100Upfront, Label: "100% antecipado", Discount: 0.05},
	{Value: Payment5050, Label: "50% início / 50% entrega", Discount: 0},
	{Value: Payment3Parcelas, Label: "3 parcelas mensais", Discount: -0.03},
}

// DefaultCatalog returns a fresh copy of the shipped reference data. Each call
// allocates new slices so a merged catalog can never leak overrides back into
// the defaults.
func DefaultCatalog() Catalog {
	return Catalog{
		Products:       cloneSlice(defaultProducts),
		Modules:        cloneSlice(defaultModules),
		Sectors:        cloneSlice(defaultSectors),
		EmployeeRanges: cloneSlice(defaultEmployeeRanges),
		RevenueRanges:  cloneSlice(defaultRevenueRanges),
		Interests:      cloneSlice(defaultInterests),
		Departments:    cloneSlice(defaultDepartments),
		PaymentOptions: cloneSlice(defaultPaymentOptions),
	}
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// ProductByKey resolves a product; ok is false for unknown keys.
func (c Catalog) ProductByKey(key string) (Product, bool) {
	for _, p := range c.Products {
		if p.Key == key {
			return p, true
		}
	}
	return Product{}, false
}

// ModuleByKey resolves a module; ok is false for unknown keys.
func (c Catalog) ModuleByKey(key string) (Module, bool) {
	for _, m := range c.Modules {
		if m.Key == key {
			return m, true
		}
	}
	return Module{}, false
}

// SectorLabel returns the display label for a sector value, falling back to
// the raw value for sectors not in the table.
func (c Catalog) SectorLabel(value string) string {
	for _, s := range c.Sectors {
		if s.Value == value {
			return s.Label
		}
	}
	return value
}

// PaymentOptionByValue resolves a payment option; ok is false for unknown values.
func (c Catalog) PaymentOptionByValue(value string) (PaymentOption, bool) {
	for _, p := range c.PaymentOptions {
		if p.Value == value {
			return p, true
		}
	}
	return PaymentOption{}, false
}
