// Package document assembles the structured text of a commercial proposal:
// header plus six named sections (intro, context, solution, pricing,
// conditions, closing). Build is a pure function; the caller supplies the
// issue time so repeated calls with equal inputs produce identical output.
package document

import (
	"fmt"
	"strings"
	"time"

	"nextops_proposals/internal/domain/entities"
	"nextops_proposals/internal/domain/pricing"
)

// BuildOptions carries everything the builder (and the PDF renderer) needs.
// Items/Total/Sprints come from the pricing calculator for the same product
// and module selection.
type BuildOptions struct {
	Product           string
	Profile           entities.CompanyProfile
	Modules           []string
	Items             []entities.ProposalItem
	Total             float64
	Sprints           int
	ValidUntil        time.Time
	PaymentTermsLabel string
	Notes             string
	IssuedAt          time.Time
}

// Build assembles the proposal document against the given catalog (already
// merged with any settings overlay). The only failure mode is an unknown
// product key; every other lookup degrades leniently, matching the pricing
// calculator.
func Build(c pricing.Catalog, opts BuildOptions) (entities.ProposalDocument, error) {
	productInfo, ok := c.ProductByKey(opts.Product)
	if !ok {
		return entities.ProposalDocument{}, fmt.Errorf("%w: %q", pricing.ErrUnknownProduct, opts.Product)
	}

	sectorLabel := c.SectorLabel(opts.Profile.Sector)
	moduleTitles := moduleTitles(c, opts.Modules)

	return entities.ProposalDocument{
		Header: entities.ProposalDocumentHeader{
			Title:    "Proposta Comercial — " + productInfo.Title,
			Subtitle: "Preparada para " + opts.Profile.CompanyName,
			Date:     FormatDate(opts.IssuedAt),
			RefNIF:   opts.Profile.NIF,
		},
		Intro:      buildIntro(opts.Profile, sectorLabel, productInfo.Title),
		Context:    buildContext(opts.Profile, sectorLabel),
		Solution:   buildSolution(opts.Product, productInfo.Title, moduleTitles, opts.Sprints),
		Pricing:    buildPricingSection(opts.Items, opts.Total, opts.PaymentTermsLabel),
		Conditions: buildConditions(opts.ValidUntil, opts.Sprints),
		Closing:    buildClosing(opts.Profile.CompanyName, opts.Notes),
	}, nil
}

// moduleTitles resolves titles for the selected keys; unknown keys render as
// the raw key rather than disappearing.
func moduleTitles(c pricing.Catalog, keys []string) []string {
	titles := make([]string, 0, len(keys))
	for _, k := range keys {
		if m, ok := c.ModuleByKey(k); ok {
			titles = append(titles, m.Title)
		} else {
			titles = append(titles, k)
		}
	}
	return titles
}

func buildIntro(profile entities.CompanyProfile, sector, productTitle string) string {
	return fmt.Sprintf(`Exmo(a) Senhor(a),

Temos o prazer de apresentar a presente proposta comercial à empresa %s, NIF %s, que atua no setor de %s.

Após análise das necessidades identificadas, propomos a implementação da solução %s, desenhada especificamente para responder aos desafios operacionais da vossa organização e potenciar a eficiência dos processos internos.`,
		profile.CompanyName, profile.NIF, sector, productTitle)
}

func buildContext(profile entities.CompanyProfile, sector string) string {
	depts := ""
	if len(profile.Departments) > 0 {
		depts = fmt.Sprintf("Os departamentos com maior necessidade de intervenção são: %s.", strings.Join(profile.Departments, ", "))
	}

	specifics := ""
	if profile.Specificities != "" {
		specifics = fmt.Sprintf("\n\nForam identificadas as seguintes especificidades: %s", profile.Specificities)
	}

	interest := strings.ReplaceAll(profile.MainInterest, "_", " ")

	return fmt.Sprintf(`CONTEXTO & DIAGNÓSTICO

A %s é uma empresa do setor de %s com %s colaboradores. %s

O interesse principal identificado é: %s.%s`,
		profile.CompanyName, sector, profile.Employees, depts, interest, specifics)
}

func buildSolution(product, productTitle string, moduleTitles []string, sprints int) string {
	if product == pricing.ProductDiagnostico {
		return `SOLUÇÃO PROPOSTA

Propomos a realização de um Diagnóstico Operacional completo, que inclui:
• Mapeamento de processos atuais
• Identificação de 3 gargalos operacionais
• Proposta de 3 automações prioritárias
• Plano de ação detalhado com estimativa de ROI

Este diagnóstico é realizado sem qualquer custo e permite à vossa equipa ter uma visão clara das oportunidades de melhoria.`
	}

	bullets := make([]string, 0, len(moduleTitles))
	for _, t := range moduleTitles {
		bullets = append(bullets, "• "+t)
	}
	modulesList := strings.Join(bullets, "\n")

	return fmt.Sprintf(`SOLUÇÃO PROPOSTA

Propomos a implementação da solução %s, organizada por sprints de implementação progressiva. A solução inclui:

%s

A implementação está estimada em %d sprint(s), com acompanhamento contínuo e formação da equipa ao longo de todo o processo. Cada sprint inclui configuração, testes e validação antes de avançar para o próximo.`,
		productTitle, modulesList, sprints)
}

func buildPricingSection(items []entities.ProposalItem, total float64, paymentTermsLabel string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("• %s: %dx %s = %s",
			it.Description, it.Quantity, FormatCurrency(it.UnitPrice), FormatCurrency(it.Total)))
	}

	return fmt.Sprintf(`INVESTIMENTO

%s

TOTAL: %s

Condições de pagamento: %s`,
		strings.Join(lines, "\n"), FormatCurrency(total), paymentTermsLabel)
}

func buildConditions(validUntil time.Time, sprints int) string {
	return fmt.Sprintf(`CONDIÇÕES GERAIS

• Esta proposta é válida até %s.
• O prazo estimado de implementação é de %d sprint(s) (semanas).
• Inclui suporte técnico durante 30 dias após conclusão.
• Formação de utilizadores incluída.
• Todas as configurações são realizadas de acordo com as melhores práticas de segurança e RGPD.
• Os valores apresentados não incluem IVA à taxa legal em vigor (23%%).`,
		FormatDate(validUntil), sprints)
}

func buildClosing(companyName, notes string) string {
	notesBlock := ""
	if notes != "" {
		notesBlock = fmt.Sprintf("\nNotas adicionais: %s\n", notes)
	}

	return fmt.Sprintf(`%s
Ficamos inteiramente ao dispor para esclarecer qualquer questão e agendar uma reunião de apresentação detalhada.

Agradecemos a confiança depositada na NextOps e estamos empenhados em contribuir para o sucesso operacional da %s.

Com os melhores cumprimentos,
Equipa NextOps
info@nextops.pt | www.nextops.pt`,
		notesBlock, companyName)
}
