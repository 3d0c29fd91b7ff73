package entities

import "time"

// ProposalStatus represents the lifecycle of a commercial proposal.
//
// Domain notes:
//   - Proposals are created as drafts, sent to the client, then accepted or refused.
//   - Accepting a proposal may attach a checkout link for the setup payment.

type ProposalStatus string

const (
	ProposalStatusRascunho ProposalStatus = "rascunho"
	ProposalStatusEnviada  ProposalStatus = "enviada"
	ProposalStatusAceite   ProposalStatus = "aceite"
	ProposalStatusRecusada ProposalStatus = "recusada"
)

// CompanyProfile is the subject of a proposal. It has no identity of its own;
// it is owned by the proposal that embeds it.
type CompanyProfile struct {
	CompanyName   string   `json:"company_name"`
	Email         string   `json:"email"`
	NIF           string   `json:"nif"`
	Sector        string   `json:"sector"`
	CapitalSocial string   `json:"capital_social,omitempty"`
	Employees     string   `json:"employees"`
	AnnualRevenue string   `json:"annual_revenue"`
	Departments   []string `json:"departments,omitempty"`
	Specificities string   `json:"specificities,omitempty"`
	MainInterest  string   `json:"main_interest"`
}

// ProposalItem is one priced row of a proposal. Items are regenerated as a whole
// on every pricing recomputation; they are never edited in place.
//
// UnitPrice is signed: payment-term adjustment lines carry a negative value.
type ProposalItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// PricingResult is the derived output of the pricing calculator. It is not
// persisted on its own; the proposal snapshots its fields.
type PricingResult struct {
	Items   []ProposalItem `json:"items"`
	Total   float64        `json:"total"`
	Sprints int            `json:"sprints"`
}

// Proposal is the commercial proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Total and item values are whole currency units (the pricing engine rounds
//     per line); stored as numbers.
type Proposal struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Product      string         `json:"product"`
	Profile      CompanyProfile `json:"company_profile"`
	Modules      []string       `json:"modules,omitempty"`
	PaymentTerms string         `json:"payment_terms"`
	Items        []ProposalItem `json:"items"`
	Total        float64        `json:"total"`
	Sprints      int            `json:"sprints"`
	Status       ProposalStatus `json:"status"`
	ValidUntil   time.Time      `json:"valid_until"`
	Notes        string         `json:"notes,omitempty"`
	CheckoutURL  string         `json:"checkout_url,omitempty"`
	CreatedBy    string         `json:"created_by,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ProposalDocument is the structured text output of the document builder.
// The PDF renderer consumes it together with the raw proposal (the renderer
// re-derives the pricing grid from the items rather than parsing prose).
type ProposalDocument struct {
	Header     ProposalDocumentHeader `json:"header"`
	Intro      string                 `json:"intro"`
	Context    string                 `json:"context"`
	Solution   string                 `json:"solution"`
	Pricing    string                 `json:"pricing"`
	Conditions string                 `json:"conditions"`
	Closing    string                 `json:"closing"`
}

type ProposalDocumentHeader struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Date     string `json:"date"`
	RefNIF   string `json:"ref_nif"`
}
