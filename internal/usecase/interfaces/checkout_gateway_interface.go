package interfaces

import "context"

//go:generate mockgen -source=checkout_gateway_interface.go -destination=mocks/checkout_gateway_mock.go -package=mock_interfaces

// ICheckoutGateway abstracts external checkout providers (e.g. Mercado Pago).
//
// When a proposal is accepted the service creates a checkout preference for
// the setup payment and stores the resulting link on the proposal.
type ICheckoutGateway interface {
	CreateCheckout(ctx context.Context, proposalID, title string, amount float64) (checkoutURL string, preferenceID string, err error)
}
