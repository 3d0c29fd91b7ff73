package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"nextops_proposals/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates Checkout Pro preferences for accepted proposals.
// The preference init point is what gets stored on the proposal as its
// checkout URL.
type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, proposalID string, title string, amount float64) (checkoutURL string, preferenceID string, err error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		url := fmt.Sprintf("https://sandbox.mercadopago.test/checkout/start?pref_id=%s", id)
		log.Printf("[payment][gateway] mock checkout created proposal_id=%s preference_id=%s", proposalID, id)
		return url, id, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] checkout create start proposal_id=%s amount=%.2f", proposalID, amount)

	resp, err := g.client.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         proposalID,
				Title:      title,
				Quantity:   1,
				UnitPrice:  amount,
				CurrencyID: getenvDefault("MERCADOPAGO_CURRENCY", "BRL"),
			},
		},
		ExternalReference: proposalID,
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", err
	}
	log.Printf("[payment][gateway] checkout create success proposal_id=%s preference_id=%s", proposalID, resp.ID)

	return resp.InitPoint, resp.ID, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
