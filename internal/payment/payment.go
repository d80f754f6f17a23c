// Package payment wraps the Toss Payments confirmation API.
package payment

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lexqna/lexqna/pkg/clients"
)

var (
	ErrConfirmRejected  = errors.New("payment confirmation rejected")
	ErrAmountMismatch   = errors.New("confirmed amount differs from requested amount")
	ErrGatewayUnhealthy = errors.New("payment gateway unavailable")
)

type httpClient interface {
	Post(url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

type Client struct {
	client    httpClient
	address   string
	secretKey string
}

func NewClient(address, secretKey string) *Client {
	return &Client{
		client:    clients.NewHTTPClient(),
		address:   address,
		secretKey: secretKey,
	}
}

type confirmRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

type confirmResponse struct {
	PaymentKey  string `json:"paymentKey"`
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"totalAmount"`
}

// Confirmation is the subset of the gateway response the service keys on.
type Confirmation struct {
	PaymentKey string
	OrderID    string
	Amount     int64
}

// Confirm finalizes an authorized payment. The secret key goes in a
// Basic auth header with an empty password, as the gateway requires.
func (c *Client) Confirm(paymentKey, orderID string, amount int64) (*Confirmation, error) {
	body, err := json.Marshal(confirmRequest{
		PaymentKey: paymentKey,
		OrderID:    orderID,
		Amount:     amount,
	})
	if err != nil {
		return nil, err
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(c.secretKey + ":"))
	headers := http.Header{}
	headers.Set("Authorization", "Basic "+credentials)
	headers.Set("Content-Type", "application/json")

	url := fmt.Sprintf("%s/v1/payments/confirm", c.address)
	statusCode, respBody, err := c.client.Post(url, headers, body)
	if err != nil {
		return nil, errors.Join(ErrGatewayUnhealthy, err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrConfirmRejected, statusCode, respBody)
	}

	var resp confirmResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, err
	}
	if resp.TotalAmount != amount {
		return nil, ErrAmountMismatch
	}

	return &Confirmation{
		PaymentKey: resp.PaymentKey,
		OrderID:    resp.OrderID,
		Amount:     resp.TotalAmount,
	}, nil
}

// SetClient replaces the transport, used by tests.
func (c *Client) SetClient(client httpClient) {
	c.client = client
}
