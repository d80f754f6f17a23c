// Package ai talks to the Gemini generateContent API for the legal
// assistant chat.
package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lexqna/lexqna/pkg/clients"
)

var (
	ErrUpstreamUnhealthy = errors.New("ai upstream unavailable")
	ErrEmptyCompletion   = errors.New("ai upstream returned no candidates")
)

const systemPrompt = "당신은 대한민국 부동산 법률 상담을 돕는 AI 어시스턴트입니다. " +
	"전세사기, 임대차보호법, 보증금 반환 등 부동산 법률 질문에 일반적인 정보를 제공하세요. " +
	"구체적인 사건에 대한 법률 자문은 변호사에게 문의하도록 안내하세요."

type httpClient interface {
	Post(url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

type Client struct {
	client  httpClient
	address string
	apiKey  string
}

func NewClient(address, apiKey string) *Client {
	return &Client{
		client:  clients.NewHTTPClient(),
		address: address,
		apiKey:  apiKey,
	}
}

type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends one user message and returns the model's reply text.
func (c *Client) Generate(message string) (string, error) {
	body, err := json.Marshal(generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemPrompt}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: message}}}},
	})
	if err != nil {
		return "", err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("x-goog-api-key", c.apiKey)

	url := fmt.Sprintf("%s/v1beta/models/gemini-2.0-flash:generateContent", c.address)
	statusCode, respBody, err := c.client.Post(url, headers, body)
	if err != nil {
		return "", errors.Join(ErrUpstreamUnhealthy, err)
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUpstreamUnhealthy, statusCode)
	}

	var resp generateResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// SetClient replaces the transport, used by tests.
func (c *Client) SetClient(client httpClient) {
	c.client = client
}
