package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the mock provider.
type MockResponse struct {
	Content json.RawMessage
	Err     error
}

// MockProvider returns canned responses in FIFO order and records every
// request it receives. Used in tests and with KANAFLASH_LLM_PROVIDER=mock.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []Request
}

// NewMockProvider creates a mock provider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Enqueue appends a canned response to the queue.
func (p *MockProvider) Enqueue(resp MockResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responses = append(p.responses, resp)
}

func (p *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, req)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(p.responses) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	resp := p.responses[0]
	p.responses = p.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	if req.Schema != nil {
		if err := validateResponse(req.Schema, resp.Content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content: resp.Content,
		Usage: Usage{
			InputTokens:  10,
			OutputTokens: 20,
			TotalTokens:  30,
		},
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (p *MockProvider) ModelID() string {
	return "mock"
}

// CallCount returns the number of requests received so far.
func (p *MockProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

// Calls returns a copy of all requests received so far.
func (p *MockProvider) Calls() []Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Request, len(p.calls))
	copy(out, p.calls)
	return out
}
