package llm

import (
	"context"
	"sync"
)

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error
	// Fn, si esta definido, reemplaza Response/Err.
	Fn func(ctx context.Context, req CompletionRequest) (string, error)

	mu       sync.Mutex
	requests []CompletionRequest
}

func (m *MockClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.Fn != nil {
		return m.Fn(ctx, req)
	}
	return m.Response, m.Err
}

// Requests devuelve las solicitudes recibidas en orden.
func (m *MockClient) Requests() []CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]CompletionRequest(nil), m.requests...)
}
