package service

import (
	"context"
	"time"

	"studykit/internal/domain"
)

// --- Manual Mocks ---

// MockModelClient
type MockModelClient struct {
	GenerateTextFunc       func(ctx context.Context, req domain.GenerateRequest) (string, error)
	GenerateStructuredFunc func(ctx context.Context, req domain.GenerateRequest, schema *domain.Schema) (string, error)
	StartChatFunc          func(ctx context.Context, cfg domain.ChatConfig) (domain.ChatSession, error)

	GenerateTextCalls       int
	GenerateStructuredCalls int
	StartChatCalls          int
}

func (m *MockModelClient) GenerateText(ctx context.Context, req domain.GenerateRequest) (string, error) {
	m.GenerateTextCalls++
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, req)
	}
	panic("MockModelClient.GenerateTextFunc not implemented")
}

func (m *MockModelClient) GenerateStructured(ctx context.Context, req domain.GenerateRequest, schema *domain.Schema) (string, error) {
	m.GenerateStructuredCalls++
	if m.GenerateStructuredFunc != nil {
		return m.GenerateStructuredFunc(ctx, req, schema)
	}
	panic("MockModelClient.GenerateStructuredFunc not implemented")
}

func (m *MockModelClient) StartChat(ctx context.Context, cfg domain.ChatConfig) (domain.ChatSession, error) {
	m.StartChatCalls++
	if m.StartChatFunc != nil {
		return m.StartChatFunc(ctx, cfg)
	}
	panic("MockModelClient.StartChatFunc not implemented")
}

// MockChatSession
type MockChatSession struct {
	SendMessageFunc func(ctx context.Context, text string) (string, error)
}

func (m *MockChatSession) SendMessage(ctx context.Context, text string) (string, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, text)
	}
	panic("MockChatSession.SendMessageFunc not implemented")
}

// MockCache
type MockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string, expiration time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
	PingFunc   func(ctx context.Context) error
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", domain.ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, expiration)
	}
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

func (m *MockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
