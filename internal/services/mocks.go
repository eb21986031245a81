package services

import (
	"context"

	"github.com/thomas-vilte/gemini-review-action/internal/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockVCSClient struct {
		mock.Mock
	}

	MockAIReviewer struct {
		mock.Mock
	}

	MockOutputWriter struct {
		mock.Mock
	}
)

func (m *MockVCSClient) GetPRDiff(ctx context.Context, prNumber int) (string, error) {
	args := m.Called(ctx, prNumber)
	return args.String(0), args.Error(1)
}

func (m *MockVCSClient) ListTree(ctx context.Context, ref string) ([]string, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVCSClient) GetFileContent(ctx context.Context, path, ref string) (string, error) {
	args := m.Called(ctx, path, ref)
	return args.String(0), args.Error(1)
}

func (m *MockVCSClient) PostReview(ctx context.Context, prNumber int, commitHash, body string) error {
	args := m.Called(ctx, prNumber, commitHash, body)
	return args.Error(0)
}

func (m *MockVCSClient) GetLatestRelease(ctx context.Context, owner, repo string) (string, error) {
	args := m.Called(ctx, owner, repo)
	return args.String(0), args.Error(1)
}

func (m *MockAIReviewer) ReviewChunks(ctx context.Context, cmd models.ReviewCommand, chunks []string) ([]string, error) {
	args := m.Called(ctx, cmd, chunks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAIReviewer) Summarize(ctx context.Context, reviews []string) (string, error) {
	args := m.Called(ctx, reviews)
	return args.String(0), args.Error(1)
}

func (m *MockAIReviewer) Usage() *models.TokenUsage {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.TokenUsage)
}

func (m *MockAIReviewer) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockOutputWriter) WriteOutput(name, value string) error {
	args := m.Called(name, value)
	return args.Error(0)
}

func (m *MockOutputWriter) AppendSummary(markdown string) error {
	args := m.Called(markdown)
	return args.Error(0)
}
