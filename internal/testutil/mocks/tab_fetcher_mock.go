package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thaivocab/thaivocab/internal/sheets"
)

// MockTabFetcher is a mock implementation of deck.TabFetcher.
type MockTabFetcher struct {
	mock.Mock
}

func (m *MockTabFetcher) FetchTab(ctx context.Context, sheetID, tab string) ([]sheets.Row, error) {
	args := m.Called(ctx, sheetID, tab)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sheets.Row), args.Error(1)
}
