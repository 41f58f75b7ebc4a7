package contract

import (
	"context"

	"github.com/huangsam/debtspot/schema"
	"github.com/stretchr/testify/mock"
)

// MockMetricSource is a mock implementation of MetricSource for testing.
type MockMetricSource struct {
	mock.Mock
}

var _ MetricSource = &MockMetricSource{} // Compile-time check

// Analyze implements the MetricSource interface.
func (m *MockMetricSource) Analyze(ctx context.Context, path string, content []byte) (*schema.MetricsBundle, error) {
	ret := m.Called(ctx, path, content)
	bundle, _ := ret.Get(0).(*schema.MetricsBundle)
	return bundle, ret.Error(1)
}
