package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRelevantField(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "correlation_id", want: true},
		{key: "status_code", want: true},
		{key: "product_id", want: true},
		{key: "analytics_period", want: true},
		{key: "remote_addr", want: false},
		{key: "user_agent", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, isRelevantField(tt.key))
		})
	}
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
	assert.NotNil(t, ForContext(ctx))
}
