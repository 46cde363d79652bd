package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateInLocation(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		loc     *time.Location
		want    *time.Time
		wantErr bool
	}{
		{
			name:  "string vazia não gera data",
			input: "",
			loc:   time.UTC,
			want:  nil,
		},
		{
			name:  "data em UTC",
			input: "2024-01-15",
			loc:   time.UTC,
			want:  ptr(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:  "data no fuso configurado",
			input: "2024-01-15",
			loc:   saoPaulo,
			want:  ptr(time.Date(2024, 1, 15, 0, 0, 0, 0, saoPaulo)),
		},
		{
			name:  "fuso nulo usa UTC",
			input: "2024-03-01",
			loc:   nil,
			want:  ptr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:    "formato inválido",
			input:   "15/01/2024",
			loc:     time.UTC,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateInLocation(tt.input, tt.loc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got))
		})
	}
}

func TestStartOfDay(t *testing.T) {
	input := time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), StartOfDay(input, time.UTC))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 63.33, RoundWithTwoDecimalPlace(63.333333))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 1.01, RoundWithTwoDecimalPlace(1.006))
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 0.0, SafeDivide(10, 0))
	assert.Equal(t, 2.5, SafeDivide(5, 2))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 12)
}

func ptr[T any](v T) *T {
	return &v
}
