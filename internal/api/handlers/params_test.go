package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathInt64(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": tt.raw})

			got, err := PathInt64(req, "id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryOptionalInt(t *testing.T) {
	v, err := QueryOptionalInt(httptest.NewRequest(http.MethodGet, "/?duration=90", nil), "duration")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 90, *v)

	v, err = QueryOptionalInt(httptest.NewRequest(http.MethodGet, "/", nil), "duration")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = QueryOptionalInt(httptest.NewRequest(http.MethodGet, "/?duration=long", nil), "duration")
	assert.Error(t, err)
}
