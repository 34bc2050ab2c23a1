package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// PathInt64 положительное целое из переменной пути
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path %s: %w", name, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("path %s: must be positive, got %d", name, id)
	}
	return id, nil
}

// QueryOptionalInt необязательный целый query-параметр. Отсутствует - nil
func QueryOptionalInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	return &v, nil
}
