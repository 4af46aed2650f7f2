package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

var errGone = errors.New("gone")

func TestErrorMapper_Map(t *testing.T) {
	mapper := NewErrorMapper().
		WithMapping(errGone, http.StatusNotFound, "resource gone").
		WithDefault(http.StatusBadGateway, "upstream failed")

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "nil", err: nil, status: http.StatusOK},
		{name: "wrapped mapping", err: fmt.Errorf("load: %w", errGone), status: http.StatusNotFound},
		{name: "deadline", err: context.DeadlineExceeded, status: http.StatusGatewayTimeout},
		{name: "cancelled", err: context.Canceled, status: http.StatusServiceUnavailable},
		{name: "default", err: errors.New("boom"), status: http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapper.Map(tc.err).Status; got != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, got)
			}
		})
	}
}
