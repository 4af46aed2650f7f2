package infrastructure

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"foodieConsole/internal/modules/restaurants/application/port"
	"foodieConsole/internal/modules/restaurants/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *RestaurantHTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	rest := NewRESTClient(server.URL, time.Second, nil).WithToken("secret")
	return NewRestaurantHTTPClient(rest, time.Second)
}

func sampleDraft() domain.Draft {
	return domain.Draft{
		Name:          " Pizza Hut ",
		Description:   "Pizza",
		Location:      "Main St",
		ContactNumber: "0123456789",
		OpeningHours:  "9-5",
	}
}

func TestListRestaurants_SendsPagingAndDecodesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/api/v1/restaurant/getAllRestaurants" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Fatalf("expected page=2, got %s", got)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Fatalf("expected limit=10, got %s", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Fatalf("expected bearer token, got %q", got)
		}
		_, _ = io.WriteString(w, `{"restaurants":[{"_id":"r-1","name":"Pizza Hut","contactNumber":5551234}],"currentPage":2,"totalPages":3}`)
	})

	page, err := client.ListRestaurants(context.Background(), domain.PagedQuery{Page: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.CurrentPage != 2 || page.TotalPages != 3 {
		t.Fatalf("unexpected pagination %+v", page)
	}
	if len(page.Items) != 1 || page.Items[0].ID != "r-1" {
		t.Fatalf("unexpected items %+v", page.Items)
	}
	if page.Items[0].ContactNumber != "5551234" {
		t.Fatalf("expected numeric contact to be rendered as text, got %q", page.Items[0].ContactNumber)
	}
}

func TestListRestaurants_MapsStatuses(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{status: http.StatusUnauthorized, want: port.ErrForbidden},
		{status: http.StatusForbidden, want: port.ErrForbidden},
		{status: http.StatusNotFound, want: port.ErrNotFound},
		{status: http.StatusInternalServerError, want: port.ErrServer},
		{status: http.StatusBadGateway, want: port.ErrServer},
	}

	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, `{"message":"nope"}`)
			})
			_, err := client.ListRestaurants(context.Background(), domain.PagedQuery{Page: 1})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestListRestaurants_TransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewRestaurantHTTPClient(NewRESTClient(url, time.Second, nil), time.Second)
	_, err := client.ListRestaurants(context.Background(), domain.PagedQuery{Page: 1})
	if !errors.Is(err, port.ErrNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestGetRestaurant_DecodesNestedRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/restaurant/getRestaurantById/r-9" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"restaurant":{"_id":"r-9","name":"Sushi","restaurantImageUrl":"https://img/9.png"}}`)
	})

	restaurant, err := client.GetRestaurant(context.Background(), " r-9 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restaurant.Name != "Sushi" || restaurant.ImageURL != "https://img/9.png" {
		t.Fatalf("unexpected restaurant %+v", restaurant)
	}
}

func TestGetRestaurant_EmptyIDIsNotFound(t *testing.T) {
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Fatal("no request expected")
	})
	if _, err := client.GetRestaurant(context.Background(), "  "); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateRestaurant_SendsMultipartForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/restaurant/createRestaurant" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("name"); got != "Pizza Hut" {
			t.Fatalf("expected trimmed name, got %q", got)
		}
		if got := r.FormValue("contactNumber"); got != "0123456789" {
			t.Fatalf("unexpected contact %q", got)
		}
		file, header, err := r.FormFile(domain.FieldImage)
		if err != nil {
			t.Fatalf("expected image part: %v", err)
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		if header.Filename != "logo.png" || string(content) != "png-bytes" {
			t.Fatalf("unexpected image %s %q", header.Filename, content)
		}
		if got := header.Header.Get("Content-Type"); got != "image/png" {
			t.Fatalf("unexpected image content type %q", got)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"restaurant":{"_id":"new-1","name":"Pizza Hut"}}`)
	})

	draft := sampleDraft()
	draft.Image = &domain.ImageFile{Filename: "logo.png", ContentType: "image/png", Content: []byte("png-bytes")}
	created, err := client.CreateRestaurant(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.ID != "new-1" {
		t.Fatalf("unexpected created record %+v", created)
	}
}

func TestUpdateRestaurant_PatchesTargetAndToleratesEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/v1/restaurant/updateRestaurantById/r-2" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue(domain.FieldImage); got != "https://img/2.png" {
			t.Fatalf("expected image reference to be kept, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
	})

	draft := sampleDraft()
	draft.ImageURL = "https://img/2.png"
	updated, err := client.UpdateRestaurant(context.Background(), "r-2", draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != nil {
		t.Fatalf("expected no echoed record, got %+v", updated)
	}
}

func TestDeleteRestaurant(t *testing.T) {
	var called atomic.Bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
		if r.Method != http.MethodDelete || r.URL.Path != "/api/v1/restaurant/deleteRestaurantById/r-3" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"message":"deleted"}`)
	})

	if err := client.DeleteRestaurant(context.Background(), "r-3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called.Load() {
		t.Fatal("expected delete request")
	}
}

func TestEncodeDraft_SkipsEmptyImage(t *testing.T) {
	body, contentType, err := encodeDraft(sampleDraft())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := req.MultipartForm.Value[domain.FieldImage]; ok {
		t.Fatal("expected empty image to be omitted")
	}
	if len(req.MultipartForm.Value) != 5 {
		t.Fatalf("expected five text fields, got %v", req.MultipartForm.Value)
	}
}
