package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"foodieConsole/internal/modules/restaurants/domain"
	"foodieConsole/internal/shared/normalization"
)

var (
	listKeys       = []string{"restaurants", "items", "results"}
	totalItemsKeys = []string{"totalItems", "totalRestaurants", "total", "count"}
)

func decodeListPage(body io.Reader, query domain.PagedQuery) (*domain.ListPage, error) {
	payload, err := decodePayload(body)
	if err != nil {
		return nil, fmt.Errorf("decode restaurant list: %w", err)
	}
	query = query.Normalize()
	page := &domain.ListPage{Items: []domain.Restaurant{}, CurrentPage: query.Page, TotalPages: 1}

	switch typed := payload.(type) {
	case []any:
		page.Items = restaurantsFromSlice(typed)
		return page, nil
	case map[string]any:
		envelope := normalization.MapFromPayload(typed)
		page.Items = restaurantsFromSlice(listFrom(envelope, typed))
		if current := normalization.AsInt(envelope["currentPage"]); current > 0 {
			page.CurrentPage = current
		}
		switch total := normalization.AsInt(envelope["totalPages"]); {
		case total > 0:
			page.TotalPages = total
		case normalization.HasAny(envelope, totalItemsKeys...):
			page.TotalPages = domain.TotalPagesFor(firstInt(envelope, totalItemsKeys...), query.Limit)
		}
		return page, nil
	default:
		slog.Warn("restaurant list payload unexpected", slog.String("type", fmt.Sprintf("%T", payload)))
		return nil, fmt.Errorf("decode restaurant list: unexpected payload %T", payload)
	}
}

// decodeRestaurant reads a single record. An empty body yields nil without error since
// mutation endpoints do not always echo the record back.
func decodeRestaurant(body io.Reader) (*domain.Restaurant, error) {
	payload, err := decodePayload(body)
	if err != nil {
		return nil, fmt.Errorf("decode restaurant: %w", err)
	}
	if payload == nil {
		return nil, nil
	}
	envelope := normalization.MapFromPayload(payload)
	if envelope == nil {
		return nil, fmt.Errorf("decode restaurant: unexpected payload %T", payload)
	}
	if nested, ok := envelope["restaurant"].(map[string]any); ok {
		envelope = nested
	}
	record := restaurantFromMap(envelope)
	if record.ID == "" && record.Name == "" {
		return nil, nil
	}
	return &record, nil
}

func decodePayload(body io.Reader) (any, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var payload any
	if err := decoder.Decode(&payload); err != nil {
		return nil, err
	}
	slog.Debug("restaurant payload decoded", slog.String("type", fmt.Sprintf("%T", payload)))
	return payload, nil
}

func listFrom(envelope, raw map[string]any) []any {
	for _, candidate := range []map[string]any{envelope, raw} {
		for _, key := range listKeys {
			if items := normalization.AsInterfaceSlice(candidate[key]); items != nil {
				return items
			}
		}
	}
	if items := normalization.AsInterfaceSlice(raw["data"]); items != nil {
		return items
	}
	return nil
}

func restaurantsFromSlice(items []any) []domain.Restaurant {
	result := make([]domain.Restaurant, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		result = append(result, restaurantFromMap(entry))
	}
	return result
}

func restaurantFromMap(entry map[string]any) domain.Restaurant {
	return domain.Restaurant{
		ID:            normalization.FirstText(entry, "_id", "id"),
		Name:          normalization.AsText(entry["name"]),
		Description:   normalization.AsText(entry["description"]),
		Location:      normalization.AsText(entry["location"]),
		ContactNumber: normalization.AsText(entry["contactNumber"]),
		OpeningHours:  normalization.AsText(entry["openingHours"]),
		ImageURL:      normalization.FirstText(entry, "restaurantImageUrl", "imageUrl"),
	}
}

func firstInt(payload map[string]any, keys ...string) int {
	for _, key := range keys {
		if value, ok := payload[key]; ok {
			return normalization.AsInt(value)
		}
	}
	return 0
}
