package infrastructure

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"foodieConsole/internal/modules/restaurants/application/port"
	"foodieConsole/internal/modules/restaurants/domain"
)

// RestaurantHTTPClient implements RestaurantGateway against the restaurant REST service.
type RestaurantHTTPClient struct {
	rest    *RESTClient
	timeout time.Duration
}

func NewRestaurantHTTPClient(rest *RESTClient, timeout time.Duration) *RestaurantHTTPClient {
	return &RestaurantHTTPClient{rest: rest, timeout: timeoutOrDefault(timeout)}
}

func (c *RestaurantHTTPClient) ListRestaurants(ctx context.Context, query domain.PagedQuery) (*domain.ListPage, error) {
	query = query.Normalize()
	path, err := endpoints.listPathBuilder("")
	if err != nil {
		return nil, err
	}
	slog.Info("restaurant list fetch start", slog.Int("page", query.Page), slog.Int("limit", query.Limit))

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := c.rest.NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		slog.Error("restaurant list request build failed", slog.String("path", path), slog.Any("error", err))
		return nil, err
	}
	req.URL.RawQuery = query.ToURLValues().Encode()

	res, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	return decodeListPage(res.Body, query)
}

func (c *RestaurantHTTPClient) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	path, err := endpoints.detailPathBuilder(id)
	if err != nil {
		return nil, err
	}
	slog.Info("restaurant detail fetch start", slog.String("restaurantId", id))

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := c.rest.NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		slog.Error("restaurant detail request build failed", slog.String("path", path), slog.Any("error", err))
		return nil, err
	}

	res, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	restaurant, err := decodeRestaurant(res.Body)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, port.ErrNotFound
	}
	return restaurant, nil
}

func (c *RestaurantHTTPClient) CreateRestaurant(ctx context.Context, draft domain.Draft) (*domain.Restaurant, error) {
	path, err := endpoints.createPathBuilder("")
	if err != nil {
		return nil, err
	}
	return c.submitDraft(ctx, http.MethodPost, path, draft)
}

func (c *RestaurantHTTPClient) UpdateRestaurant(ctx context.Context, id string, draft domain.Draft) (*domain.Restaurant, error) {
	path, err := endpoints.updatePathBuilder(id)
	if err != nil {
		return nil, err
	}
	return c.submitDraft(ctx, http.MethodPatch, path, draft)
}

func (c *RestaurantHTTPClient) DeleteRestaurant(ctx context.Context, id string) error {
	path, err := endpoints.deletePathBuilder(id)
	if err != nil {
		return err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := c.rest.NewRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		slog.Error("restaurant delete request build failed", slog.String("path", path), slog.Any("error", err))
		return err
	}
	res, err := c.send(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
	return nil
}

func (c *RestaurantHTTPClient) submitDraft(ctx context.Context, method, path string, draft domain.Draft) (*domain.Restaurant, error) {
	body, contentType, err := encodeDraft(draft)
	if err != nil {
		return nil, fmt.Errorf("encode restaurant draft: %w", err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := c.rest.NewRequest(ctx, method, path, body)
	if err != nil {
		slog.Error("restaurant mutation request build failed", slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	res, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	restaurant, err := decodeRestaurant(res.Body)
	if err != nil {
		// The mutation already succeeded remotely.
		slog.Warn("restaurant mutation response unreadable", slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return nil, nil
	}
	return restaurant, nil
}

// send performs req and maps transport failures and non-2xx statuses onto the gateway errors.
func (c *RestaurantHTTPClient) send(req *http.Request) (*http.Response, error) {
	slog.Debug("restaurant request", slog.String("method", req.Method), slog.String("url", req.URL.String()))
	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("restaurant request error", slog.String("method", req.Method), slog.String("url", req.URL.String()), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", port.ErrNetwork, err)
	}
	slog.Debug("restaurant response", slog.Int("status", res.StatusCode), slog.String("url", req.URL.String()))

	if err := statusError(res); err != nil {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		res.Body.Close()
		slog.Error("restaurant request unexpected status", slog.Int("status", res.StatusCode), slog.String("method", req.Method), slog.String("url", req.URL.String()), slog.String("body", strings.TrimSpace(string(body))))
		return nil, err
	}
	return res, nil
}

func statusError(res *http.Response) error {
	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return nil
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return port.ErrForbidden
	case res.StatusCode == http.StatusNotFound:
		return port.ErrNotFound
	default:
		return fmt.Errorf("%w: unexpected response %d", port.ErrServer, res.StatusCode)
	}
}

func (c *RestaurantHTTPClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

// encodeDraft builds the multipart form the service expects. Text fields are always sent;
// the image part is omitted when the draft carries neither a file nor a reference.
func encodeDraft(draft domain.Draft) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, field := range draft.Fields() {
		switch {
		case field.File != nil:
			if err := writeFilePart(writer, field.Name, field.File); err != nil {
				return nil, "", err
			}
		case field.Name == domain.FieldImage && strings.TrimSpace(field.Value) == "":
			continue
		default:
			if err := writer.WriteField(field.Name, strings.TrimSpace(field.Value)); err != nil {
				return nil, "", err
			}
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

func writeFilePart(writer *multipart.Writer, name string, file *domain.ImageFile) error {
	filename := strings.TrimSpace(file.Filename)
	if filename == "" {
		filename = "image"
	}
	contentType := strings.TrimSpace(file.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, name, strings.ReplaceAll(filename, `"`, "")))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = part.Write(file.Content)
	return err
}

var _ port.RestaurantGateway = (*RestaurantHTTPClient)(nil)
