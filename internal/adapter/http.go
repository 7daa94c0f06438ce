package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/internal/utils"
	"github.com/MKhiriev/go-app-scaffold/models"
	"github.com/go-resty/resty/v2"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient
	source ConfigSource

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. The base URL and request timeout are taken from the
// current snapshot of source; the bearer token is re-read from source on
// every request.
//
// Returns an error if the configured API URL is empty or cannot be parsed as
// a valid URL.
func NewHTTPBackendAdapter(source ConfigSource, logger *logger.Logger) (BackendAdapter, error) {
	cfg := source.Snapshot()

	baseURL, err := normalizeBaseURL(cfg.Web.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Web.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpBackendAdapter{client: client, source: source, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request builds an authenticated request bound to ctx.
func (h *httpBackendAdapter) request(ctx context.Context) *resty.Request {
	cfg := h.source.Snapshot()
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(cfg.WebAPIToken())
}

// GetUsers implements [BackendAdapter].
func (h *httpBackendAdapter) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.request(ctx).
		SetResult(&users).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("get users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Int("count", len(users)).Msg("users fetched from api")
	return users, nil
}

// GetItems implements [BackendAdapter].
func (h *httpBackendAdapter) GetItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item

	resp, err := h.request(ctx).
		SetResult(&items).
		Get("/api/items")
	if err != nil {
		return nil, fmt.Errorf("get items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Int("count", len(items)).Msg("items fetched from api")
	return items, nil
}
