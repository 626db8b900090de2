// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/models"
)

const defaultRequestTimeout = 15 * time.Second

// Config configures [NewHTTPCatalogAdapter].
type Config struct {
	// HTTPAddress is the server address; "host:port" implies http://.
	HTTPAddress string

	// RequestTimeout bounds every request; zero means 15s.
	RequestTimeout time.Duration
}

type httpCatalogAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs an HTTP implementation of
// [CatalogAdapter]. It fails with [ErrInvalidAddress] when cfg.HTTPAddress
// is empty or not a valid URL.
func NewHTTPCatalogAdapter(cfg Config, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpCatalogAdapter{client: client, logger: logger}, nil
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

func (h *httpCatalogAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCatalogAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpCatalogAdapter) SignUp(ctx context.Context, req models.SignUpRequest) (string, error) {
	return h.authenticate(ctx, "/api/signup", req)
}

func (h *httpCatalogAdapter) SignIn(ctx context.Context, req models.SignInRequest) (string, error) {
	return h.authenticate(ctx, "/api/signin", req)
}

func (h *httpCatalogAdapter) authenticate(ctx context.Context, path string, body any) (string, error) {
	var tokenResp models.TokenResponse

	resp, err := h.request(ctx).
		SetBody(body).
		SetResult(&tokenResp).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := tokenResp.AccessToken
	if token == "" {
		if token, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return "", fmt.Errorf("%s parse bearer token: %w", path, err)
		}
	}

	h.SetToken(token)
	h.logger.Debug().Str("path", path).Msg("catalog token stored")

	return token, nil
}

func (h *httpCatalogAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := h.do(h.authedRequest(ctx).SetResult(&user), http.MethodGet, "/api/users/me")
	return user, err
}

func (h *httpCatalogAdapter) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User
	err := h.do(h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetResult(&user), http.MethodGet, "/api/users/{id}")
	return user, err
}

func (h *httpCatalogAdapter) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	var user models.User
	err := h.do(h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetBody(req).
		SetResult(&user), http.MethodPut, "/api/users/{id}")
	return user, err
}

func (h *httpCatalogAdapter) ListMovies(ctx context.Context, query models.MoviesQuery) (models.MoviesPage, error) {
	params, err := encodeMoviesQuery(query)
	if err != nil {
		return models.MoviesPage{}, err
	}

	var page models.MoviesPage
	err = h.do(h.authedRequest(ctx).
		SetQueryParamsFromValues(params).
		SetResult(&page), http.MethodGet, "/api/movies")
	return page, err
}

func (h *httpCatalogAdapter) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	var movie models.Movie
	err := h.do(h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(movieID, 10)).
		SetResult(&movie), http.MethodGet, "/api/movies/{id}")
	return movie, err
}

func (h *httpCatalogAdapter) CreateMovie(ctx context.Context, req models.CreateMovieRequest) (models.Movie, error) {
	var movie models.Movie
	err := h.do(h.authedRequest(ctx).
		SetBody(req).
		SetResult(&movie), http.MethodPost, "/api/movies")
	return movie, err
}

func (h *httpCatalogAdapter) UpdateMovie(ctx context.Context, movieID int64, req models.UpdateMovieRequest) (models.Movie, error) {
	var movie models.Movie
	err := h.do(h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(movieID, 10)).
		SetBody(req).
		SetResult(&movie), http.MethodPut, "/api/movies/{id}")
	return movie, err
}

func (h *httpCatalogAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}

	var status models.HealthStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.HealthStatus{}, fmt.Errorf("decode health response: %w", err)
	}
	if resp.StatusCode() == http.StatusServiceUnavailable {
		return status, fmt.Errorf("%w: database is %s", ErrServiceUnavailable, status.Database)
	}

	return status, mapHTTPError(resp)
}

func (h *httpCatalogAdapter) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	return mapHTTPError(resp)
}

// request returns a request that decodes [models.APIError] bodies.
func (h *httpCatalogAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetError(&models.APIError{})
}

func (h *httpCatalogAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// encodeMoviesQuery renders query the way GET /api/movies parses it;
// rating is sent as a JSON array.
func encodeMoviesQuery(query models.MoviesQuery) (url.Values, error) {
	params := url.Values{}

	setInt := func(name string, v *int) {
		if v != nil {
			params.Set(name, strconv.Itoa(*v))
		}
	}
	setInt("limit", query.Limit)
	setInt("offset", query.Offset)
	setInt("publishingYear", query.PublishingYear)

	if query.Genre != "" {
		params.Set("genre", query.Genre)
	}
	if query.PublishingCountry != "" {
		params.Set("publishingCountry", query.PublishingCountry)
	}
	if len(query.Rating) > 0 {
		rating, err := json.Marshal(query.Rating)
		if err != nil {
			return nil, fmt.Errorf("encode rating: %w", err)
		}
		params.Set("rating", string(rating))
	}
	if query.SortingBy != "" {
		params.Set("sortingBy", string(query.SortingBy))
	}
	if query.SortingDirection != "" {
		params.Set("sortingDirection", string(query.SortingDirection))
	}

	return params, nil
}
