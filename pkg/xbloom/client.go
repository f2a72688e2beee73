/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package xbloom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/mchmarny/bloomctl/pkg/auth"
	"github.com/mchmarny/bloomctl/pkg/defaults"
	"github.com/mchmarny/bloomctl/pkg/errors"
	"github.com/mchmarny/bloomctl/pkg/recipe"
	"github.com/mchmarny/bloomctl/pkg/serializer"
	"github.com/mchmarny/bloomctl/pkg/sharelink"
)

// DefaultBaseURL is the vendor API root.
const DefaultBaseURL = "https://client-api.xbloom.com/"

// shareReferer is required by the public share endpoint.
const shareReferer = "https://" + sharelink.ShareHost + "/"

const userAgent = "bloomctl/1.0"

// Option is a functional option for configuring Client instances.
type Option func(*Client)

// WithBaseURL overrides the API root, primarily for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient supplies a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit overrides the outbound request pacing.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// Client talks to the vendor recipe API. It holds no session state:
// identity is the Credential passed to each authenticated call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a Client with the provided options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		limiter: rate.NewLimiter(rate.Limit(defaults.APIRequestsPerSecond), defaults.APIRequestBurst),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout:   defaults.APIRequestTimeout,
			Transport: serializer.NewDefaultHTTPTransport(),
		}
	}
	return c
}

// Login authenticates with email and password and returns the session
// credential. It does not persist anything; the caller decides whether
// to save the credential.
func (c *Client) Login(ctx context.Context, email, password string) (*auth.Credential, error) {
	form := loginForm{
		InterfaceVersion: interfaceVersion,
		Skey:             appKey,
		PhoneType:        phoneTypeAndroid,
		ClientType:       clientTypeAndroid,
		LanguageType:     languageEnglish,
		Email:            email,
		Password:         password,
		// The backend expects a push registration id; a random one
		// keeps us out of anyone else's notification stream.
		JpushID: uuid.NewString(),
	}

	env, err := c.postEncrypted(ctx, endpointLogin, form)
	if err != nil {
		return nil, err
	}

	if env.Member == nil || env.Member.TableID == 0 {
		return nil, errors.New(errors.ErrCodeAPIError, "login response has no member id")
	}

	if env.Member.Email == "" {
		env.Member.Email = email
	}

	return &auth.Credential{
		MemberID: env.Member.TableID,
		Token:    env.Token,
		Email:    env.Member.Email,
	}, nil
}

// CreateRecipe uploads an already-validated recipe and returns the
// backend's id for it. Callers are responsible for running
// recipe.Validate first; this method only performs the wire conversion.
func (c *Client) CreateRecipe(ctx context.Context, cred *auth.Credential, r *recipe.Recipe) (*CreateResult, error) {
	if !cred.IsValid() {
		return nil, errors.New(errors.ErrCodeUnauthorized, "a valid credential is required to create recipes")
	}

	w := recipe.ToWire(r)

	pourData, err := json.Marshal(w.PourList)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pour schedule: %w", err)
	}

	form := createForm{
		baseForm:            c.newBaseForm(cred),
		TheName:             w.TheName,
		Dose:                w.Dose,
		GrandWater:          w.GrandWater,
		GrinderSize:         w.GrinderSize,
		RPM:                 w.RPM,
		CupType:             w.CupType,
		AdaptedModel:        w.AdaptedModel,
		IsEnableBypassWater: w.IsEnableBypassWater,
		IsSetGrinderSize:    w.IsSetGrinderSize,
		TheColor:            w.TheColor,
		TheSubsetID:         w.TheSubsetID,
		BypassTemp:          w.BypassTemp,
		BypassVolume:        w.BypassVolume,
		SubSetType:          subSetTypeManMade,
		AppPlace:            []int{appPlaceMyRecipes},
		CreateTimeStamp:     time.Now().UnixMilli(),
		IsShortcuts:         isShortcutsOff,
		PourDataJSONStr:     string(pourData),
	}

	env, err := c.postEncrypted(ctx, endpointCreate, form)
	if err != nil {
		return nil, err
	}

	return &CreateResult{TableID: env.TableID, Version: env.TheVersion}, nil
}

// ListRecipes returns the recipes the member has created, one page at a
// time (the backend pages at countPerPage).
func (c *Client) ListRecipes(ctx context.Context, cred *auth.Credential, page int) ([]*recipe.Recipe, error) {
	if !cred.IsValid() {
		return nil, errors.New(errors.ErrCodeUnauthorized, "a valid credential is required to list recipes")
	}
	if page < 1 {
		page = 1
	}

	form := listForm{
		baseForm:     c.newBaseForm(cred),
		PageNumber:   page,
		CountPerPage: 100,
		AdaptedModel: int(recipe.AdaptedModelOriginal),
	}

	env, err := c.postEncrypted(ctx, endpointListCreated, form)
	if err != nil {
		return nil, err
	}

	out := make([]*recipe.Recipe, 0, len(env.List))
	for _, w := range env.List {
		out = append(out, recipe.FromWire(w))
	}
	return out, nil
}

// FetchShared resolves a share token to the recipe it names. The share
// endpoint is public: no credential required.
func (c *Client) FetchShared(ctx context.Context, token sharelink.Token) (*SharedRecipe, error) {
	// Structural token validation before any network use.
	if _, err := sharelink.DecodeToken(token); err != nil {
		return nil, err
	}

	form := shareDetailForm{
		TableIDOfRSA:     token.String(),
		InterfaceVersion: shareInterfaceVersion,
		Skey:             appKey,
	}

	env, err := c.postJSON(ctx, endpointShareDetail, form)
	if err != nil {
		return nil, err
	}

	if env.RecipeVo == nil {
		return nil, errors.NewWithContext(errors.ErrCodeAPIError,
			"share response has no recipe payload",
			map[string]any{"token": token.String()})
	}

	return &SharedRecipe{
		Author: env.ShareMemberName,
		Recipe: recipe.FromWire(env.RecipeVo),
	}, nil
}

func (c *Client) newBaseForm(cred *auth.Credential) baseForm {
	return baseForm{
		InterfaceVersion: interfaceVersion,
		Skey:             appKey,
		PhoneType:        phoneTypeAndroid,
		MemberID:         cred.MemberID,
		ClientType:       clientTypeAndroid,
		LanguageType:     languageEnglish,
		Token:            cred.Token,
	}
}

// postEncrypted sends an RSA-encrypted form to an authenticated
// endpoint: the raw body is the base64 ciphertext string.
func (c *Client) postEncrypted(ctx context.Context, endpoint string, form any) (*envelope, error) {
	body, err := encryptForm(form)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to encrypt request body", err)
	}
	return c.post(ctx, endpoint, strings.NewReader(body), false)
}

// postJSON sends a plain JSON body to a public endpoint.
func (c *Client) postJSON(ctx context.Context, endpoint string, form any) (*envelope, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.post(ctx, endpoint, bytes.NewReader(body), true)
}

func (c *Client) post(ctx context.Context, endpoint string, body io.Reader, public bool) (*envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("request pacing interrupted: %w", err)
	}

	url := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", userAgent)
	if public {
		req.Header.Set("Referer", shareReferer)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeAPIError,
			"request failed", err, map[string]any{"endpoint": endpoint})
	}
	defer resp.Body.Close()

	slog.Debug("api call",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewWithContext(errors.ErrCodeAPIError,
			fmt.Sprintf("unexpected status %s", resp.Status),
			map[string]any{"endpoint": endpoint})
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeAPIError,
			"failed to decode response", err, map[string]any{"endpoint": endpoint})
	}

	if env.Result != resultSuccess {
		msg := env.Info
		if msg == "" {
			msg = "request rejected by backend"
		}
		return nil, errors.NewWithContext(errors.ErrCodeAPIError, msg,
			map[string]any{"endpoint": endpoint, "result": env.Result})
	}

	return &env, nil
}
