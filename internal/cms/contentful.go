package cms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/config"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/log"
)

type (
	// Contentful reads content from the Contentful Content Delivery API, or
	// from the Preview API when preview mode is enabled
	Contentful struct {
		httpClient *http.Client
		now        func() time.Time
		baseURL    string
		space      string
		env        string
		token      string
		pageSize   int
	}

	// entry is one Contentful entry with its asset lookup for the page it
	// arrived on
	entry struct {
		fields gjson.Result
		assets map[string]string
		id     string
	}
)

// Content type IDs as modelled in the Contentful space
const (
	TypeCategory        = "category"
	TypeReason          = "reason"
	TypeSolution        = "solution"
	TypeVariant         = "variant"
	TypeGovernanceModel = "governanceModel"
)

const (
	DeliveryBaseURL = "https://cdn.contentful.com"
	PreviewBaseURL  = "https://preview.contentful.com"
	DefaultPageSize = 100
	userAgent       = "Parkmanager-Tool/1.0"
)

var (
	ErrContentfulStatus   = errors.New("contentful returned HTTP error")
	ErrContentfulResponse = errors.New("invalid contentful response")
)

var _ Source = (*Contentful)(nil)

// NewContentful creates a Contentful source. Preview mode selects the
// Preview API host and token unless a base URL overrides the host
func NewContentful(cfg config.ContentfulConfig) *Contentful {
	base := cfg.BaseURL
	token := cfg.AccessToken
	if cfg.Preview {
		token = cfg.PreviewToken
		if base == "" {
			base = PreviewBaseURL
		}
	}
	if base == "" {
		base = DeliveryBaseURL
	}
	env := cfg.Environment
	if env == "" {
		env = config.DefaultContentfulEnvironment
	}

	return &Contentful{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		now:        time.Now,
		baseURL:    strings.TrimSuffix(base, "/"),
		space:      cfg.SpaceID,
		env:        env,
		token:      token,
		pageSize:   DefaultPageSize,
	}
}

// Content fetches every collection for the locale concurrently
func (c *Contentful) Content(
	ctx context.Context, locale string,
) (*api.Content, error) {
	if locale == "" {
		return nil, ErrLocaleRequired
	}

	res := &api.Content{Locale: locale}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := c.entries(ctx, TypeCategory, locale)
		res.Categories = mapEntries(entries, toCategory)
		return err
	})
	g.Go(func() error {
		entries, err := c.entries(ctx, TypeReason, locale)
		res.Reasons = mapEntries(entries, toReason)
		return err
	})
	g.Go(func() error {
		entries, err := c.entries(ctx, TypeSolution, locale)
		res.Solutions = mapEntries(entries, toSolution)
		return err
	})
	g.Go(func() error {
		entries, err := c.entries(ctx, TypeVariant, locale)
		res.Variants = mapEntries(entries, toVariant)
		return err
	})
	g.Go(func() error {
		entries, err := c.entries(ctx, TypeGovernanceModel, locale)
		res.GovernanceModels = mapEntries(entries, toGovernanceModel)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	res.FetchedAt = c.now()
	return res, nil
}

// entries pages through all entries of one content type
func (c *Contentful) entries(
	ctx context.Context, contentType, locale string,
) ([]*entry, error) {
	var res []*entry
	for skip := 0; ; {
		body, err := c.fetchPage(ctx, contentType, locale, skip)
		if err != nil {
			return nil, err
		}

		items := body.Get("items").Array()
		assets := assetURLs(body)
		for _, item := range items {
			res = append(res, &entry{
				id:     item.Get("sys.id").String(),
				fields: item.Get("fields"),
				assets: assets,
			})
		}

		skip += len(items)
		if len(items) == 0 || skip >= int(body.Get("total").Int()) {
			break
		}
	}

	slog.Debug("Fetched content",
		log.ContentType(contentType),
		log.Locale(locale),
		slog.Int("count", len(res)))
	return res, nil
}

func (c *Contentful) fetchPage(
	ctx context.Context, contentType, locale string, skip int,
) (gjson.Result, error) {
	q := url.Values{}
	q.Set("content_type", contentType)
	q.Set("locale", locale)
	q.Set("include", "1")
	q.Set("limit", strconv.Itoa(c.pageSize))
	q.Set("skip", strconv.Itoa(skip))
	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.baseURL, url.PathEscape(c.space), url.PathEscape(c.env), q.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	dur := time.Since(start)
	if err != nil {
		slog.Error("Contentful request failed",
			log.ContentType(contentType),
			slog.Duration("duration", dur),
			log.Error(err))
		return gjson.Result{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, err
	}

	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(data, "message").String()
		slog.Error("Contentful HTTP error",
			log.ContentType(contentType),
			slog.Int("status_code", resp.StatusCode),
			log.ErrorString(msg))
		return gjson.Result{}, fmt.Errorf("%w: HTTP %d",
			ErrContentfulStatus, resp.StatusCode)
	}

	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("%w: %s",
			ErrContentfulResponse, contentType)
	}
	return gjson.ParseBytes(data), nil
}

// assetURLs indexes the linked assets included with a page by ID
func assetURLs(body gjson.Result) map[string]string {
	res := map[string]string{}
	for _, a := range body.Get("includes.Asset").Array() {
		u := a.Get("fields.file.url").String()
		if strings.HasPrefix(u, "//") {
			u = "https:" + u
		}
		res[a.Get("sys.id").String()] = u
	}
	return res
}

func mapEntries[T any](entries []*entry, fn func(*entry) *T) []*T {
	res := make([]*T, 0, len(entries))
	for _, e := range entries {
		res = append(res, fn(e))
	}
	return res
}

func (e *entry) str(name string) string {
	return e.fields.Get(name).String()
}

func (e *entry) order() *int {
	v := e.fields.Get("order")
	if !v.Exists() || v.Type != gjson.Number {
		return nil
	}
	o := int(v.Int())
	return &o
}

// link resolves an entry link field to the linked entry's ID
func (e *entry) link(name string) string {
	return e.fields.Get(name + ".sys.id").String()
}

func (e *entry) links(name string) []string {
	var res []string
	for _, l := range e.fields.Get(name).Array() {
		if id := l.Get("sys.id").String(); id != "" {
			res = append(res, id)
		}
	}
	return res
}

// asset resolves an asset link field to the asset's file URL
func (e *entry) asset(name string) string {
	return e.assets[e.link(name)]
}

func toCategory(e *entry) *api.Category {
	return &api.Category{
		ID:    api.CategoryID(e.id),
		Name:  e.str("name"),
		Order: e.order(),
	}
}

func toReason(e *entry) *api.Reason {
	return &api.Reason{
		ID:       api.ReasonID(e.id),
		Title:    e.str("title"),
		Summary:  e.str("summary"),
		Category: api.CategoryID(e.link("category")),
		Icon:     e.asset("icon"),
		Order:    e.order(),
	}
}

func toSolution(e *entry) *api.Solution {
	return &api.Solution{
		ID:          api.SolutionID(e.id),
		Slug:        e.str("slug"),
		Title:       e.str("title"),
		Summary:     e.str("summary"),
		Description: e.str("description"),
		Benefits:    e.str("benefits"),
		Challenges:  e.str("challenges"),
		Category:    api.CategoryID(e.link("category")),
		Icon:        e.asset("icon"),
		Reasons:     ids[api.ReasonID](e.links("reasons")),
		Variants:    ids[api.VariantID](e.links("variants")),
		Order:       e.order(),
	}
}

func toVariant(e *entry) *api.Variant {
	return &api.Variant{
		ID:           api.VariantID(e.id),
		Solution:     api.SolutionID(e.link("solution")),
		Title:        e.str("title"),
		Summary:      e.str("summary"),
		Description:  e.str("description"),
		Costs:        e.str("costs"),
		Organisation: e.str("organisation"),
		Pros:         e.str("pros"),
		Cons:         e.str("cons"),
		Order:        e.order(),
	}
}

func toGovernanceModel(e *entry) *api.GovernanceModel {
	return &api.GovernanceModel{
		ID:          api.GovernanceModelID(e.id),
		Title:       e.str("title"),
		Summary:     e.str("summary"),
		Description: e.str("description"),
		Pros:        e.str("pros"),
		Cons:        e.str("cons"),
		Order:       e.order(),
	}
}

func ids[T ~string](in []string) []T {
	if len(in) == 0 {
		return nil
	}
	res := make([]T, len(in))
	for i, s := range in {
		res[i] = T(s)
	}
	return res
}
