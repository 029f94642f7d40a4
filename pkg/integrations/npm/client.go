package npm

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/pubdate/pkg/errors"
	"github.com/matzehuels/pubdate/pkg/integrations"
)

// DefaultURL is the public npm registry.
const DefaultURL = "https://registry.npmjs.com"

// Keys of the "time" object that are document timestamps, not versions.
var documentTimeKeys = []string{"created", "modified"}

// Client looks up publish dates in an npm-compatible registry.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a client for the registry at baseURL.
// An empty baseURL selects DefaultURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		Client: integrations.NewClient(map[string]string{
			"Accept":     "application/json",
			"User-Agent": integrations.UserAgent(),
		}),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// BaseURL returns the registry root the client queries.
func (c *Client) BaseURL() string { return c.baseURL }

// PackageURL returns the document URL for name. Scoped names are escaped as
// a single path segment ("@scope%2Fpkg").
func (c *Client) PackageURL(name string) string {
	return c.baseURL + "/" + url.PathEscape(name)
}

// VersionNotFoundError reports that the registry has no publish date for the
// requested version. Available lists the versions it does know, sorted.
type VersionNotFoundError struct {
	Name      string
	Version   string
	Available []string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("could not find publish date for package %s, version %s; available versions: %s",
		e.Name, e.Version, strings.Join(e.Available, ", "))
}

// Code returns the error code for this error type.
func (e *VersionNotFoundError) Code() errors.Code {
	return errors.ErrCodeVersionNotFound
}

// PublishTime returns the instant version of name was published, in the
// offset the registry reported it in.
func (c *Client) PublishTime(ctx context.Context, name, version string) (time.Time, error) {
	times, err := c.Times(ctx, name)
	if err != nil {
		return time.Time{}, err
	}

	raw, ok := times[version]
	if !ok || slices.Contains(documentTimeKeys, version) {
		return time.Time{}, &VersionNotFoundError{
			Name:      name,
			Version:   version,
			Available: versionKeys(times),
		}
	}

	published, err := ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeInvalidTimestamp, err, "%s@%s", name, version)
	}
	return published, nil
}

// Times fetches the raw "time" object of a package document.
func (c *Client) Times(ctx context.Context, name string) (map[string]string, error) {
	var doc packageDocument
	err := c.Get(ctx, c.PackageURL(name), &doc)
	switch {
	case err == nil:
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return nil, err
	case stderrors.Is(err, integrations.ErrNotFound):
		return nil, errors.Wrap(errors.ErrCodePackageNotFound, err, "npm package %s", name)
	case stderrors.Is(err, integrations.ErrInvalidResponse):
		return nil, errors.Wrap(errors.ErrCodeInvalidResponse, err, "npm package %s", name)
	default:
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "npm package %s", name)
	}

	if doc.Time == nil {
		return nil, errors.New(errors.ErrCodeInvalidResponse, "npm package %s: response has no \"time\" field", name)
	}
	return doc.Time, nil
}

// ParseTimestamp parses an ISO 8601 timestamp with optional fractional
// seconds and a "Z" or ±HH:MM offset, keeping the offset.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func versionKeys(times map[string]string) []string {
	keys := make([]string, 0, len(times))
	for k := range times {
		if !slices.Contains(documentTimeKeys, k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

type packageDocument struct {
	Name string            `json:"name"`
	Time map[string]string `json:"time"`
}
