// Package picsum provides a client for the picsum.photos placeholder-image
// service. It supports fetching a specific image by id, a random image,
// image metadata, and paginated metadata lists, with configurable
// dimensions, grayscale, blur, and output format.
//
// Every failing operation returns one of four error kinds, matchable with
// errors.Is: ErrInvalidRequest, ErrServerError, ErrInvalidResponse, and
// ErrUnexpectedError.
package picsum

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/dleutenegger/picsum-go/internal/common/httpclient"
)

// DefaultBaseURL is the address of the upstream service. Override it with
// WithBaseURL, e.g. to point the client at a test server.
const DefaultBaseURL = "https://picsum.photos"

// picsumIDHeader is the response header carrying the canonical id of a
// served image.
const picsumIDHeader = "picsum-id"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is a handle to the picsum.photos service. It is immutable after
// construction and carries no mutable state, so any number of goroutines
// may share one handle without coordination.
type Client struct {
	rest *httpclient.Client
}

// ClientOption is a function type for configuring client behavior.
type ClientOption func(*clientConfig)

type clientConfig struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL overrides the base URL the client sends requests to.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying HTTP client. Timeouts and
// cancellation are entirely the transport's concern, so this is the place
// to configure them.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client for the picsum.photos service with the given
// options.
func NewClient(opts ...ClientOption) *Client {
	config := clientConfig{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(&config)
	}

	return &Client{
		rest: httpclient.NewClient(config.baseURL, config.httpClient),
	}
}

// GetImage retrieves a specific image by its id, rendered according to
// the given settings.
func (c *Client) GetImage(ctx context.Context, id string, settings *ImageSettings) (*Image, error) {
	path := fmt.Sprintf("/id/%s/%d/%d.%s", id, settings.width, settings.height, settings.format.Ext())
	return c.fetchImage(ctx, path, settings)
}

// GetRandomImage retrieves a random image rendered according to the given
// settings. The id of the image actually served is reported in the
// returned Image.
func (c *Client) GetRandomImage(ctx context.Context, settings *ImageSettings) (*Image, error) {
	path := fmt.Sprintf("/%d/%d.%s", settings.width, settings.height, settings.format.Ext())
	return c.fetchImage(ctx, path, settings)
}

// GetImageDetails retrieves the metadata record for a specific image id.
func (c *Client) GetImageDetails(ctx context.Context, id string) (*ImageDetails, error) {
	resp, err := c.rest.Get(ctx, httpclient.RequestOptions{
		Path: fmt.Sprintf("/id/%s/info", id),
	})
	if err != nil {
		return nil, mapError(err)
	}

	var wire imageDetailsWire
	if err := json.Unmarshal(resp.Body, &wire); err != nil {
		return nil, invalidResponse(err)
	}
	return wire.toDetails()
}

// GetImages retrieves one page of image metadata records. It requests
// exactly the page given; there is no pagination traversal.
func (c *Client) GetImages(ctx context.Context, page uint16, limit uint8) ([]ImageDetails, error) {
	resp, err := c.rest.Get(ctx, httpclient.RequestOptions{
		Path: "/v2/list",
		Query: url.Values{
			"page":  []string{strconv.Itoa(int(page))},
			"limit": []string{strconv.Itoa(int(limit))},
		},
	})
	if err != nil {
		return nil, mapError(err)
	}

	var wires []imageDetailsWire
	if err := json.Unmarshal(resp.Body, &wires); err != nil {
		return nil, invalidResponse(err)
	}

	list := make([]ImageDetails, 0, len(wires))
	for i := range wires {
		details, err := wires[i].toDetails()
		if err != nil {
			return nil, err
		}
		list = append(list, *details)
	}
	return list, nil
}

// fetchImage performs an image request against the given path and
// materializes the Image from the picsum-id header and the raw body. A
// missing header is reported as ErrUnexpectedError, not
// ErrInvalidResponse; that kind is reserved for JSON decode failures.
func (c *Client) fetchImage(ctx context.Context, path string, settings *ImageSettings) (*Image, error) {
	resp, err := c.rest.Get(ctx, httpclient.RequestOptions{
		Path:  path,
		Query: settings.queryValues(),
	})
	if err != nil {
		return nil, mapError(err)
	}

	id := resp.Header.Get(picsumIDHeader)
	if id == "" {
		return nil, ErrUnexpectedError.New("unexpected error: couldn't retrieve picsum-id header")
	}

	return &Image{
		ID:   id,
		Data: resp.Body,
	}, nil
}
