package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hr-onboarding-backend/models"
	onboardingapimodels "hr-onboarding-backend/models/api/onboarding"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	documentsPath = "%s/api/v1/onboarding/documents/%s/%s"
	signaturePath = "%s/api/v1/onboarding/signature"

	genericErrorMessage = "Something went wrong, please try again"
)

// APIError - non 2xx answer of the onboarding api
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// TokenSource - bearer token of the candidate session
type TokenSource interface {
	Token() (string, error)
}

type Option func(c *Client)

// WithTimeout - no timeout is set unless asked for
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

type Client struct {
	host       string
	tokens     TokenSource
	httpClient *http.Client
}

func New(host string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		host:       strings.TrimRight(host, "/"),
		tokens:     tokens,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) GetDocument(ctx context.Context, docType models.DocumentType) (*onboardingapimodels.DocumentView, error) {
	resp := onboardingapimodels.DocumentView{}
	if err := c.documentRequest(ctx, http.MethodGet, docType, "retrieve-document", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SaveDocument(ctx context.Context, docType models.DocumentType, payload json.RawMessage) (*onboardingapimodels.DocumentView, error) {
	resp := onboardingapimodels.DocumentView{}
	if err := c.documentRequest(ctx, http.MethodPost, docType, "add-document", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EditDocument(ctx context.Context, docType models.DocumentType, payload json.RawMessage) (*onboardingapimodels.DocumentView, error) {
	resp := onboardingapimodels.DocumentView{}
	if err := c.documentRequest(ctx, http.MethodPatch, docType, "edit-info", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SubmitDocument(ctx context.Context, docType models.DocumentType, agreement models.Agreement) (*onboardingapimodels.DocumentView, error) {
	body, err := json.Marshal(onboardingapimodels.SubmitRequest{Agreement: agreement})
	if err != nil {
		return nil, err
	}
	resp := onboardingapimodels.DocumentView{}
	if err = c.documentRequest(ctx, http.MethodPatch, docType, "submit-document", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetSignature(ctx context.Context) (*onboardingapimodels.SignatureView, error) {
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(signaturePath, c.host), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	resp := onboardingapimodels.SignatureView{}
	if err = c.sendRequest(r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CaptureSignature(ctx context.Context, image []byte, fileName, typedName string) (*onboardingapimodels.SignatureView, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("typed_name", typedName); err != nil {
		return nil, err
	}
	part, err := writer.CreateFormFile("signature", fileName)
	if err != nil {
		return nil, err
	}
	if _, err = part.Write(image); err != nil {
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf(signaturePath, c.host), body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	r.Header.Set("Content-Type", writer.FormDataContentType())
	resp := onboardingapimodels.SignatureView{}
	if err = c.sendRequest(r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) documentRequest(ctx context.Context, method string, docType models.DocumentType, action string, body []byte, resp interface{}) error {
	uri := fmt.Sprintf(documentsPath, c.host, onboardingapimodels.Slug(docType), action)
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	r, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return c.sendRequest(r, resp)
}

func (c *Client) sendRequest(r *http.Request, resp interface{}) error {
	logger := log.
		WithField("method", r.Method).
		WithField("request", r.URL.Path)
	token, err := c.tokens.Token()
	if err != nil {
		return err
	}
	r.Header.Set("Authorization", "Bearer "+token)
	r.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(r)
	if err != nil {
		logger.WithError(err).Error("onboarding api request failed")
		return &APIError{Message: genericErrorMessage}
	}
	defer response.Body.Close()
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		logger.WithError(err).Error("failed to read onboarding api response")
		return &APIError{Status: response.StatusCode, Message: genericErrorMessage}
	}
	logger = logger.WithField("response_status_code", response.StatusCode)

	result := envelope{}
	decodeErr := json.Unmarshal(responseBody, &result)
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		message := strings.TrimSpace(result.Message)
		if decodeErr != nil || message == "" {
			message = genericErrorMessage
		}
		logger.WithField("response_message", message).Warn("onboarding api returned an error")
		return &APIError{Status: response.StatusCode, Message: message}
	}
	if decodeErr != nil {
		logger.WithError(decodeErr).Error("failed to decode onboarding api response")
		return &APIError{Status: response.StatusCode, Message: genericErrorMessage}
	}
	if resp != nil && len(result.Data) != 0 {
		if err = json.Unmarshal(result.Data, resp); err != nil {
			logger.WithError(err).Error("failed to decode onboarding api response")
			return &APIError{Status: response.StatusCode, Message: genericErrorMessage}
		}
	}
	return nil
}
