package apiclient

import (
	"context"
	"encoding/json"
	"hr-onboarding-backend/lib/onboarding/wizard"
	"hr-onboarding-backend/models"
	apimodels "hr-onboarding-backend/models/api"
	onboardingapimodels "hr-onboarding-backend/models/api/onboarding"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var _ wizard.DocumentAPI = (*Client)(nil)

type staticToken string

func (s staticToken) Token() (string, error) {
	if s == "" {
		return "", wizard.ErrNotAuthenticated
	}
	return string(s), nil
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestDocumentRequests(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		writeJSON(t, w, http.StatusOK, apimodels.NewResponse(onboardingapimodels.DocumentView{
			DocumentType:   models.DocDirectDeposit,
			DocumentStatus: models.DocumentOnTrack,
			Payload:        json.RawMessage(`{"bankName":"First Bank"}`),
			DocumentUrl:    "http://localhost/api/v1/files/f1",
		}))
	}))
	defer server.Close()
	client := New(server.URL+"/", staticToken("tkn"))
	ctx := context.Background()

	view, err := client.SaveDocument(ctx, models.DocDirectDeposit, json.RawMessage(`{"bankName":"First Bank"}`))
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/api/v1/onboarding/documents/direct-deposits/add-document", gotPath)
	require.Equal(t, "Bearer tkn", gotAuth)
	require.JSONEq(t, `{"bankName":"First Bank"}`, string(gotBody))
	require.Equal(t, models.DocumentOnTrack, view.DocumentStatus)
	require.Equal(t, "http://localhost/api/v1/files/f1", view.DocumentUrl)

	_, err = client.EditDocument(ctx, models.DocDirectDeposit, json.RawMessage(`{}`))
	require.NoError(t, err)
	require.Equal(t, http.MethodPatch, gotMethod)
	require.Equal(t, "/api/v1/onboarding/documents/direct-deposits/edit-info", gotPath)

	_, err = client.SubmitDocument(ctx, models.DocDirectDeposit, models.AgreementAgree)
	require.NoError(t, err)
	require.Equal(t, "/api/v1/onboarding/documents/direct-deposits/submit-document", gotPath)
	require.JSONEq(t, `{"agreement":"AGREE"}`, string(gotBody))

	_, err = client.GetDocument(ctx, models.DocDirectDeposit)
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, gotMethod)
	require.Equal(t, "/api/v1/onboarding/documents/direct-deposits/retrieve-document", gotPath)
}

func TestErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("message from the body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusConflict, apimodels.NewError("signature is required"))
		}))
		defer server.Close()
		_, err := New(server.URL, staticToken("tkn")).SubmitDocument(ctx, models.DocCodeOfConduct, models.AgreementAgree)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.Status)
		require.Equal(t, "signature is required", apiErr.Error())
	})
	t.Run("fallback message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()
		_, err := New(server.URL, staticToken("tkn")).GetDocument(ctx, models.DocPersonalInfo)
		require.EqualError(t, err, "Something went wrong, please try again")
	})
	t.Run("not authenticated", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()
		_, err := New(server.URL, staticToken("")).GetDocument(ctx, models.DocPersonalInfo)
		require.True(t, errors.Is(err, wizard.ErrNotAuthenticated))
		require.Zero(t, calls)
	})
	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)
		_, err := New(server.URL, staticToken("tkn"), WithTimeout(50*time.Millisecond)).GetDocument(ctx, models.DocPersonalInfo)
		require.EqualError(t, err, "Something went wrong, please try again")
	})
}

func TestCaptureSignature(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/onboarding/signature", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "Jane Doe", r.FormValue("typed_name"))
		file, header, err := r.FormFile("signature")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "signature.png", header.Filename)
		writeJSON(t, w, http.StatusOK, apimodels.NewResponse(onboardingapimodels.SignatureView{
			Exists:    true,
			Url:       "http://localhost/api/v1/files/sig1",
			TypedName: "Jane Doe",
		}))
	}))
	defer server.Close()

	view, err := New(server.URL, staticToken("tkn")).CaptureSignature(context.Background(), []byte("png"), "signature.png", "Jane Doe")
	require.NoError(t, err)
	require.True(t, view.Exists)
	require.Equal(t, "http://localhost/api/v1/files/sig1", view.Url)
}
