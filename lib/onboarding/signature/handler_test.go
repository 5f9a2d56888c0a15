package signaturehandler

import (
	"bytes"
	"context"
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	filesapimodels "hr-onboarding-backend/models/api/files"
	dbmodels "hr-onboarding-backend/models/db"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStore struct {
	recs      map[string]dbmodels.Signature
	createErr error
}

func (f *fakeStore) Create(rec dbmodels.Signature) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.recs[rec.ApplicantID] = rec
	return "sig1", nil
}

func (f *fakeStore) GetByApplicant(applicantID string) (*dbmodels.Signature, error) {
	rec, ok := f.recs[applicantID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type fakeFiles struct {
	uploads int
	deleted []string
	bodies  map[string][]byte
}

func (f *fakeFiles) Upload(ctx context.Context, info dbmodels.UploadFileInfo, body io.Reader, size int64) (*filesapimodels.FileView, error) {
	f.uploads++
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	f.bodies[info.FileName] = data
	return &filesapimodels.FileView{ID: info.FileName, Url: "http://localhost/api/v1/files/" + info.FileName}, nil
}

func (f *fakeFiles) ReadFile(ctx context.Context, fileID string) ([]byte, *dbmodels.FileStorage, error) {
	return f.bodies[fileID], &dbmodels.FileStorage{Name: fileID}, nil
}

func (f *fakeFiles) GetFile(context.Context, string) (io.ReadCloser, *dbmodels.FileStorage, error) {
	return nil, nil, nil
}
func (f *fakeFiles) DeleteFile(ctx context.Context, fileID string) error {
	f.deleted = append(f.deleted, fileID)
	return nil
}
func (f *fakeFiles) List(string, dbmodels.FileType) ([]filesapimodels.FileView, error) {
	return nil, nil
}
func (f *fakeFiles) MakeSpaceBucket(context.Context, string) error { return nil }

func image(name string) filesapimodels.UploadFile {
	return filesapimodels.UploadFile{FileName: name, ContentType: "image/png", Size: 4, Body: bytes.NewBufferString("\x89PNG")}
}

func TestCapture(t *testing.T) {
	ctx := context.Background()
	files := &fakeFiles{bodies: map[string][]byte{}}
	h := NewInstance(&fakeStore{recs: map[string]dbmodels.Signature{}}, files, "http://localhost")

	view, err := h.Get("a1")
	require.NoError(t, err)
	require.False(t, view.Exists)

	view, err = h.Capture(ctx, "s1", "a1", " Jane Doe ", image("signature.png"))
	require.NoError(t, err)
	require.True(t, view.Exists)
	require.Equal(t, "Jane Doe", view.TypedName)
	require.Equal(t, "http://localhost/api/v1/files/signature.png", view.Url)

	// never recaptured
	_, err = h.Capture(ctx, "s1", "a1", "Jane Doe", image("other.png"))
	require.ErrorIs(t, err, ErrSignatureExists)
	require.Equal(t, 1, files.uploads)

	view, err = h.Get("a1")
	require.NoError(t, err)
	require.True(t, view.Exists)
	require.Equal(t, "http://localhost/api/v1/files/signature.png", view.Url)

	captured, err := h.Load(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", captured.TypedName)
	require.Equal(t, "signature.png", captured.Image.FileName)
	require.Equal(t, []byte("\x89PNG"), captured.Image.Body)

	captured, err = h.Load(ctx, "a2")
	require.NoError(t, err)
	require.Nil(t, captured)
}

func TestCaptureValidation(t *testing.T) {
	ctx := context.Background()
	h := NewInstance(&fakeStore{recs: map[string]dbmodels.Signature{}}, &fakeFiles{bodies: map[string][]byte{}}, "")

	_, err := h.Capture(ctx, "s1", "a1", "  ", image("signature.png"))
	require.ErrorIs(t, err, ErrTypedNameMissing)

	_, err = h.Capture(ctx, "s1", "a1", "Jane Doe", filesapimodels.UploadFile{FileName: "signature.png"})
	require.ErrorIs(t, err, ErrImageRequired)

	_, err = h.Capture(ctx, "s1", "a1", "Jane Doe", image("signature.gif"))
	require.Error(t, err)
}

func TestCaptureStoreFailure(t *testing.T) {
	ctx := context.Background()
	t.Run("concurrent capture", func(t *testing.T) {
		files := &fakeFiles{bodies: map[string][]byte{}}
		store := &fakeStore{recs: map[string]dbmodels.Signature{}, createErr: storageerrors.Wrap(gorm.ErrDuplicatedKey)}
		h := NewInstance(store, files, "")

		_, err := h.Capture(ctx, "s1", "a1", "Jane Doe", image("signature.png"))
		require.ErrorIs(t, err, ErrSignatureExists)
		require.Equal(t, []string{"signature.png"}, files.deleted)
	})
	t.Run("database unavailable", func(t *testing.T) {
		files := &fakeFiles{bodies: map[string][]byte{}}
		store := &fakeStore{recs: map[string]dbmodels.Signature{}, createErr: storageerrors.Wrap(errors.New("connection reset"))}
		h := NewInstance(store, files, "")

		_, err := h.Capture(ctx, "s1", "a1", "Jane Doe", image("signature.png"))
		require.ErrorIs(t, err, storageerrors.ErrStorage)
		require.Equal(t, []string{"signature.png"}, files.deleted)
	})
}
