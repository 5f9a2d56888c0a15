package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"hr-onboarding-backend/config"
	"hr-onboarding-backend/db"
	filesdbstorage "hr-onboarding-backend/lib/file-storage/storage"
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	filesapimodels "hr-onboarding-backend/models/api/files"
	dbmodels "hr-onboarding-backend/models/db"
	s3client "hr-onboarding-backend/s3"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Upload(ctx context.Context, info dbmodels.UploadFileInfo, body io.Reader, size int64) (*filesapimodels.FileView, error)
	GetFile(ctx context.Context, fileID string) (body io.ReadCloser, meta *dbmodels.FileStorage, err error)
	ReadFile(ctx context.Context, fileID string) ([]byte, *dbmodels.FileStorage, error)
	DeleteFile(ctx context.Context, fileID string) error
	List(applicantID string, fileType dbmodels.FileType) ([]filesapimodels.FileView, error)
	MakeSpaceBucket(ctx context.Context, spaceID string) error
}

var Instance Provider

var ErrFileNotFound = errors.New("file not found")

func NewHandler() {
	Instance = NewInstance(s3client.NewClient(s3client.Client), filesdbstorage.NewInstance(db.DB),
		config.Conf.S3.BucketName, config.Conf.App.PublicUrl)
}

func NewInstance(objects s3client.Provider, store filesdbstorage.Provider, bucketPrefix, publicUrl string) Provider {
	return &impl{
		objects:      objects,
		store:        store,
		bucketPrefix: bucketPrefix,
		publicUrl:    publicUrl,
	}
}

type impl struct {
	objects      s3client.Provider
	store        filesdbstorage.Provider
	bucketPrefix string
	publicUrl    string
}

func (i impl) Upload(ctx context.Context, info dbmodels.UploadFileInfo, body io.Reader, size int64) (*filesapimodels.FileView, error) {
	logger := log.
		WithField("space_id", info.SpaceID).
		WithField("applicant_id", info.ApplicantID).
		WithField("file_type", info.FileType)
	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectName := uuid.NewString() + strings.ToLower(filepath.Ext(info.FileName))
	err := i.objects.PutObject(ctx, i.getSpaceBucketName(info.SpaceID), objectName, body, size, contentType)
	if err != nil {
		logger.WithError(err).Error("failed to store object")
		return nil, storageerrors.Wrap(errors.Wrap(err, "failed to store file"))
	}
	rec := dbmodels.FileStorage{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: info.SpaceID},
		Name:           info.FileName,
		ObjectName:     objectName,
		ApplicantID:    info.ApplicantID,
		Type:           info.FileType,
		ContentType:    contentType,
		Size:           size,
	}
	id, err := i.store.Save(rec)
	if err != nil {
		logger.WithError(err).Error("failed to save file metadata")
		return nil, errors.Wrap(err, "failed to store file")
	}
	rec.ID = id
	view := rec.ToModel(i.publicUrl)
	return &view, nil
}

func (i impl) GetFile(ctx context.Context, fileID string) (io.ReadCloser, *dbmodels.FileStorage, error) {
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, ErrFileNotFound
	}
	body, err := i.objects.GetObject(ctx, i.getSpaceBucketName(rec.SpaceID), rec.ObjectName)
	if err != nil {
		log.WithField("file_id", fileID).WithError(err).Error("failed to read object")
		return nil, nil, storageerrors.Wrap(errors.Wrap(err, "failed to read file"))
	}
	return body, rec, nil
}

func (i impl) ReadFile(ctx context.Context, fileID string) ([]byte, *dbmodels.FileStorage, error) {
	body, rec, err := i.GetFile(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	defer body.Close()
	buf := bytes.Buffer{}
	if _, err = io.Copy(&buf, body); err != nil {
		return nil, nil, storageerrors.Wrap(errors.Wrap(err, "failed to read file"))
	}
	return buf.Bytes(), rec, nil
}

func (i impl) DeleteFile(ctx context.Context, fileID string) error {
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	err = i.objects.RemoveObject(ctx, i.getSpaceBucketName(rec.SpaceID), rec.ObjectName)
	if err != nil {
		log.WithField("file_id", fileID).WithError(err).Warn("failed to remove object")
	}
	return i.store.Delete(fileID)
}

func (i impl) List(applicantID string, fileType dbmodels.FileType) ([]filesapimodels.FileView, error) {
	list, err := i.store.GetListByType(applicantID, fileType)
	if err != nil {
		return nil, err
	}
	result := make([]filesapimodels.FileView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel(i.publicUrl))
	}
	return result, nil
}

func (i impl) MakeSpaceBucket(ctx context.Context, spaceID string) error {
	return i.objects.MakeBucket(ctx, i.getSpaceBucketName(spaceID))
}

func (i impl) getSpaceBucketName(spaceID string) string {
	return fmt.Sprintf("%s-%s", i.bucketPrefix, spaceID)
}
