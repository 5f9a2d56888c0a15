package spacehandler

import (
	"context"
	filesapimodels "hr-onboarding-backend/models/api/files"
	spaceapimodels "hr-onboarding-backend/models/api/space"
	dbmodels "hr-onboarding-backend/models/db"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeSpaceStore struct {
	spaces  map[string]dbmodels.Space
	deleted []string
	eins    map[string]bool
}

func (f *fakeSpaceStore) Create(rec dbmodels.Space) (string, error) {
	f.spaces["space1"] = rec
	return "space1", nil
}

func (f *fakeSpaceStore) Delete(spaceID string) error {
	f.deleted = append(f.deleted, spaceID)
	delete(f.spaces, spaceID)
	return nil
}

func (f *fakeSpaceStore) ExistByEIN(ein string) (bool, error) { return f.eins[ein], nil }

func (f *fakeSpaceStore) GetByID(spaceID string) (*dbmodels.Space, error) {
	rec, ok := f.spaces[spaceID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type fakeUserStore struct {
	existing  map[string]bool
	created   []dbmodels.SpaceUser
	createErr error
}

func (f *fakeUserStore) Create(rec dbmodels.SpaceUser) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, rec)
	return "user1", nil
}
func (f *fakeUserStore) Update(string, map[string]interface{}) error { return nil }
func (f *fakeUserStore) GetList(string, int, int) ([]dbmodels.SpaceUser, int64, error) {
	return nil, 0, nil
}
func (f *fakeUserStore) GetStaffIDs(string) ([]string, error)                 { return nil, nil }
func (f *fakeUserStore) ExistByEmail(email string) (bool, error)              { return f.existing[email], nil }
func (f *fakeUserStore) FindByEmail(string) (*dbmodels.SpaceUser, error)      { return nil, nil }
func (f *fakeUserStore) GetByID(string) (*dbmodels.SpaceUser, error)          { return nil, nil }
func (f *fakeUserStore) GetByApplicantID(string) (*dbmodels.SpaceUser, error) { return nil, nil }

type fakeFiles struct {
	buckets []string
}

func (f *fakeFiles) Upload(context.Context, dbmodels.UploadFileInfo, io.Reader, int64) (*filesapimodels.FileView, error) {
	return nil, nil
}
func (f *fakeFiles) GetFile(context.Context, string) (io.ReadCloser, *dbmodels.FileStorage, error) {
	return nil, nil, nil
}
func (f *fakeFiles) ReadFile(context.Context, string) ([]byte, *dbmodels.FileStorage, error) {
	return nil, nil, nil
}
func (f *fakeFiles) DeleteFile(context.Context, string) error { return nil }
func (f *fakeFiles) List(string, dbmodels.FileType) ([]filesapimodels.FileView, error) {
	return nil, nil
}
func (f *fakeFiles) MakeSpaceBucket(ctx context.Context, spaceID string) error {
	f.buckets = append(f.buckets, spaceID)
	return nil
}

func request() spaceapimodels.CreateOrganization {
	return spaceapimodels.CreateOrganization{
		Name:  "Sunrise Home Care",
		State: "TX",
		Zip:   "73301",
		AdminData: spaceapimodels.CreateUser{
			Password: "password1",
			SpaceUserCommonData: spaceapimodels.SpaceUserCommonData{
				Email:     "admin@sunrise.com",
				FirstName: "Ann",
				LastName:  "Lee",
			},
		},
	}
}

func TestCreateOrganizationSpace(t *testing.T) {
	t.Run("creates space admin and bucket", func(t *testing.T) {
		spaces := &fakeSpaceStore{spaces: map[string]dbmodels.Space{}}
		users := &fakeUserStore{existing: map[string]bool{}}
		files := &fakeFiles{}
		spaceID, err := NewInstance(spaces, users, files).CreateOrganizationSpace(context.Background(), request())
		require.NoError(t, err)
		require.Equal(t, "space1", spaceID)
		require.Len(t, users.created, 1)
		require.True(t, users.created[0].Role.IsSpaceAdmin())
		require.NotEqual(t, "password1", users.created[0].Password)
		require.Equal(t, []string{"space1"}, files.buckets)
	})
	t.Run("duplicate email", func(t *testing.T) {
		spaces := &fakeSpaceStore{spaces: map[string]dbmodels.Space{}}
		users := &fakeUserStore{existing: map[string]bool{"admin@sunrise.com": true}}
		_, err := NewInstance(spaces, users, &fakeFiles{}).CreateOrganizationSpace(context.Background(), request())
		require.ErrorIs(t, err, ErrEmailExists)
		require.Empty(t, spaces.spaces)
	})
	t.Run("duplicate EIN", func(t *testing.T) {
		spaces := &fakeSpaceStore{spaces: map[string]dbmodels.Space{}, eins: map[string]bool{"12-3456789": true}}
		users := &fakeUserStore{existing: map[string]bool{}}
		req := request()
		req.EIN = "12-3456789"
		_, err := NewInstance(spaces, users, &fakeFiles{}).CreateOrganizationSpace(context.Background(), req)
		require.ErrorIs(t, err, ErrEINExists)
		require.Empty(t, users.created)
	})
	t.Run("space removed when admin fails", func(t *testing.T) {
		spaces := &fakeSpaceStore{spaces: map[string]dbmodels.Space{}}
		users := &fakeUserStore{existing: map[string]bool{}, createErr: errors.New("db down")}
		_, err := NewInstance(spaces, users, &fakeFiles{}).CreateOrganizationSpace(context.Background(), request())
		require.Error(t, err)
		require.Equal(t, []string{"space1"}, spaces.deleted)
	})
}
