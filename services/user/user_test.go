package user

import (
	"testing"

	"tolet/errs"
	"tolet/models"
	"tolet/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeUserRepo enforces email uniqueness the same way the Mongo index does.
type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return errs.New(errs.Conflict, "a user with this email already exists")
		}
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) UpdateWithDocument(id string, set bson.M) error {
	u, ok := f.users[id]
	if !ok {
		return errs.New(errs.NotFound, "user not found")
	}
	if name, ok := set["name"].(string); ok {
		u.Name = name
	}
	if phone, ok := set["phone"].(string); ok {
		u.Phone = phone
	}
	if tokenHash, ok := set["tokenHash"].(string); ok {
		u.TokenHash = tokenHash
	}
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	if v, drop := projection["passwordHash"]; drop && v == 0 {
		u.PasswordHash = ""
	}
	if v, drop := projection["tokenHash"]; drop && v == 0 {
		u.TokenHash = ""
	}
	return &u, nil
}

func (f *fakeUserRepo) GetPublicProfiles(ids []string) (map[string]models.OwnerProfile, error) {
	out := make(map[string]models.OwnerProfile)
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = models.OwnerProfile{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
		}
	}
	return out, nil
}

func registration() models.UserRegistration {
	return models.UserRegistration{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
		Phone:    "+911234567890",
	}
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(registration())
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, resp.Role)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)

	stored := repo.users[resp.ID]
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)
}

func TestRegisterOwnerRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	req := registration()
	req.Role = models.RoleOwner

	resp, err := svc.Register(req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, resp.Role)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	req := registration()
	req.Role = "admin"

	_, err := svc.Register(req)
	require.Error(t, err)
	assert.Equal(t, errs.Validation, errs.KindOf(err))
	assert.Equal(t, "role", errs.FieldOf(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Register(registration())
	require.NoError(t, err)

	_, err = svc.Register(registration())
	require.Error(t, err)
	assert.Equal(t, errs.Conflict, errs.KindOf(err))
}

func TestAuthenticateSuccessRotatesTokenHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	registered, err := svc.Register(registration())
	require.NoError(t, err)

	resp, err := svc.Authenticate("asha@example.com", "s3cret-pass")
	require.NoError(t, err)

	assert.Equal(t, registered.ID, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, utils.HashToken(resp.Token), repo.users[resp.ID].TokenHash)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Register(registration())
	require.NoError(t, err)

	_, err = svc.Authenticate("asha@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, errs.Unauthenticated, errs.KindOf(err))
	assert.Equal(t, "invalid email or password", errs.MessageOf(err))
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Authenticate("nobody@example.com", "whatever")
	require.Error(t, err)
	assert.Equal(t, errs.Unauthenticated, errs.KindOf(err))
	// Same message as a wrong password so callers cannot probe for accounts.
	assert.Equal(t, "invalid email or password", errs.MessageOf(err))
}

func TestRevokeAuthTokenClearsHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(registration())
	require.NoError(t, err)

	require.NoError(t, svc.RevokeAuthToken(resp.ID))
	assert.Empty(t, repo.users[resp.ID].TokenHash)
}

func TestGetUserByIDExcludesSensitiveFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(registration())
	require.NoError(t, err)

	usr, err := svc.GetUserByID(resp.ID)
	require.NoError(t, err)
	assert.Empty(t, usr.PasswordHash)
	assert.Empty(t, usr.TokenHash)
	assert.Equal(t, "Asha", usr.Name)
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.GetUserByID("missing")
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
}

func TestUpdateUserPartial(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(registration())
	require.NoError(t, err)

	updated, err := svc.UpdateUser(resp.ID, models.UserUpdate{Phone: "+919999999999"})
	require.NoError(t, err)
	assert.Equal(t, "+919999999999", updated.Phone)
	assert.Equal(t, "Asha", updated.Name)
}

func TestUpdateUserRejectsEmptyPatch(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.UpdateUser("any", models.UserUpdate{})
	require.Error(t, err)
	assert.Equal(t, errs.Validation, errs.KindOf(err))
}
