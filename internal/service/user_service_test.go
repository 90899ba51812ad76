package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-backend/internal/auth"
	"ecommerce-backend/internal/entity"
)

func newUserService() (*UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo, auth.BcryptHasher{}, &fakeTokenIssuer{}), repo
}

func registerCustomer(t *testing.T, svc *UserService) *entity.User {
	t.Helper()
	user, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Jamie Ray",
		Username: "jamie",
		Email:    "jamie@example.com",
		Password: "hunter22",
	}, entity.RoleCustomer)
	require.NoError(t, err)
	return user
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, repo := newUserService()
	user := registerCustomer(t, svc)

	stored := repo.users[user.ID]
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NoError(t, auth.BcryptHasher{}.Compare([]byte(stored.PasswordHash), []byte("hunter22")))
	assert.Equal(t, entity.RoleCustomer, stored.Role)
	assert.Equal(t, "1", stored.AccountStatus)
	assert.Equal(t, entity.DefaultProfilePic, stored.ProfilePic)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo := newUserService()
	registerCustomer(t, svc)

	_, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Other",
		Username: "other",
		Email:    "jamie@example.com",
		Password: "pw",
	}, entity.RoleProvider)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, repo.users, 1)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newUserService()
	registerCustomer(t, svc)

	_, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Other",
		Username: "jamie",
		Email:    "other@example.com",
		Password: "pw",
	}, entity.RoleCustomer)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newUserService()
	created := registerCustomer(t, svc)

	user, token, err := svc.Login(context.Background(), "jamie@example.com", "hunter22", entity.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "token-1", token)
}

func TestLoginUniformFailure(t *testing.T) {
	svc, _ := newUserService()
	registerCustomer(t, svc)

	cases := []struct {
		name     string
		email    string
		password string
		role     entity.Role
	}{
		{"unknown email", "nobody@example.com", "hunter22", entity.RoleCustomer},
		{"wrong password", "jamie@example.com", "wrong", entity.RoleCustomer},
		{"wrong role", "jamie@example.com", "hunter22", entity.RoleAdmin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tc.email, tc.password, tc.role)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestUpdateProfileNoChanges(t *testing.T) {
	svc, _ := newUserService()
	created := registerCustomer(t, svc)

	_, changed, err := svc.UpdateProfile(context.Background(), created.ID, ProfileUpdate{})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, repo := newUserService()
	created := registerCustomer(t, svc)

	user, changed, err := svc.UpdateProfile(context.Background(), created.ID, ProfileUpdate{
		FullName: "Jamie R.",
		Email:    "new@example.com",
	})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Jamie R.", user.FullName)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "jamie", repo.users[created.ID].Username)
}

func TestUpdateProfileUsernameTaken(t *testing.T) {
	svc, _ := newUserService()
	registerCustomer(t, svc)
	other, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Other",
		Username: "other",
		Email:    "other@example.com",
		Password: "pw",
	}, entity.RoleCustomer)
	require.NoError(t, err)

	_, _, err = svc.UpdateProfile(context.Background(), other.ID, ProfileUpdate{Username: "jamie"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUpdateProfileKeepOwnUsername(t *testing.T) {
	svc, _ := newUserService()
	created := registerCustomer(t, svc)

	// Re-submitting your own username is not a conflict.
	_, changed, err := svc.UpdateProfile(context.Background(), created.ID, ProfileUpdate{
		Username: "jamie",
		FullName: "Jamie Again",
	})
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestAdminCreateUserDuplicate(t *testing.T) {
	svc, _ := newUserService()
	registerCustomer(t, svc)

	_, err := svc.CreateUser(context.Background(), AdminCreateUserInput{
		FullName: "Dup",
		Username: "jamie",
		Email:    "fresh@example.com",
		Password: "pw",
		Role:     entity.RoleCustomer,
	})
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = svc.CreateUser(context.Background(), AdminCreateUserInput{
		FullName: "Dup",
		Username: "fresh",
		Email:    "jamie@example.com",
		Password: "pw",
		Role:     entity.RoleCustomer,
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAdminUpdateUserPassword(t *testing.T) {
	svc, repo := newUserService()
	created := registerCustomer(t, svc)
	oldHash := repo.users[created.ID].PasswordHash

	_, err := svc.UpdateUser(context.Background(), created.ID, AdminUpdateUserInput{Password: "newpass"})
	require.NoError(t, err)

	newHash := repo.users[created.ID].PasswordHash
	assert.NotEqual(t, oldHash, newHash)
	assert.NoError(t, auth.BcryptHasher{}.Compare([]byte(newHash), []byte("newpass")))
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newUserService()
	created := registerCustomer(t, svc)

	require.NoError(t, svc.DeleteUser(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), created.ID), ErrUserNotFound)
}

func TestGetProfileMissing(t *testing.T) {
	svc, _ := newUserService()
	_, err := svc.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
