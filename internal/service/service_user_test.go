// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/mock"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserService(repo, testValidator(), testAppConfig(), logger.Nop()), repo
}

// ── GetByEmail ───────────────────────────────────────────────────────────────

func TestUserService_GetByEmail_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "john@doe.com").
		Return(models.User{UserID: 1, Email: "john@doe.com", Password: "hash"}, nil)

	user, found, err := svc.GetByEmail(context.Background(), "john@doe.com")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(1), user.UserID)
	assert.Empty(t, user.Password)
}

func TestUserService_GetByEmail_MissIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "nobody@doe.com").Return(models.User{}, store.ErrUserNotFound)

	_, found, err := svc.GetByEmail(context.Background(), "nobody@doe.com")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestUserService_GetByEmail_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, errStorage)

	_, found, err := svc.GetByEmail(context.Background(), "john@doe.com")

	require.ErrorIs(t, err, errStorage)
	assert.False(t, found)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestUserService_Get_NeverReturnsPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(7)).
		Return(models.User{UserID: 7, Email: "a@b.c", Password: "$2a$04$hash"}, nil)

	user, err := svc.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Empty(t, user.Password)
}

func TestUserService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Get(context.Background(), 7)

	require.ErrorIs(t, err, ErrUserNotFound)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestUserService_Create_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	req := models.SignUpRequest{Email: "john@doe.com", Password: "secret", FirstName: ptr("John")}

	gomock.InOrder(
		repo.EXPECT().FindUserByEmail(gomock.Any(), req.Email).Return(models.User{}, store.ErrUserNotFound),
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, req.Email, u.Email)
				assert.NotEqual(t, req.Password, u.Password)
				ok, err := utils.ComparePassword(req.Password, u.Password)
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, "John", *u.FirstName)

				u.UserID = 11
				return u, nil
			},
		),
	)

	user, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(11), user.UserID)
	assert.Empty(t, user.Password)
}

func TestUserService_Create_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.SignUpRequest{Email: "broken", Password: "secret"})

	require.ErrorIs(t, err, validators.ErrValidation)
}

func TestUserService_Create_PasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.SignUpRequest{
		Email:    "a@b.co",
		Password: strings.Repeat("x", 73),
	})

	require.ErrorIs(t, err, validators.ErrValidation)
	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "password", vErr.Field)
}

// acceptAll lets every payload through so the hashing step is reached.
type acceptAll struct{}

func (acceptAll) Validate(context.Context, any, ...string) error { return nil }

func TestUserService_Create_HashRejectsLongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, acceptAll{}, testAppConfig(), logger.Nop())

	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@b.co").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Create(context.Background(), models.SignUpRequest{
		Email:    "a@b.co",
		Password: strings.Repeat("x", 73),
	})

	require.ErrorIs(t, err, validators.ErrValidation)
	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "password must be at most 72 bytes long.", vErr.Message)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "john@doe.com").Return(models.User{UserID: 1}, nil)

	_, err := svc.Create(context.Background(), models.SignUpRequest{Email: "john@doe.com", Password: "secret"})

	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserService_Create_EmailTakenConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Create(context.Background(), models.SignUpRequest{Email: "john@doe.com", Password: "secret"})

	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserService_Create_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, errStorage)

	_, err := svc.Create(context.Background(), models.SignUpRequest{Email: "john@doe.com", Password: "secret"})

	require.ErrorIs(t, err, errStorage)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestUserService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	req := models.UpdateUserRequest{LastName: ptr("Smith")}

	gomock.InOrder(
		repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{UserID: 3}, nil),
		repo.EXPECT().UpdateUser(gomock.Any(), int64(3), req).
			Return(models.User{UserID: 3, LastName: ptr("Smith"), Password: "hash"}, nil),
	)

	user, err := svc.Update(context.Background(), 3, req)

	require.NoError(t, err)
	assert.Equal(t, "Smith", *user.LastName)
	assert.Empty(t, user.Password)
}

func TestUserService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Update(context.Background(), 3, models.UpdateUserRequest{LastName: ptr("Smith")})

	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Update_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{UserID: 3}, nil)

	_, err := svc.Update(context.Background(), 3, models.UpdateUserRequest{FirstName: ptr("")})

	require.ErrorIs(t, err, validators.ErrValidation)
}

func TestUserService_Update_EmptyRequestSkipsStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{UserID: 3, Password: "hash"}, nil)

	user, err := svc.Update(context.Background(), 3, models.UpdateUserRequest{})

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.Empty(t, user.Password)
}
