// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/mock"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDirectorSvc(t *testing.T, ctrl *gomock.Controller) (DirectorService, *mock.MockDirectorRepository) {
	t.Helper()
	repo := mock.NewMockDirectorRepository(ctrl)
	return NewDirectorService(repo, testValidator(), logger.Nop()), repo
}

var nolan = models.Director{DirectorID: 9, FullName: "Christopher Nolan"}

// ── Create ───────────────────────────────────────────────────────────────────

func TestDirectorService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestDirectorSvc(t, ctrl)
	repo.EXPECT().CreateDirector(gomock.Any(), "Christopher Nolan").Return(nolan, nil)

	director, err := svc.Create(context.Background(), "  Christopher Nolan ")

	require.NoError(t, err)
	assert.Equal(t, nolan, director)
}

func TestDirectorService_Create_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestDirectorSvc(t, ctrl)

	for _, name := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), name)
		require.ErrorIs(t, err, validators.ErrValidation)
	}
}

func TestDirectorService_Create_LostRaceReturnsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestDirectorSvc(t, ctrl)
	gomock.InOrder(
		repo.EXPECT().CreateDirector(gomock.Any(), nolan.FullName).Return(models.Director{}, store.ErrDirectorAlreadyExists),
		repo.EXPECT().FindDirectorByFullName(gomock.Any(), nolan.FullName).Return(nolan, nil),
	)

	director, err := svc.Create(context.Background(), nolan.FullName)

	require.NoError(t, err)
	assert.Equal(t, nolan.DirectorID, director.DirectorID)
}

func TestDirectorService_Create_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestDirectorSvc(t, ctrl)
	repo.EXPECT().CreateDirector(gomock.Any(), gomock.Any()).Return(models.Director{}, errStorage)

	_, err := svc.Create(context.Background(), nolan.FullName)

	require.ErrorIs(t, err, errStorage)
}

// ── Find / FindOrCreate ──────────────────────────────────────────────────────

func TestDirectorService_Find(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestDirectorSvc(t, ctrl)
	repo.EXPECT().FindDirectorByFullName(gomock.Any(), nolan.FullName).Return(nolan, nil)
	repo.EXPECT().FindDirectorByFullName(gomock.Any(), "Unknown").Return(models.Director{}, store.ErrDirectorNotFound)

	director, found, err := svc.Find(context.Background(), nolan.FullName)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, nolan, director)

	_, found, err = svc.Find(context.Background(), "Unknown")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDirectorService_FindOrCreate_ReusesExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestDirectorSvc(t, ctrl)
	repo.EXPECT().FindDirectorByFullName(gomock.Any(), nolan.FullName).Return(nolan, nil)
	repo.EXPECT().CreateDirector(gomock.Any(), gomock.Any()).Times(0)

	director, err := svc.FindOrCreate(context.Background(), nolan.FullName)

	require.NoError(t, err)
	assert.Equal(t, nolan, director)
}

func TestDirectorService_FindOrCreate_CreatesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestDirectorSvc(t, ctrl)
	gomock.InOrder(
		repo.EXPECT().FindDirectorByFullName(gomock.Any(), nolan.FullName).Return(models.Director{}, store.ErrDirectorNotFound),
		repo.EXPECT().CreateDirector(gomock.Any(), nolan.FullName).Return(nolan, nil),
	)

	director, err := svc.FindOrCreate(context.Background(), nolan.FullName)

	require.NoError(t, err)
	assert.Equal(t, nolan, director)
}

func TestDirectorService_FindOrCreate_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestDirectorSvc(t, ctrl)
	repo.EXPECT().FindDirectorByFullName(gomock.Any(), gomock.Any()).Return(models.Director{}, errStorage)

	_, err := svc.FindOrCreate(context.Background(), nolan.FullName)

	require.ErrorIs(t, err, errStorage)
}
