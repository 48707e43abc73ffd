package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendImageRequiresExistingApplication(t *testing.T) {
	repo := newFakeApplicationRepo()
	store := &fakeFileStore{}
	svc := NewAttachmentService(repo, store)

	file := makeFileHeader(t, "applicationFormImage", "extra.jpg", "jpeg")

	_, err := svc.AppendImage(context.Background(), uuid.NewString(), file)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
	// Existence is checked before anything is uploaded.
	assert.Zero(t, store.calls)

	_, err = svc.AppendImage(context.Background(), "not-a-uuid", file)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.AppendImage(context.Background(), uuid.NewString(), nil)
	assert.ErrorIs(t, err, ErrNoFileUploaded)
}

func TestAppendThenRemoveRestoresImageList(t *testing.T) {
	repo := newFakeApplicationRepo()
	store := &fakeFileStore{}
	appSvc := NewApplicationService(repo, store)
	svc := NewAttachmentService(repo, store)

	created, err := appSvc.Submit(context.Background(), CreateApplicationRequest{Fullname: "Karim"}, nil)
	require.NoError(t, err)
	id := created.ID.String()

	file := makeFileHeader(t, "applicationFormImage", "extra form.jpg", "jpeg")
	fileURL, err := svc.AppendImage(context.Background(), id, file)
	require.NoError(t, err)
	assert.Contains(t, fileURL, "applicationFormImage_"+id+"_extra_form.jpg")

	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, stored.ApplicationFormImages, 1)
	assert.Equal(t, fileURL, stored.ApplicationFormImages[0])

	require.NoError(t, svc.RemoveImage(context.Background(), id, fileURL))

	stored, err = repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ApplicationFormImages)
}

func TestRemoveImageNotInList(t *testing.T) {
	repo := newFakeApplicationRepo()
	store := &fakeFileStore{}
	appSvc := NewApplicationService(repo, store)
	svc := NewAttachmentService(repo, store)

	created, err := appSvc.Submit(context.Background(), CreateApplicationRequest{Fullname: "Karim"}, nil)
	require.NoError(t, err)

	err = svc.RemoveImage(context.Background(), created.ID.String(), "https://files.example.com/unknown.jpg")
	assert.ErrorIs(t, err, ErrFileNotInApplication)

	err = svc.RemoveImage(context.Background(), uuid.NewString(), "https://files.example.com/unknown.jpg")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestRemoveImageSurvivesRemoteDeleteFailure(t *testing.T) {
	repo := newFakeApplicationRepo()
	store := &fakeFileStore{deleteErr: errors.New("object storage unreachable")}
	appSvc := NewApplicationService(repo, store)
	svc := NewAttachmentService(repo, store)

	created, err := appSvc.Submit(context.Background(), CreateApplicationRequest{Fullname: "Karim"}, nil)
	require.NoError(t, err)
	id := created.ID.String()

	file := makeFileHeader(t, "applicationFormImage", "extra.jpg", "jpeg")
	fileURL, err := svc.AppendImage(context.Background(), id, file)
	require.NoError(t, err)

	// Remote delete is best-effort; the list entry is removed regardless.
	require.NoError(t, svc.RemoveImage(context.Background(), id, fileURL))

	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ApplicationFormImages)
	assert.Equal(t, []string{fileURL}, store.deleted)
}
