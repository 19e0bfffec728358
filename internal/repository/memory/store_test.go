package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"linkvault/internal/domain"
	"linkvault/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *models.User) {
	t.Helper()
	s := NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	user := &models.User{Username: "ada", Email: "ada@example.com", PasswordHash: "x"}
	require.NoError(t, s.Users().Create(context.Background(), user))
	return s, user
}

func TestUsers_DuplicateFields(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	err := s.Users().Create(ctx, &models.User{Username: "ada", Email: "other@example.com"})
	var dup *domain.DuplicateFieldError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "username", dup.Field)

	err = s.Users().Create(ctx, &models.User{Username: "grace", Email: "ada@example.com"})
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "email", dup.Field)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUsers_Lookup(t *testing.T) {
	s, user := newTestStore(t)
	ctx := context.Background()

	got, err := s.Users().GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = s.Users().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.Users().GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFolders_ScopedAndOrdered(t *testing.T) {
	s, user := newTestStore(t)
	ctx := context.Background()

	other := &models.User{Username: "grace", Email: "grace@example.com"}
	require.NoError(t, s.Users().Create(ctx, other))

	first := &models.Folder{UserID: user.ID, Name: "first"}
	second := &models.Folder{UserID: user.ID, Name: "second"}
	foreign := &models.Folder{UserID: other.ID, Name: "foreign"}
	for _, f := range []*models.Folder{first, second, foreign} {
		require.NoError(t, s.Folders().Create(ctx, f))
	}

	folders, err := s.Folders().List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "second", folders[0].Name)
	assert.Equal(t, "first", folders[1].Name)

	_, err = s.Folders().GetByID(ctx, foreign.ID, user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = s.Folders().Update(ctx, &models.Folder{ID: foreign.ID, UserID: user.ID, Name: "stolen"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.Folders().Delete(ctx, foreign.ID, user.ID))
	_, err = s.Folders().GetByID(ctx, foreign.ID, other.ID)
	assert.NoError(t, err, "delete by non-owner must not remove the folder")
}

func TestFolders_UpdateBumpsUpdatedAt(t *testing.T) {
	s, user := newTestStore(t)
	ctx := context.Background()

	folder := &models.Folder{UserID: user.ID, Name: "Reading"}
	require.NoError(t, s.Folders().Create(ctx, folder))

	folder.Name = "Later"
	require.NoError(t, s.Folders().Update(ctx, folder))

	got, err := s.Folders().GetByID(ctx, folder.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Later", got.Name)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestLinks_FilterDeleteAndCascade(t *testing.T) {
	s, user := newTestStore(t)
	ctx := context.Background()

	a := &models.Folder{UserID: user.ID, Name: "a"}
	b := &models.Folder{UserID: user.ID, Name: "b"}
	require.NoError(t, s.Folders().Create(ctx, a))
	require.NoError(t, s.Folders().Create(ctx, b))

	for i, folderID := range []string{a.ID, a.ID, b.ID} {
		link := &models.Link{UserID: user.ID, FolderID: folderID, Title: string(rune('x' + i)), URL: "https://example.com"}
		require.NoError(t, s.Links().Create(ctx, link))
	}

	all, err := s.Links().List(ctx, models.LinkFilter{UserID: user.ID})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "z", all[0].Title)

	inA, err := s.Links().List(ctx, models.LinkFilter{UserID: user.ID, FolderID: a.ID})
	require.NoError(t, err)
	assert.Len(t, inA, 2)

	assert.ErrorIs(t, s.Folders().Delete(ctx, a.ID, user.ID), domain.ErrConflict)

	removed, err := s.Links().DeleteByFolder(ctx, a.ID, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)
	require.NoError(t, s.Folders().Delete(ctx, a.ID, user.ID))

	deleted, err := s.Links().Delete(ctx, all[0].ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, deleted.FolderID)

	_, err = s.Links().Delete(ctx, all[0].ID, user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinks_CreateRequiresFolder(t *testing.T) {
	s, user := newTestStore(t)

	err := s.Links().Create(context.Background(), &models.Link{UserID: user.ID, FolderID: "nope", Title: "t", URL: "u"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecTx_RollsBackOnError(t *testing.T) {
	s, user := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.TransactionManager().ExecTx(ctx, func(ctx context.Context) error {
		require.NoError(t, s.Folders().Create(ctx, &models.Folder{UserID: user.ID, Name: "temp"}))
		return s.TransactionManager().ExecTx(ctx, func(ctx context.Context) error {
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)

	folders, err := s.Folders().List(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestExecTx_RollbackKeepsConcurrentWrites(t *testing.T) {
	s, user := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	folder := &models.Folder{UserID: user.ID, Name: "shared"}
	require.NoError(t, s.Folders().Create(ctx, folder))

	entered := make(chan struct{})
	release := make(chan struct{})
	txErr := make(chan error, 1)
	go func() {
		txErr <- s.TransactionManager().ExecTx(ctx, func(ctx context.Context) error {
			if err := s.Folders().Create(ctx, &models.Folder{UserID: user.ID, Name: "temp"}); err != nil {
				return err
			}
			close(entered)
			<-release
			return boom
		})
	}()
	<-entered

	link := &models.Link{UserID: user.ID, FolderID: folder.ID, Title: "t", URL: "https://e.com"}
	created := make(chan error, 1)
	go func() {
		created <- s.Links().Create(ctx, link)
	}()

	// Give the outside write a chance to reach the store while the
	// transaction is still open
	time.Sleep(20 * time.Millisecond)
	close(release)

	assert.ErrorIs(t, <-txErr, boom)
	require.NoError(t, <-created)

	_, err := s.Links().GetByID(ctx, link.ID, user.ID)
	assert.NoError(t, err, "write outside the failed transaction must survive its rollback")

	folders, err := s.Folders().List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "shared", folders[0].Name)
}

func TestExecTx_NestedCallsDoNotDeadlock(t *testing.T) {
	s, user := newTestStore(t)
	ctx := context.Background()

	err := s.TransactionManager().ExecTx(ctx, func(ctx context.Context) error {
		folder := &models.Folder{UserID: user.ID, Name: "outer"}
		if err := s.Folders().Create(ctx, folder); err != nil {
			return err
		}
		return s.TransactionManager().ExecTx(ctx, func(ctx context.Context) error {
			_, err := s.Folders().GetByID(ctx, folder.ID, user.ID)
			return err
		})
	})
	require.NoError(t, err)

	folders, err := s.Folders().List(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, folders, 1)
}
