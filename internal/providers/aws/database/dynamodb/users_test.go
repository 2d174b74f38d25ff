package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskapp/taskapp/internal/domain"
	apperrors "github.com/taskapp/taskapp/internal/errors"
	"github.com/taskapp/taskapp/internal/testutil"
)

const testUsersTable = "test-users-table"

func newTestUserRepository() (*UserRepository, *MockDynamoDBClient) {
	client := NewMockDynamoDBClient()
	client.CreateTable(testUsersTable, UserKeyAttribute)
	return NewUserRepository(client, testUsersTable, testutil.SilentLogger()), client
}

func TestUserRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo, client := newTestUserRepository()
	user := testutil.NewUserBuilder().WithUserID("sub-1").WithPhoneNumber("+15550100").Build()

	_, err := repo.Save(ctx, user)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, "sub-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.Record(), found.Record())

	stored := client.Tables[testUsersTable]["sub-1"]
	_, hasUpdatedAt := stored["updatedAt"]
	assert.False(t, hasUpdatedAt, "updatedAt is omitted until the first mutation")
	prefs, ok := stored["preferences"].(*types.AttributeValueMemberM)
	require.True(t, ok)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "light"}, prefs.Value["theme"])
}

func TestUserRepository_SaveDuplicate(t *testing.T) {
	ctx := context.Background()
	repo, client := newTestUserRepository()
	user := testutil.NewUserBuilder().WithUserID("sub-1").Build()

	_, err := repo.Save(ctx, user)
	require.NoError(t, err)
	_, err = repo.Save(ctx, user)

	testutil.AssertAppErrorCode(t, err, apperrors.ErrCodeConflict)
	assert.Len(t, client.Tables[testUsersTable], 1)
}

func TestUserRepository_UpdatePreferences(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestUserRepository()
	user := testutil.NewUserBuilder().WithUserID("sub-1").Build()
	_, err := repo.Save(ctx, user)
	require.NoError(t, err)

	dark := domain.ThemeDark
	user.UpdatePreferences(domain.PreferencesPatch{Theme: &dark}, testutil.FixedTime.Add(time.Minute))
	_, err = repo.Update(ctx, user)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Preferences{Notifications: true, Theme: domain.ThemeDark}, found.Preferences())
	require.NotNil(t, found.UpdatedAt())
	assert.Equal(t, testutil.FixedTime.Add(time.Minute), *found.UpdatedAt())
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	repo, _ := newTestUserRepository()

	_, err := repo.Update(context.Background(), testutil.NewUserBuilder().Build())

	testutil.AssertAppErrorCode(t, err, apperrors.ErrCodeNotFound)
}

func TestUserRepository_FindAllAndDelete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestUserRepository()
	for _, id := range []string{"sub-1", "sub-2"} {
		_, err := repo.Save(ctx, testutil.NewUserBuilder().WithUserID(id).Build())
		require.NoError(t, err)
	}

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	deleted, err := repo.Delete(ctx, "sub-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	missing, err := repo.FindByID(ctx, "sub-1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserItemUnknownThemeFallsBackToDefault(t *testing.T) {
	item := userItem{UserID: "sub-1", Preferences: preferencesItem{Notifications: true, Theme: "neon"}}

	assert.Equal(t, domain.ThemeLight, item.toDomain().Preferences().Theme)
}
