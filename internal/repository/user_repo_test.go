package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatboost/chatboost-server/internal/model"
	"github.com/chatboost/chatboost-server/internal/testutil"
)

func TestUserRepository_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	_ = NewUserRepository(db)

	email := "test@example.com"
	user := testutil.TestUser(t, db, testutil.WithEmail(email))

	assert.NotZero(t, user.ID)
	assert.Equal(t, email, user.Email)
	assert.Equal(t, model.PlanFree, user.Plan)
}

func TestUserRepository_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)

	// 创建测试用户
	created := testutil.TestUser(t, db)

	// 查询用户
	found, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.Email, found.Email)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)

	_, err := repo.GetByID(99999)
	assert.Error(t, err)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)

	email := "unique@example.com"
	testutil.TestUser(t, db, testutil.WithEmail(email))

	found, err := repo.GetByEmail(email)
	require.NoError(t, err)
	assert.Equal(t, email, found.Email)
}

func TestUserRepository_GetByAPIKey(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)

	key := "cb_test_key_abcdef"
	created := testutil.TestUser(t, db, testutil.WithAPIKey(key))

	found, err := repo.GetByAPIKey(key)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByAPIKey("cb_no_such_key")
	assert.Error(t, err)
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)

	email := "exists@example.com"
	testutil.TestUser(t, db, testutil.WithEmail(email))

	exists, err := repo.ExistsByEmail(email)
	require.NoError(t, err)
	assert.True(t, exists)

	notExists, err := repo.ExistsByEmail("notexists@example.com")
	require.NoError(t, err)
	assert.False(t, notExists)
}

func TestUserRepository_UpdateAPIKey(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)

	user := testutil.TestUser(t, db, testutil.WithAPIKey("cb_old_key"))

	err := repo.UpdateAPIKey(user.ID, "cb_new_key")
	require.NoError(t, err)

	updated, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.APIKey)
	assert.Equal(t, "cb_new_key", *updated.APIKey)

	// 旧 Key 查不到
	_, err = repo.GetByAPIKey("cb_old_key")
	assert.Error(t, err)
}

func TestUserRepository_UpdatePlan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)

	user := testutil.TestUser(t, db, testutil.WithMessagesUsed(7))

	err := repo.UpdatePlan(user.ID, model.PlanGroup, 30)
	require.NoError(t, err)

	updated, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PlanGroup, updated.Plan)
	assert.Equal(t, 30, updated.MessageLimit)
	// 换套餐后用量清零
	assert.Equal(t, 0, updated.MessagesUsed)
}

func TestUserRepository_IncrementUsage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)

	user := testutil.TestUser(t, db, testutil.WithMessagesUsed(0))

	ok, err := repo.IncrementUsage(user.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.MessagesUsed)
}

func TestUserRepository_IncrementUsage_AtLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)

	// 已用满额度，递增必须失败且不改数据
	user := testutil.TestUser(t, db, testutil.WithMessagesUsed(10))

	ok, err := repo.IncrementUsage(user.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	updated, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.MessagesUsed)
}

func TestUserRepository_IncrementUsage_Unlimited(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)

	user := testutil.TestUser(t, db,
		testutil.WithPlan(model.PlanLifetime, model.UnlimitedMessages),
		testutil.WithMessagesUsed(1000))

	ok, err := repo.IncrementUsage(user.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1001, updated.MessagesUsed)
}

func TestUserRepository_ResetUsage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewUserRepository(db)

	user := testutil.TestUser(t, db, testutil.WithMessagesUsed(9))

	err := repo.ResetUsage(user.ID)
	require.NoError(t, err)

	updated, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.MessagesUsed)
}
