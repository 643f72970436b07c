package repository

import (
	"testing"

	"github.com/shoptalk/shoptalk-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSQLiteRepo(t *testing.T) (*gorm.DB, ChannelRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserAccount{},
		&models.Channel{},
		&models.ChannelMember{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, NewChannelRepository(db)
}

func TestChannelRepository_AddMembersResurrectsSoftDeleted(t *testing.T) {
	db, repo := setupSQLiteRepo(t)

	channel := &models.Channel{Name: "support"}
	require.NoError(t, repo.CreateWithAdmin(channel, 1))

	require.NoError(t, repo.AddMembers(channel.ID, []uint64{2}, models.RoleMember))
	require.NoError(t, repo.RemoveMember(channel.ID, 2))

	_, err := repo.FindMember(channel.ID, 2)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Re-adding restores the soft-deleted row instead of inserting a
	// second one.
	require.NoError(t, repo.AddMembers(channel.ID, []uint64{2}, models.RoleMember))

	member, err := repo.FindMember(channel.ID, 2)
	require.NoError(t, err)
	require.Equal(t, models.RoleMember, member.Role)

	var total int64
	require.NoError(t, db.Unscoped().Model(&models.ChannelMember{}).
		Where("channel_id = ? AND user_id = ?", channel.ID, 2).
		Count(&total).Error)
	require.Equal(t, int64(1), total)
}

func TestChannelRepository_AddMembersKeepsExistingRole(t *testing.T) {
	_, repo := setupSQLiteRepo(t)

	channel := &models.Channel{Name: "support"}
	require.NoError(t, repo.CreateWithAdmin(channel, 1))

	// Re-adding the admin must not demote them.
	require.NoError(t, repo.AddMembers(channel.ID, []uint64{1}, models.RoleMember))

	member, err := repo.FindMember(channel.ID, 1)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, member.Role)
}

// The unique index is the final arbiter for concurrent signups; the
// driver error must surface as gorm.ErrDuplicatedKey so services can
// map it to a conflict.
func TestUserRepository_DuplicateEmailIsTranslated(t *testing.T) {
	db, _ := setupSQLiteRepo(t)
	repo := NewUserRepository(db)

	first := &models.UserAccount{Name: "Alice", Email: "dup@example.com", PasswordHash: "hashed"}
	require.NoError(t, repo.Create(first))

	second := &models.UserAccount{Name: "Alice Again", Email: "dup@example.com", PasswordHash: "hashed"}
	require.ErrorIs(t, repo.Create(second), gorm.ErrDuplicatedKey)
}

func TestChannelRepository_DuplicateNameIsTranslated(t *testing.T) {
	_, repo := setupSQLiteRepo(t)

	channel := &models.Channel{Name: "support"}
	require.NoError(t, repo.CreateWithAdmin(channel, 1))

	duplicate := &models.Channel{Name: "support"}
	require.ErrorIs(t, repo.CreateWithAdmin(duplicate, 2), gorm.ErrDuplicatedKey)
}

func TestChannelRepository_DeleteSoftDeletesMemberships(t *testing.T) {
	db, repo := setupSQLiteRepo(t)

	channel := &models.Channel{Name: "doomed"}
	require.NoError(t, repo.CreateWithAdmin(channel, 1))
	require.NoError(t, repo.AddMembers(channel.ID, []uint64{2, 3}, models.RoleMember))

	require.NoError(t, repo.Delete(channel.ID))

	_, err := repo.FindByID(channel.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := repo.CountMembers(channel.ID)
	require.NoError(t, err)
	require.Zero(t, count)

	// Rows survive as soft-deleted history.
	var total int64
	require.NoError(t, db.Unscoped().Model(&models.ChannelMember{}).
		Where("channel_id = ?", channel.ID).
		Count(&total).Error)
	require.Equal(t, int64(3), total)
}
