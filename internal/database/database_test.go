package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartchef/backend/config"
	"github.com/smartchef/backend/internal/database"
	"github.com/smartchef/backend/internal/model"
	"github.com/smartchef/backend/internal/testhelpers"
)

func TestNewWithoutDatabaseSettings(t *testing.T) {
	db, err := database.New(&config.Config{})
	assert.Nil(t, db)
	assert.ErrorIs(t, err, database.ErrNotConfigured)
}

func TestHealthCheck(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	assert.NoError(t, database.HealthCheck(context.Background(), db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	assert.Error(t, database.HealthCheck(context.Background(), db))
}

func TestDatabase(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)

	user := model.User{
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(&user).Error)
	assert.NotZero(t, user.ID)

	recipe := model.Recipe{
		Slug:        "toast",
		Name:        "Toast",
		Diet:        "vegetarian",
		Difficulty:  "easy",
		TimeMinutes: 5,
		Servings:    1,
		Ingredients: model.IngredientList{{Name: "bread", Quantity: 2, Unit: "slice"}},
		Steps:       model.JSONBStringArray{"Toast the bread."},
	}
	require.NoError(t, db.Create(&recipe).Error)

	var got model.Recipe
	require.NoError(t, db.Where("slug = ?", "toast").First(&got).Error)
	assert.Equal(t, recipe.Embedding.Slice(), got.Embedding.Slice())
	assert.Equal(t, "bread", got.Ingredients[0].Name)
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	applied, err := database.RunMigrations(sqlDB, "../../migrations")
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.sql", "0002_saved_recipes.sql"}, applied)

	applied, err = database.RunMigrations(sqlDB, "../../migrations")
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestRunMigrationsMissingDirectory(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	_, err = database.RunMigrations(sqlDB, "does-not-exist")
	assert.Error(t, err)
}

func TestRollbackLast(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	_, err = database.RollbackLast(sqlDB, "../../migrations")
	require.Error(t, err)

	_, err = database.RunMigrations(sqlDB, "../../migrations")
	require.NoError(t, err)

	name, err := database.RollbackLast(sqlDB, "../../migrations")
	require.NoError(t, err)
	assert.Equal(t, "0002_saved_recipes.sql", name)
	assert.False(t, db.Migrator().HasTable("saved_recipes"))

	applied, err := database.RunMigrations(sqlDB, "../../migrations")
	require.NoError(t, err)
	assert.Equal(t, []string{"0002_saved_recipes.sql"}, applied)
}

func TestNewRedisClientInvalidURL(t *testing.T) {
	client, err := database.NewRedisClient(context.Background(), &config.Config{RedisURL: "http://not-redis"})
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "invalid REDIS_URL")
}

func TestNewRedisClientUnreachable(t *testing.T) {
	client, err := database.NewRedisClient(context.Background(), &config.Config{RedisHost: "127.0.0.1", RedisPort: "1"})
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "127.0.0.1:1 unreachable")
}

func TestNewRedisClientFromURL(t *testing.T) {
	addr := testhelpers.SetupTestRedis(t).Options().Addr

	client, err := database.NewRedisClient(context.Background(), &config.Config{RedisURL: "redis://" + addr + "/2"})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, 2, client.Options().DB)
	assert.NoError(t, client.Set(context.Background(), "smartchef:ping", "pong", 0).Err())
}
