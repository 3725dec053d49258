package database_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipekit/config"
	"github.com/pageza/recipekit/internal/database"
	"github.com/pageza/recipekit/internal/ingredients"
	"github.com/pageza/recipekit/internal/model"
	"github.com/pageza/recipekit/internal/testdb"
)

func TestNewSQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "recipes.db"),
	}

	db, err := database.New(cfg)
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.HealthCheck(context.Background(), db))

	recipe := &model.Recipe{
		Name:        "Lassi",
		Category:    "Beverage",
		Subcategory: "Punjabi",
		Ingredients: ingredients.List(ingredients.MustDecode("Yogurt,250,ml,0.01")),
		UserID:      uuid.New(),
	}
	require.NoError(t, db.Create(recipe).Error)

	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := database.New(&config.Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestLoadMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"m/0002_second.sql":         {Data: []byte("SELECT 2;")},
		"m/0001_first.sql":          {Data: []byte("SELECT 1;")},
		"m/0001_first_rollback.sql": {Data: []byte("SELECT -1;")},
		"m/README.md":               {Data: []byte("ignored")},
	}

	migrations, err := database.LoadMigrations(fsys, "m")
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, database.Migration{
		Version:  "0001",
		Name:     "0001_first.sql",
		Up:       "SELECT 1;",
		Rollback: "SELECT -1;",
	}, migrations[0])
	assert.Equal(t, "0002", migrations[1].Version)
	assert.Empty(t, migrations[1].Rollback)
}

func TestEmbeddedMigrationsHaveRollbacks(t *testing.T) {
	migrations, err := database.Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	for _, m := range migrations {
		assert.NotEmpty(t, m.Rollback, m.Name)
	}
}

func TestApplyAndRollbackMigrationsPostgres(t *testing.T) {
	cfg := testdb.Postgres(t)
	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.PostgresDSN())
	require.NoError(t, err)
	defer db.Close()

	migrations, err := database.Migrations()
	require.NoError(t, err)

	applied, err := database.ApplyMigrations(ctx, db, migrations)
	require.NoError(t, err)
	assert.Len(t, applied, len(migrations))

	applied, err = database.ApplyMigrations(ctx, db, migrations)
	require.NoError(t, err)
	assert.Empty(t, applied)

	_, err = db.ExecContext(ctx,
		"INSERT INTO recipes (id, name, category, subcategory, ingredients, user_id) VALUES ($1, 'Kheer', 'Dessert', 'Indian', 'Rice,150,g', $2)",
		uuid.NewString(), uuid.NewString(),
	)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		"INSERT INTO recipes (id, name, category, subcategory, servings, user_id) VALUES ($1, 'Bad', 'Dessert', 'Indian', 0, $2)",
		uuid.NewString(), uuid.NewString(),
	)
	assert.Error(t, err, "servings must be positive")

	for i := len(migrations) - 1; i >= 0; i-- {
		name, err := database.RollbackMigration(ctx, db, migrations)
		require.NoError(t, err)
		assert.Equal(t, migrations[i].Name, name)
	}

	_, err = database.RollbackMigration(ctx, db, migrations)
	assert.ErrorIs(t, err, database.ErrNoMigrations)
}

func TestNewPostgres(t *testing.T) {
	db, err := database.New(testdb.Postgres(t))
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.Migrate(db))
	recipe := &model.Recipe{Name: "Kheer", Category: "Dessert", Subcategory: "Indian", UserID: uuid.New()}
	require.NoError(t, db.Create(recipe).Error)
}

func TestNewRedisClient(t *testing.T) {
	url := testdb.Redis(t)

	client, err := database.NewRedisClient(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
}

func TestNewRedisClientBadURL(t *testing.T) {
	_, err := database.NewRedisClient(context.Background(), "not-a-url")
	assert.ErrorContains(t, err, "failed to parse Redis URL")
}
