package integration

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vitalplan/backend/internal/database"
	"github.com/vitalplan/backend/internal/planner"
	"github.com/vitalplan/backend/internal/service"
	"github.com/vitalplan/backend/internal/types"
)

// setupPostgres starts a disposable Postgres container and applies the
// SQL migrations. Skips when Docker is not available.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=test sslmode=disable",
		host, port.Port())

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db, "../../migrations"))
	return db
}

func TestPlanPersistenceAgainstPostgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	auth := service.NewAuthService(db, "test-secret")
	user, _, err := auth.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	plans := service.NewPlanService(db)
	day1 := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	plan := &planner.CanonicalPlan{
		StartDate: day1,
		EndDate:   day2,
		Days: []planner.DayEntry{
			{Date: day1, Meals: []planner.Meal{{
				Name:     "Oatmeal",
				MealType: "breakfast",
				Ingredients: []planner.RawIngredient{
					{Name: "oats", Quantity: 1, Unit: "cup"},
				},
				Calories: 350,
			}}},
			{Date: day2, Meals: []planner.Meal{{
				Name:     "Salad",
				MealType: "lunch",
				Ingredients: []planner.RawIngredient{
					{Name: "lettuce", Quantity: 1, Unit: "head"},
				},
				Calories: 200,
			}}},
		},
	}
	list := planner.DeriveShoppingList(plan)

	planID, err := plans.Save(ctx, user.ID, plan, list)
	require.NoError(t, err)

	// Round trip through JSONB keeps days sorted and the list intact.
	row, err := plans.Find(ctx, planID, user.ID)
	require.NoError(t, err)
	decoded, decodedList, err := service.DecodePlan(row)
	require.NoError(t, err)
	require.Len(t, decoded.Days, 2)
	assert.True(t, decoded.Days[0].Date.Before(decoded.Days[1].Date))
	assert.Equal(t, list, decodedList)

	// Ownership is enforced in the query itself.
	intruder, _, err := auth.Register(ctx, "bob", "bob@example.com", "password123")
	require.NoError(t, err)
	_, err = plans.Find(ctx, planID, intruder.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPreferenceUpsertAgainstPostgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	auth := service.NewAuthService(db, "test-secret")
	user, _, err := auth.Register(ctx, "carol", "carol@example.com", "password123")
	require.NoError(t, err)

	prefs := service.NewPreferenceService(db)
	created, err := prefs.Upsert(ctx, user.ID, &types.MealPreferenceRequest{
		MealType:            "breakfast",
		CaloriesTarget:      400,
		ExcludedIngredients: []string{"peanuts"},
	})
	require.NoError(t, err)

	updated, err := prefs.Upsert(ctx, user.ID, &types.MealPreferenceRequest{
		MealType:       "breakfast",
		CaloriesTarget: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	list, err := prefs.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 500, list[0].CaloriesTarget)
}
