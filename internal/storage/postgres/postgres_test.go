package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для пакета postgres:
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграции из ./migrations (справочник локалей + обе перегрузки
//   generate_fake_users);
// — проверяют:
//    ListLocales: сортировка по коду, пустая таблица;
//    GenerateUsers: размер батча, наличие latitude/longitude, детерминизм по seed,
//      оконная семантика batch_index;
//    GenerateBulk: скалярная 3-аргументная форма;
//    Ping: живое соединение.

// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает PostgreSQL через testcontainers-go,
// применяет миграции и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_usergen.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func TestIntegration_ListLocales_OrderedByCode(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	locales, err := st.ListLocales(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, locales)

	for i := 1; i < len(locales); i++ {
		require.Less(t, locales[i-1].Code, locales[i].Code,
			"locales должны идти по возрастанию кода")
	}

	codes := make([]string, 0, len(locales))
	for _, l := range locales {
		codes = append(codes, l.Code)
		require.NotEmpty(t, l.Name)
	}
	require.Contains(t, codes, "en_US")
}

func TestIntegration_ListLocales_EmptyTable(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	_, err := st.db.Exec(ctx, `DELETE FROM locales`)
	require.NoError(t, err)

	locales, err := st.ListLocales(ctx)
	require.NoError(t, err)
	require.Empty(t, locales)
}

func TestIntegration_GenerateUsers_BatchAndCoordinates(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	users, err := st.GenerateUsers(context.Background(), "en_US", 42, 0, 5)
	require.NoError(t, err)
	require.Len(t, users, 5)

	for _, u := range users {
		lat, ok := u["latitude"].(float64)
		require.True(t, ok, "latitude должна быть float64")
		lon, ok := u["longitude"].(float64)
		require.True(t, ok, "longitude должна быть float64")

		require.GreaterOrEqual(t, lat, -90.0)
		require.Less(t, lat, 90.0)
		require.GreaterOrEqual(t, lon, -180.0)
		require.Less(t, lon, 180.0)
	}
}

func TestIntegration_GenerateUsers_DeterministicBySeed(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	first, err := st.GenerateUsers(ctx, "en_US", 42, 0, 3)
	require.NoError(t, err)
	second, err := st.GenerateUsers(ctx, "en_US", 42, 0, 3)
	require.NoError(t, err)
	require.Equal(t, first, second, "одинаковый seed — одинаковые строки")

	other, err := st.GenerateUsers(ctx, "en_US", 43, 0, 3)
	require.NoError(t, err)
	require.NotEqual(t, first, other, "другой seed — другие строки")
}

func TestIntegration_GenerateUsers_BatchIndexWindows(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	window0, err := st.GenerateUsers(ctx, "en_US", 42, 0, 2)
	require.NoError(t, err)
	window1, err := st.GenerateUsers(ctx, "en_US", 42, 1, 2)
	require.NoError(t, err)

	require.Len(t, window0, 2)
	require.Len(t, window1, 2)
	require.NotEqual(t, window0, window1, "batch_index сдвигает окно последовательности")

	// Окна 0..1 совпадают с первыми 4 строками единого окна.
	combined, err := st.GenerateUsers(ctx, "en_US", 42, 0, 4)
	require.NoError(t, err)
	require.Equal(t, append(window0, window1...), combined)
}

func TestIntegration_GenerateBulk_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	require.NoError(t, st.GenerateBulk(context.Background(), "en_US", 12345, 10000))
}

func TestIntegration_Ping_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	require.NoError(t, st.Ping(context.Background()))
}
