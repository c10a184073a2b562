//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"kitchen_cali/internal/catalog"
	"kitchen_cali/internal/domain"
	mysqlsrc "kitchen_cali/internal/storage/mysql"
)

func migrationsDir(t *testing.T) string {
	t.Helper()
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("..", "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir(t)

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=kitchen_cali",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/kitchen_cali?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func TestSource_MySQL_UpsertAndLoad(t *testing.T) {
	db := startMySQL(t)
	src := mysqlsrc.New(db)
	ctx := context.Background()

	want := catalog.Builtin().All()
	if err := src.UpsertCaterers(ctx, want); err != nil {
		t.Fatalf("UpsertCaterers: %v", err)
	}
	// second run must not duplicate rows
	if err := src.UpsertCaterers(ctx, want); err != nil {
		t.Fatalf("UpsertCaterers again: %v", err)
	}

	got, err := src.LoadCaterers(ctx)
	if err != nil {
		t.Fatalf("LoadCaterers: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d caterers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Slug != want[i].Slug || got[i].Rating != want[i].Rating || got[i].PriceTier != want[i].PriceTier {
			t.Fatalf("row %d: want %+v, got %+v", i, want[i], got[i])
		}
		if len(got[i].SampleMenu) != len(want[i].SampleMenu) || len(got[i].Cuisines) != len(want[i].Cuisines) {
			t.Fatalf("row %d: JSON columns did not round trip: %+v", i, got[i])
		}
	}

	c, err := catalog.FromSource(ctx, src)
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	if c.Len() != len(want) {
		t.Fatalf("catalog size %d", c.Len())
	}
}

func TestSource_MySQL_OptionalColumns(t *testing.T) {
	db := startMySQL(t)
	src := mysqlsrc.New(db)
	ctx := context.Background()

	bare := domain.Caterer{
		Slug: "bare-bones-bbq", Name: "Bare Bones BBQ", County: "Riverside", City: "Temecula",
		PriceTier: domain.PriceBudget, Rating: 3.5,
	}
	if err := src.UpsertCaterers(ctx, []domain.Caterer{bare}); err != nil {
		t.Fatalf("UpsertCaterers: %v", err)
	}
	got, err := src.LoadCaterers(ctx)
	if err != nil {
		t.Fatalf("LoadCaterers: %v", err)
	}
	if len(got) != 1 || got[0].Tagline != "" || got[0].Services != nil || len(got[0].Cuisines) != 0 {
		t.Fatalf("unexpected row: %+v", got)
	}
}
