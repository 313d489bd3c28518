package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"orgbook-backend/internal/config"
	"orgbook-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "orgbook"
	pgPassword = "orgbook"
	pgDatabase = "orgbook_test"
)

// One Postgres container serves every suite in the test binary
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite gives a suite the shared database with storage_entries
// emptied around every test
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use.
// Suites are skipped in -short mode.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	if testing.Short() {
		t.Skip("skipping Postgres suite in short mode")
	}
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to start Postgres container: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer closes the pool and purges the container. TestMain
// calls it once the run ends.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool == nil || sharedResource == nil {
		return
	}
	if err := sharedPool.Purge(sharedResource); err != nil {
		log.Printf("WARN: could not purge %s: %v", sharedResource.Container.Name, err)
	}
	sharedPool, sharedResource = nil, nil
}

func (s *BaseTestSuite) SetupTest()         { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest()      { s.CleanTestDB() }
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB deletes every stored collection
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || !s.DB.Migrator().HasTable("storage_entries") {
		return
	}
	s.DB.Exec(`TRUNCATE TABLE "storage_entries"`)
}

// StoredKeys lists the keys present in storage_entries, sorted
func (s *BaseTestSuite) StoredKeys() []string {
	var keys []string
	s.DB.Table("storage_entries").Order("key").Pluck("key", &keys)
	return keys
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		db, err := database.Initialize(dsn, nil)
		if err != nil {
			return err
		}
		sharedDB = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	sharedConfig = &config.Config{
		Environment:   "test",
		Port:          "7008",
		LogLevel:      "debug",
		StorageDriver: config.StorageDriverPostgres,
		DatabaseURL:   dsn,
		MaxUploadMB:   20,
	}

	log.Printf("Shared Postgres ready on port %s", port)
	return nil
}
