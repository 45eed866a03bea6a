//go:build integration

// Package testutils starts the throwaway MongoDB container the integration
// tests share.
package testutils

import (
	"context"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"nagaralert-be/config"
	"nagaralert-be/models"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedClient   *mongo.Client
	sharedDB       *mongo.Database
	sharedConfig   *config.Config
)

// MongoSuite gives a suite a clean database before every test.
type MongoSuite struct {
	suite.Suite
	DB     *mongo.Database
	Config *config.Config
}

// SetupSuite starts the shared container on first use.
func (s *MongoSuite) SetupSuite() {
	s.DB, s.Config = SharedDatabase(s.T())
}

func (s *MongoSuite) SetupTest() { s.CleanDatabase() }

// CleanDatabase empties every collection but keeps the indexes.
func (s *MongoSuite) CleanDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	names, err := s.DB.ListCollectionNames(ctx, bson.D{})
	s.Require().NoError(err)
	for _, name := range names {
		_, err := s.DB.Collection(name).DeleteMany(ctx, bson.D{})
		s.Require().NoError(err)
	}
}

// SharedDatabase returns the database in the shared container, starting it once.
func SharedDatabase(t *testing.T) (*mongo.Database, *config.Config) {
	sharedOnce.Do(func() { sharedInitErr = initSharedMongoContainer() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return sharedDB, sharedConfig
}

// CleanupSharedContainer disconnects and purges the container. Call it from TestMain.
func CleanupSharedContainer() {
	if sharedClient != nil {
		_ = sharedClient.Disconnect(context.Background())
	}
	if sharedPool != nil && sharedResource != nil {
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge mongo container: %v", err)
		}
	}
	sharedClient, sharedDB, sharedResource, sharedPool = nil, nil, nil, nil
}

func initSharedMongoContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start mongo: %w", err)
	}
	sharedResource = resource
	_ = resource.Expire(300)

	cfg := &config.Config{
		MongoURI:      fmt.Sprintf("mongodb://127.0.0.1:%s", resource.GetPort("27017/tcp")),
		MongoDatabase: "nagaralert_test",
		MongoTimeout:  5 * time.Second,
		LogLevel:      "debug",
		Environment:   "test",
	}

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		client, db, err := config.ConnectDB(context.Background(), cfg)
		if err != nil {
			return err
		}
		sharedClient, sharedDB = client, db
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to mongo container: %w", err)
	}

	if err := models.EnsureIndexes(context.Background(), sharedDB); err != nil {
		return fmt.Errorf("could not create indexes: %w", err)
	}
	sharedConfig = cfg
	log.Printf("shared mongo ready at %s", cfg.MongoURI)
	return nil
}
