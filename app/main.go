package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Guyuepp/bloglist/domain"
	"github.com/Guyuepp/bloglist/internal/auth"
	"github.com/Guyuepp/bloglist/internal/config"
	"github.com/Guyuepp/bloglist/internal/logging"
	"github.com/Guyuepp/bloglist/internal/repository"
	mongoRepo "github.com/Guyuepp/bloglist/internal/repository/mongo"
	mysqlRepo "github.com/Guyuepp/bloglist/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/bloglist/internal/repository/redis"
	"github.com/Guyuepp/bloglist/internal/rest"
	"github.com/Guyuepp/bloglist/internal/rest/middleware"
	"github.com/Guyuepp/bloglist/internal/usecase/blog"
	"github.com/Guyuepp/bloglist/internal/usecase/stats"
	"github.com/Guyuepp/bloglist/internal/usecase/user"
	"github.com/Guyuepp/bloglist/internal/workers"
)

const shutdownTimeout = 5 * time.Second

// store is the persistence backend picked by DATABASE_DRIVER
type store struct {
	blogs domain.BlogRepository
	users domain.UserRepository
	ping  rest.HealthCheck
	close func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	if err := logging.Setup(cfg.App.LogLevel, cfg.App.LogFormat, os.Stdout); err != nil {
		logrus.Fatal(err)
	}
	gin.SetMode(cfg.App.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// prepare database
	var db *store
	switch cfg.Database.Driver {
	case config.DriverMongo:
		db, err = openMongo(ctx, cfg.Database)
	default:
		db, err = openMySQL(ctx, cfg.Database)
	}
	if err != nil {
		logrus.Fatalf("could not connect to database after retries: %v", err)
	}
	defer db.close()

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Address(),
		Password: cfg.Cache.Pass,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("failed to open connection to cache: %v", err)
	}

	// Blog相关的三层架构
	// 1. DB层 db.blogs
	// 2. Cache层
	blogCache := myRedisCache.NewBlogCache(client)
	// 3. Repository协调层
	blogRepo := repository.NewBlogRepository(db.blogs, blogCache, db.users, cfg.Cache.ListTTL)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.Cache.BloomBitSize)

	likesSyncer := workers.NewSyncLikesWorker(blogRepo, cfg.App.LikesBatchSize, cfg.App.LikesFlushInterval)

	// Build service Layer
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	blogSvc := blog.NewService(blogRepo, db.users, bloomRepo, likesSyncer)
	userSvc := user.NewService(db.users, issuer)
	statsSvc := stats.NewService(db.blogs)

	// Prepare bloom filter
	if err := blogSvc.InitBloomFilter(ctx); err != nil {
		logrus.Fatalf("failed to init bloom filter: %v", err)
	}

	// prepare gin
	metrics := middleware.NewHTTPMetrics()
	route := gin.New()
	route.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		metrics.Middleware(),
		middleware.SetRequestContextWithTimeout(cfg.Server.RequestTimeout()),
	)
	route.GET("/metrics", gin.WrapH(metrics.Handler()))

	rest.Handlers{
		Blog:  rest.NewBlogHandler(blogSvc),
		User:  rest.NewUserHandler(userSvc, blogSvc),
		Stats: rest.NewStatsHandler(statsSvc),
		Health: rest.NewHealthHandler(map[string]rest.HealthCheck{
			"database": db.ping,
			"cache":    func(ctx context.Context) error { return client.Ping(ctx).Err() },
		}),
	}.Register(route, middleware.AuthMiddleware(issuer))

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           route,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// the worker outlives the server so likes accepted during shutdown still get flushed
	workerCtx, stopWorker := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorker()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		likesSyncer.Start(workerCtx)
		return nil
	})
	g.Go(func() error {
		logrus.Infof("Server is running on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutdown signal received, stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		defer stopWorker()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.Errorf("server stopped with error: %v", err)
	}
	logrus.Info("Server exiting")
}

func openMySQL(ctx context.Context, cfg config.DatabaseConfig) (*store, error) {
	var (
		db  *gorm.DB
		err error
	)
	err = retry(ctx, cfg, func() error {
		db, err = gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := mysqlRepo.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &store{
		blogs: mysqlRepo.NewBlogRepository(db),
		users: mysqlRepo.NewUserRepository(db),
		ping:  sqlDB.PingContext,
		close: func() {
			if err := sqlDB.Close(); err != nil {
				logrus.Errorf("got error when closing the DB connection: %v", err)
			}
		},
	}, nil
}

func openMongo(ctx context.Context, cfg config.DatabaseConfig) (*store, error) {
	var client *mongo.Client
	err := retry(ctx, cfg, func() error {
		c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return err
		}
		if err := c.Ping(ctx, nil); err != nil {
			_ = c.Disconnect(context.Background())
			return err
		}
		client = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	database := client.Database(cfg.MongoDatabase)
	if err := mongoRepo.EnsureIndexes(ctx, database); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	return &store{
		blogs: mongoRepo.NewBlogRepository(database),
		users: mongoRepo.NewUserRepository(database),
		ping:  func(ctx context.Context) error { return client.Ping(ctx, nil) },
		close: func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logrus.Errorf("got error when closing the DB connection: %v", err)
			}
		},
	}, nil
}

func retry(ctx context.Context, cfg config.DatabaseConfig, connect func() error) error {
	var err error
	for i := range cfg.MaxRetry {
		if err = connect(); err == nil {
			return nil
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, cfg.MaxRetry, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cfg.RetryInterval):
		}
	}
	return err
}
