package main

import (
	dbadapter "yatube/internal/adapters/database"
	"yatube/internal/adapters/httpapi"
	mediaadapter "yatube/internal/adapters/media"
	redisadapter "yatube/internal/adapters/redis"
	"yatube/internal/config"
	commentapp "yatube/internal/core/comment/service"
	followerapp "yatube/internal/core/follower/service"
	postapp "yatube/internal/core/post/service"
	userapp "yatube/internal/core/user/service"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	cfg := config.Init() // .env then environment

	db := config.InitDB(cfg)
	if err := dbadapter.Migrate(db); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}
	config.Logger.Info("✅ Database migrations completed")

	redisClient := config.InitRedis(cfg)

	defer closeResources(config.Logger)

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	groupRepo := dbadapter.NewGroupRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	commentRepo := dbadapter.NewCommentRepositoryDatabase(db)
	followerRepo := dbadapter.NewFollowerRepositoryDatabase(db)

	listingCache := redisadapter.NewListingCacheRedis(redisClient, config.Logger)
	storage := mediaadapter.NewFileStorage(cfg.MediaRoot, config.Logger)

	userSvc := userapp.NewUserService(userRepo, []byte(cfg.JWTSecret), config.Logger)
	postSvc := postapp.NewPostService(postRepo, commentRepo, groupRepo, userRepo, storage, cfg.PostsPerPage, cfg.ForbiddenWords, config.Logger)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo, config.Logger)
	followerSvc := followerapp.NewFollowerService(followerRepo, postRepo, cfg.PostsPerPage, config.Logger)

	r := httpapi.SetupRoutes(userSvc, postSvc, commentSvc, followerSvc, listingCache, httpapi.Options{
		LoginURL:      cfg.LoginURL,
		IndexCacheTTL: cfg.IndexCacheTTL,
		Logger:        config.Logger,
	})
	r.Static("/media", cfg.MediaRoot)

	config.Logger.Info("🚀 Yatube is running", zap.String("port", cfg.AppPort))
	if err := r.Run(":" + cfg.AppPort); err != nil {
		config.Logger.Error("Server failed", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
	_ = logger.Sync()
}
