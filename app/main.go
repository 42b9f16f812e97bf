package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/kstagehub/kstage-backend/domain"
	mysqlRepo "github.com/kstagehub/kstage-backend/internal/repository/mysql"
	myRedisCache "github.com/kstagehub/kstage-backend/internal/repository/redis"
	"github.com/kstagehub/kstage-backend/internal/workers"

	"github.com/kstagehub/kstage-backend/internal/rest"
	"github.com/kstagehub/kstage-backend/internal/rest/middleware"
	"github.com/kstagehub/kstage-backend/internal/rest/request"
	"github.com/kstagehub/kstage-backend/internal/usecase/artist"
	"github.com/kstagehub/kstage-backend/internal/usecase/comment"
	"github.com/kstagehub/kstage-backend/internal/usecase/user"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	if err := request.RegisterValidations(); err != nil {
		log.Fatal("failed to register request validations: ", err)
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	groupRepo := mysqlRepo.NewGroupRepository(db)
	soloistRepo := mysqlRepo.NewSoloistRepository(db)
	artistRepo := mysqlRepo.NewArtistRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	favoriteRepo := mysqlRepo.NewFavoriteRepository(db)
	artistCache := myRedisCache.NewArtistCache(client)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	viewsSyncer := workers.NewSyncViewsWorker(artistRepo, artistCache)
	go viewsSyncer.Start(ctx)

	// Build service Layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	jwtTTL, err := strconv.Atoi(jwtTTLStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = 24
	}
	artistSvc := artist.NewService(groupRepo, soloistRepo, favoriteRepo, artistCache, bloomRepo)
	userSvc := user.NewService(userRepo, favoriteRepo, artistRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)
	commentSvc := comment.NewService(commentRepo, artistRepo, userRepo, bloomRepo)

	groupHandler := rest.NewGroupHandler(artistSvc)
	soloistHandler := rest.NewSoloistHandler(artistSvc)
	searchHandler := rest.NewSearchHandler(artistSvc)
	userHandler := rest.NewUserHandler(userSvc)
	groupComments := rest.NewCommentHandler(commentSvc, domain.KindGroup)
	soloistComments := rest.NewCommentHandler(commentSvc, domain.KindSoloist)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// Prepare bloom filter
	if err := artistSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	route.POST("/register", userHandler.Register)
	route.POST("/login", userHandler.Login)

	route.GET("/groups", groupHandler.Fetch)
	route.GET("/groups/:id", groupHandler.GetByID)
	route.GET("/groups/:id/members", groupHandler.FetchMembers)
	route.GET("/groups/:id/members/:memberID", groupHandler.GetMember)
	route.GET("/groups/:id/comments", groupComments.Fetch)

	route.GET("/soloists", soloistHandler.Fetch)
	route.GET("/soloists/:id", soloistHandler.GetByID)
	route.GET("/soloists/:id/comments", soloistComments.Fetch)

	route.GET("/search", searchHandler.Search)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.GET("/profile", userHandler.GetProfile)
		authorized.PATCH("/profile", userHandler.UpdateProfile)
		authorized.DELETE("/profile", userHandler.DeleteAccount)

		authorized.GET("/favorites", userHandler.ListFavorites)
		authorized.POST("/favorites", userHandler.AddFavorite)
		authorized.DELETE("/favorites/:kind/:id", userHandler.RemoveFavorite)

		authorized.POST("/groups/:id/comments", groupComments.Create)
		authorized.POST("/groups/:id/comments/:commentID/replies", groupComments.Reply)
		authorized.DELETE("/groups/:id/comments/:commentID", groupComments.Delete)
		authorized.POST("/groups/:id/comments/:commentID/like", groupComments.ToggleLike)

		authorized.POST("/soloists/:id/comments", soloistComments.Create)
		authorized.POST("/soloists/:id/comments/:commentID/replies", soloistComments.Reply)
		authorized.DELETE("/soloists/:id/comments/:commentID", soloistComments.Delete)
		authorized.POST("/soloists/:id/comments/:commentID/like", soloistComments.ToggleLike)
	}

	admin := route.Group("/")
	admin.Use(authMiddleware, middleware.RequireAdmin())
	{
		admin.POST("/groups", groupHandler.Store)
		admin.PUT("/groups/:id", groupHandler.Update)
		admin.DELETE("/groups/:id", groupHandler.Delete)
		admin.POST("/groups/:id/members", groupHandler.AddMember)
		admin.PUT("/groups/:id/members/:memberID", groupHandler.UpdateMember)
		admin.DELETE("/groups/:id/members/:memberID", groupHandler.RemoveMember)

		admin.POST("/soloists", soloistHandler.Store)
		admin.PUT("/soloists/:id", soloistHandler.Update)
		admin.DELETE("/soloists/:id", soloistHandler.Delete)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
