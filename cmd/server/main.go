package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_history/internal/app/router"
	baradapters "stock_history/internal/feature/bars/adapters"
	barhandler "stock_history/internal/feature/bars/transport/handler"
	barusecase "stock_history/internal/feature/bars/usecase"
	symboladapters "stock_history/internal/feature/symbollist/adapters"
	symbolhandler "stock_history/internal/feature/symbollist/transport/handler"
	symbolusecase "stock_history/internal/feature/symbollist/usecase"
	"stock_history/internal/platform/cache"
	"stock_history/internal/platform/db"
	platformredis "stock_history/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	gdb := db.OpenDB()

	// Redis（無くてもキャッシュ無しで動作する）
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	barRepo := baradapters.NewBarRepository(gdb)
	symbolRepo := symboladapters.NewSymbolRepository(gdb)

	// Redisキャッシュでラップ
	ttl := cache.TimeUntilNextMidnightET()
	cachedBarRepo := cache.NewCachingBarRepository(rdb, ttl, barRepo, "bars")

	// Usecase
	barsUC := barusecase.NewBarsUsecase(cachedBarRepo)
	symbolUC := symbolusecase.NewSymbolUsecase(symbolRepo)

	// Handler
	barsH := barhandler.NewBarsHandler(barsUC)
	symbolH := symbolhandler.NewSymbolHandler(symbolUC)

	// ルータ生成
	r := router.NewRouter(barsH, symbolH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
