package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"stock_history/internal/app/di"
	baradapters "stock_history/internal/feature/bars/adapters"
	barusecase "stock_history/internal/feature/bars/usecase"
	symboladapters "stock_history/internal/feature/symbollist/adapters"
	symbolusecase "stock_history/internal/feature/symbollist/usecase"
	"stock_history/internal/platform/db"
	"stock_history/internal/shared/ratelimiter"
)

const (
	defaultStartDate = "2000-01-01"
	defaultInterval  = "60min"
	defaultRateLimit = 30 // requests per minute (free tier headroom)
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	gdb := db.OpenDB()
	marketRepo := di.NewMarket()
	barRepo := baradapters.NewBarRepository(gdb)
	symbolRepo := symboladapters.NewSymbolRepository(gdb)
	limiter := ratelimiter.NewRateLimiter(rateLimitFromEnv(), time.Minute)

	uc := barusecase.NewIngestUsecase(marketRepo, barRepo, limiter)

	// 数年分の履歴はレートリミットの関係で長時間かかるためタイムアウトは設けない
	ctx := context.Background()

	symbols := symbolsFromEnv()
	if len(symbols) == 0 {
		symbolUC := symbolusecase.NewSymbolUsecase(symbolRepo)
		var err error
		symbols, err = symbolUC.ActiveCodesOrDefault(ctx)
		if err != nil {
			log.Fatal("failed to load symbols:", err)
		}
	}

	start := startDateFromEnv()
	interval := envOr("INGEST_INTERVAL", defaultInterval)

	units := barusecase.PlanUnits(start, time.Now().UTC(), symbols, interval)
	rep := uc.Run(ctx, units)

	log.Printf("ingest done: planned=%d skipped=%d ingested=%d empty=%d failed=%d",
		rep.Planned, rep.Skipped, rep.Ingested, rep.Empty, rep.Failed)
}

// symbolsFromEnv はSYMBOLS環境変数（カンマ区切り）を読み取ります。
// 未設定の場合は空を返し、銘柄テーブルから読み込みます。
func symbolsFromEnv() []string {
	raw := os.Getenv("SYMBOLS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func startDateFromEnv() time.Time {
	raw := envOr("INGEST_START_DATE", defaultStartDate)
	t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		log.Fatalf("invalid INGEST_START_DATE %q: %v", raw, err)
	}
	return t
}

func rateLimitFromEnv() int {
	raw := os.Getenv("RATE_LIMIT_PER_MINUTE")
	if raw == "" {
		return defaultRateLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Fatalf("invalid RATE_LIMIT_PER_MINUTE %q", raw)
	}
	return n
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
