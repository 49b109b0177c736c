package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/fuyo-dev/shift-scheduler/backend/internal/config"
	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
	"github.com/fuyo-dev/shift-scheduler/backend/internal/repository"
	"github.com/fuyo-dev/shift-scheduler/backend/internal/seed"
	"github.com/fuyo-dev/shift-scheduler/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "実行する操作 (1: ランダムな従業員を投入, 2: ランダムな管理者を投入, 3: デモデータを投入)")
	flag.IntVar(&n, "n", 5, "投入する件数")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("設定を読み込めません", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// データベース接続プールの作成
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("データベース接続プールを作成できません", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open は接続プールを作るだけで実際には接続しないため、明示的に ping する
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("データベースに接続できません", "error", err)
		return
	}

	// repository の作成
	clock := domain.SystemClock{}
	repo := repository.NewRepository(cfg, dbpool, clock)

	// 操作の実行
	switch op {
	case 0:
		slog.Error("操作が指定されていません")
	case 1:
		if n <= 0 {
			slog.Error("投入する従業員数が不正です")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				employee, err := utils.GenerateRandomEmployee()
				if err != nil {
					slog.Error("従業員を生成できません", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateEmployee(employee); err != nil {
					slog.Error("従業員を投入できません", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("従業員を投入しました", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("投入する管理者数が不正です")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				manager, err := utils.GenerateRandomManager(cfg.Seed.Manager.Password, "example.com")
				if err != nil {
					slog.Error("管理者を生成できません", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateManager(manager); err != nil {
					slog.Error("管理者を投入できません", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("管理者を投入しました", slog.Int("count", n-cnt))
		}
	case 3:
		seed.SeedDemoData(repo, clock)
	default:
		slog.Error("指定された操作が不正です")
	}
}
