package main

import (
	"context"
	"fmt"
	stdLog "log"
	"os"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/mzhasan/lending-service/lending/config"
	"github.com/mzhasan/lending-service/lending/internal/model"
	"github.com/mzhasan/lending-service/lending/migrations"
	"github.com/mzhasan/lending-service/pkg/logger"
	"github.com/mzhasan/lending-service/pkg/postgres"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func main() {
	var (
		books      int
		members    int
		borrowings int
	)

	root := &cobra.Command{
		Use:   "seeder",
		Short: "Populate the lending database with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				stdLog.Println("load envs from .env ", err)
			}
			cfg := config.NewConfig(config.WithLogLevel(zapcore.InfoLevel))
			return seed(cmd.Context(), cfg, books, members, borrowings)
		},
	}
	root.Flags().IntVar(&books, "books", 20, "number of books to create")
	root.Flags().IntVar(&members, "members", 15, "number of members to create")
	root.Flags().IntVar(&borrowings, "borrowings", 15, "number of borrowing records to create")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func seed(ctx context.Context, cfg *config.Config, books, members, borrowings int) error {
	log := logger.NewLogger(cfg.Log, "seeder")
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return err
	}
	defer db.Close()

	var (
		bookIDs   []int64
		memberIDs []int64
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		bookIDs, err = seedBooks(gctx, db, books)
		return err
	})
	gg.Go(func() error {
		var err error
		memberIDs, err = seedMembers(gctx, db, members)
		return err
	})
	if err := gg.Wait(); err != nil {
		return err
	}

	if err := seedBorrowings(ctx, db, bookIDs, memberIDs, borrowings); err != nil {
		return err
	}

	log.Info("seed finished",
		zap.Int("books", len(bookIDs)),
		zap.Int("members", len(memberIDs)),
		zap.Int("borrowings", borrowings),
	)
	return nil
}

func seedBooks(ctx context.Context, db *sqlx.DB, n int) ([]int64, error) {
	b := qb.Insert("book").Columns("title", "author", "isbn")
	for i := 1; i <= n; i++ {
		b = b.Values(
			fmt.Sprintf("Book %d", i),
			fmt.Sprintf("Author %d", i),
			fmt.Sprintf("ISBN%05d", i),
		)
	}
	query, args, err := b.Suffix("returning id").ToSql()
	if err != nil {
		return nil, err
	}
	var ids []int64
	if err := db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, err
	}
	return ids, nil
}

func seedMembers(ctx context.Context, db *sqlx.DB, n int) ([]int64, error) {
	b := qb.Insert("member").Columns("name", "email")
	for i := 1; i <= n; i++ {
		b = b.Values(
			fmt.Sprintf("Member %d", i),
			fmt.Sprintf("member%d@example.com", i),
		)
	}
	query, args, err := b.Suffix("returning id").ToSql()
	if err != nil {
		return nil, err
	}
	var ids []int64
	if err := db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, err
	}
	return ids, nil
}

// seedBorrowings rotates through books and members; odd records are already
// returned, even ones stay outstanding.
func seedBorrowings(ctx context.Context, db *sqlx.DB, bookIDs, memberIDs []int64, n int) error {
	if len(bookIDs) == 0 || len(memberIDs) == 0 {
		return nil
	}
	b := qb.Insert("borrowing_record").Columns("borrow_date", "return_date", "book_id", "member_id")
	today := model.Today()
	for i := 1; i <= n; i++ {
		var returnDate interface{}
		if i%2 != 0 {
			returnDate = today
		}
		b = b.Values(
			today,
			returnDate,
			bookIDs[i%len(bookIDs)],
			memberIDs[i%len(memberIDs)],
		)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, query, args...)
	return err
}
