package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"strings"

	"recargos-bot/config"
	"recargos-bot/internal/app/service"
	"recargos-bot/internal/delivery/telegram"
	"recargos-bot/internal/repository/memory"
	"recargos-bot/internal/repository/sqlite"
	"recargos-bot/pkg/logger"
	"recargos-bot/pkg/workerpool"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	var extra []string
	flag.Func("holiday", `extra holiday as "YYYY-MM-DD=Nombre" (repeatable)`, func(v string) error {
		extra = append(extra, v)
		return nil
	})
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync() //nolint:errcheck

	lg.Info("starting recargos bot", zap.String("env", cfg.Env), zap.Int("workers", cfg.Workers))

	db, err := sql.Open("sqlite3", cfg.HolidaysDB)
	if err != nil {
		lg.Fatal("open holidays db", zap.Error(err))
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		lg.Fatal("migrate", zap.Error(err))
	}

	ctx := context.Background()
	holidays := service.NewHolidayService(sqlite.NewSqliteHolidayRepo(db), lg)
	if err := holidays.SeedDefaults(ctx); err != nil {
		lg.Fatal("seed holidays", zap.Error(err))
	}
	for _, v := range extra {
		date, name, _ := strings.Cut(v, "=")
		if err := holidays.AddHoliday(ctx, strings.TrimSpace(date), strings.TrimSpace(name)); err != nil {
			lg.Fatal("add holiday", zap.String("value", v), zap.Error(err))
		}
	}
	cal, err := holidays.LoadCalendar(ctx)
	if err != nil {
		lg.Fatal("load holidays", zap.Error(err))
	}

	pool := workerpool.NewWorkerPool(cfg.Workers, cfg.QueueSize)
	defer pool.Close()

	calc := service.NewPayCalculator(cal)
	shifts := service.NewShiftService(
		memory.NewShiftRepo(),
		calc,
		service.NewAsyncService(pool, calc, lg),
	)

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: cfg.PollTimeout},
		OnError: func(err error, c telebot.Context) {
			fields := []zap.Field{zap.Error(err)}
			if c != nil && c.Chat() != nil {
				fields = append(fields, zap.Int64("chat_id", c.Chat().ID))
			}
			lg.Error("handler failed", fields...)
		},
	})
	if err != nil {
		lg.Fatal("create bot", zap.Error(err))
	}

	handler := &telegram.Handler{
		Bot:      bot,
		Shifts:   shifts,
		Log:      lg.Named("telegram"),
		Holidays: cal,
	}
	handler.Register()

	lg.Info("bot started", zap.Int("holidays", cal.Len()))
	bot.Start()
}
