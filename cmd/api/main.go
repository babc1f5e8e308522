package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "coopfin/internal/adapter/http"
	mw "coopfin/internal/adapter/middleware"
	"coopfin/internal/adapter/repository/mysql"
	"coopfin/internal/config"
	"coopfin/internal/domain/loan"
	"coopfin/internal/domain/member"
	"coopfin/internal/domain/setting"
	"coopfin/internal/domain/transaction"
	"coopfin/internal/infrastructure/cache"
	"coopfin/internal/infrastructure/db"
	dashboardUC "coopfin/internal/usecase/dashboard"
	loanUC "coopfin/internal/usecase/loan"
	memberUC "coopfin/internal/usecase/member"
	reportUC "coopfin/internal/usecase/report"
	settingUC "coopfin/internal/usecase/setting"
	txnUC "coopfin/internal/usecase/transaction"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&member.Member{}, &loan.Loan{}, &transaction.Transaction{}, &setting.Setting{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	members := mysql.NewMemberRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	txns := mysql.NewTransactionRepository(gdb)
	settings := mysql.NewSettingRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loanUC.NewUsecase(loans, members, txns, settings, unit))
	txnH := httpadp.NewTransactionHandler(txnUC.NewUsecase(txns, members))
	memberH := httpadp.NewMemberHandler(memberUC.NewUsecase(members, txns))
	settingH := httpadp.NewSettingHandler(settingUC.NewUsecase(settings, unit))
	reportH := httpadp.NewReportHandler(reportUC.NewUsecase(members, loans, txns))
	dashH := httpadp.NewDashboardHandler(dashboardUC.NewUsecase(members, loans, txns))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	staff := e.Group("", mw.RequireActor(mw.RoleAdmin, mw.RoleOfficer))
	staff.Use(mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	staff.POST("/members", memberH.Register)
	staff.GET("/members", memberH.List)
	staff.GET("/members/:member_id", memberH.Get)
	staff.GET("/members/:member_id/statement", reportH.Statement)

	staff.POST("/transactions", txnH.Record)
	staff.GET("/transactions", txnH.List)

	staff.POST("/loans", loanH.Apply)
	staff.GET("/loans", loanH.List)
	staff.GET("/loans/:loan_id", loanH.Get)
	staff.PATCH("/loans/:loan_id", loanH.Transition)
	staff.POST("/loans/:loan_id/payments", loanH.RecordPayment)

	staff.GET("/dashboard", dashH.Stats)
	staff.GET("/reports/:type", reportH.Generate)

	staff.GET("/settings", settingH.Get)
	admin := e.Group("", mw.RequireActor(mw.RoleAdmin))
	admin.Use(mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	admin.PUT("/settings", settingH.Update)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
