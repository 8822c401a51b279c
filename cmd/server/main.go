package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"hempdb/config"
	"hempdb/database"
	"hempdb/router"

	catalogCtrlImp "hempdb/pkg/catalog/controllerImp"
	"hempdb/pkg/catalog/memoryImp"
	"hempdb/pkg/catalog/repository"
	"hempdb/pkg/catalog/repositoryImp"
	"hempdb/pkg/seed"

	healthCtrlImp "hempdb/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Storage
	var (
		st repository.Storage
		db *gorm.DB
	)
	if cfg.Storage == "memory" {
		st = memoryImp.New()
	} else {
		var err error
		db, err = database.Open(cfg)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		st = repositoryImp.New(db)
	}

	// 3) Seed (once per database; advisory lock covers multi-replica starts)
	if cfg.SeedOnStart {
		var rows []seed.ProductRow
		if cfg.SeedXLSX != "" {
			var err error
			rows, err = seed.LoadProductsXLSX(cfg.SeedXLSX)
			if err != nil {
				log.Fatalf("seed xlsx: %v", err)
			}
		}
		run := func() error { return seed.Run(st, rows) }
		var err error
		if gs, ok := st.(*repositoryImp.Store); ok {
			err = gs.WithAdvisoryLock(seed.LockKey, run)
		} else {
			err = run()
		}
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	// 4) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	// 5) Controllers
	plantCtrl := catalogCtrlImp.NewPlant(st)
	industryCtrl := catalogCtrlImp.NewIndustry(st)
	productCtrl := catalogCtrlImp.NewProduct(st)
	researchCtrl := catalogCtrlImp.NewResearch(st, cfg.ImportAllowedDomains)
	statsCtrl := catalogCtrlImp.NewStats(st)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.Storage)

	// 6) Router
	r := router.New(e, plantCtrl, industryCtrl, productCtrl, researchCtrl, statsCtrl, healthCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
