package database

import (
	"fmt"
	"gleam_backend/internal/config"
	"gleam_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DBName,
		dbCfg.Charset,
		dbCfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Release deployments migrate on demand only, never implicitly.
	if cfg.Server.Mode == "release" && !cfg.ForceMigrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.QuestionBank{},
		&model.Question{},
		&model.Submission{},
		&model.ScreeningRecord{},
		&model.Material{},
		&model.Feedback{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Every deployment needs one pre and one post bank so the portal's
	// quiz pages have something to point at.
	var count int64
	db.Model(&model.QuestionBank{}).Count(&count)
	if count == 0 {
		defaultBanks := []model.QuestionBank{
			{Name: "Kuisioner Pre Test", Description: "Kuisioner sebelum materi edukasi", TestType: model.PreTest, Status: model.BankStatusDraft},
			{Name: "Kuisioner Post Test", Description: "Kuisioner sesudah materi edukasi", TestType: model.PostTest, Status: model.BankStatusDraft},
		}
		for _, b := range defaultBanks {
			db.Create(&b)
		}
	}

	return db, nil
}
