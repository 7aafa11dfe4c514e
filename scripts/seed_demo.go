// Seed script for demo deployments.
//
// Creates one account per role plus a small published pre-test bank so the
// portal can be clicked through right after a fresh migration.
//
// Usage: go run scripts/seed_demo.go

package main

import (
	"encoding/json"
	"log"

	"gleam_backend/internal/config"
	"gleam_backend/internal/model"
	"gleam_backend/pkg/database"
	"gleam_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("gleam12345"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}

	demoUsers := []model.User{
		{Name: "Admin GLEAM", Email: "admin@gleam.local", Role: model.Admin},
		{Name: "Super Admin", Email: "superadmin@gleam.local", Role: model.SuperAdmin},
		{Name: "Manajemen", Email: "management@gleam.local", Role: model.Management},
		{Name: "Petugas Kesehatan", Email: "petugas@gleam.local", Role: model.HealthWorker},
		{Name: "Pasien Demo", Email: "pasien@gleam.local", Role: model.Patient},
	}

	for _, u := range demoUsers {
		u.Password = string(hash)
		var count int64
		db.Model(&model.User{}).Where("email = ?", u.Email).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&u).Error; err != nil {
			log.Fatalf("failed to create %s: %v", u.Email, err)
		}
		log.Printf("created %s (%s)", u.Email, u.Role)
	}

	var bank model.QuestionBank
	if err := db.Where("test_type = ?", model.PreTest).First(&bank).Error; err != nil {
		log.Fatalf("no pre-test bank found, run migration first: %v", err)
	}

	var questionCount int64
	db.Model(&model.Question{}).Where("bank_id = ?", bank.ID).Count(&questionCount)
	if questionCount == 0 {
		options, _ := json.Marshal([]model.QuestionOption{
			{Number: 1, Text: "Penyakit menular"},
			{Number: 2, Text: "Penyakit gangguan metabolisme gula darah"},
			{Number: 3, Text: "Penyakit kulit"},
		})

		questions := []model.Question{
			{BankID: bank.ID, Content: "Apa itu diabetes melitus?", QuestionType: model.QuestionMultipleChoice, Options: options, AnswerKey: "2", Weight: 10, Order: 1},
			{BankID: bank.ID, Content: "Olahraga teratur membantu mengontrol gula darah.", QuestionType: model.QuestionTrueFalse, AnswerKey: "true", Weight: 5, Order: 2},
			{BankID: bank.ID, Content: "Sebutkan salah satu gejala umum diabetes.", QuestionType: model.QuestionFreeResponse, AnswerKey: "sering haus", Weight: 5, Order: 3},
		}
		for _, q := range questions {
			if err := db.Create(&q).Error; err != nil {
				log.Fatalf("failed to create question: %v", err)
			}
		}

		bank.Status = model.BankStatusPublished
		if err := db.Save(&bank).Error; err != nil {
			log.Fatalf("failed to publish bank: %v", err)
		}
		log.Printf("seeded and published bank %q with %d questions", bank.Name, len(questions))
	}

	log.Println("done")
}
