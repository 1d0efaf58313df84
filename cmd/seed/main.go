package main

import (
	"encoding/json"
	"log"
	"os"

	"hireup-be/internal/model"
	"hireup-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

func skills(list ...string) datatypes.JSON {
	raw, _ := json.Marshal(list)
	return datatypes.JSON(raw)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	companyId := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	jobs := []model.Job{
		{
			Id:          uuid.MustParse("22222222-2222-2222-2222-222222222221"),
			CompanyId:   companyId,
			Title:       "Backend Engineer",
			Description: "Build and operate Go services backing the hiring platform.",
			Skills:      skills("go", "postgresql", "redis", "nats"),
			Status:      "open",
		},
		{
			Id:          uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			CompanyId:   companyId,
			Title:       "Frontend Engineer",
			Description: "Own the recruiter dashboard and candidate-facing pages.",
			Skills:      skills("typescript", "react", "css"),
			Status:      "open",
		},
	}

	candidates := []model.Candidate{
		{
			Id:         uuid.MustParse("33333333-3333-3333-3333-333333333331"),
			Name:       "Ana Silva",
			Email:      "ana.silva@example.com",
			Skills:     skills("go", "postgresql", "docker"),
			ResumeText: "Five years building payment backends in Go.",
			GradDate:   "2019-06",
		},
		{
			Id:         uuid.MustParse("33333333-3333-3333-3333-333333333332"),
			Name:       "Budi Santoso",
			Email:      "budi.santoso@example.com",
			Skills:     skills("typescript", "react", "go"),
			ResumeText: "Full-stack engineer, dashboard heavy products.",
			GradDate:   "2021-08",
		},
		{
			Id:         uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Name:       "Chitra Dewi",
			Email:      "chitra.dewi@example.com",
			Skills:     skills("python", "pandas"),
			ResumeText: "Data analyst moving into engineering.",
			GradDate:   "2023-01",
		},
	}

	// Re-running the seeder must not duplicate rows.
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&jobs).Error; err != nil {
		log.Fatal("Error: Failed to seed jobs:", err)
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&candidates).Error; err != nil {
		log.Fatal("Error: Failed to seed candidates:", err)
	}

	log.Printf("✅ Seeded %d jobs and %d candidates (company %s)", len(jobs), len(candidates), companyId)
}
