package main

import (
	"context"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"alfredoptarigan/job-board/internal/config"
	"alfredoptarigan/job-board/internal/models"
	"alfredoptarigan/job-board/internal/repositories"
)

type seedFile struct {
	Employers  []models.Employer `yaml:"employers"`
	Categories []struct {
		JobID uint     `yaml:"jobId"`
		Names []string `yaml:"names"`
	} `yaml:"categories"`
}

func main() {
	log.Println("🚀 Starting employer seeding...")

	path := "./seed/employers.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file %s: %v", path, err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("❌ Failed to parse seed file %s: %v", path, err)
	}

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	employerRepo := repositories.NewEmployerRepository(db)
	ctx := context.Background()

	successCount := 0
	failCount := 0

	for i := range seed.Employers {
		employer := &seed.Employers[i]
		log.Printf("\n🏢 Processing: %s (%s)", employer.CompanyName, employer.CompanyRegistrationNo)

		if employer.CompanyRegistrationNo == "" || employer.CompanyName == "" {
			log.Printf("   ⚠️  Missing registration number or name, skipping...")
			failCount++
			continue
		}

		existing, err := employerRepo.FindByRegistrationNo(ctx, employer.CompanyRegistrationNo)
		if err != nil && repositories.KindOf(err) != repositories.KindNotFound {
			log.Printf("   ❌ Failed to look up employer: %v", err)
			failCount++
			continue
		}

		if err := employerRepo.Upsert(ctx, employer); err != nil {
			log.Printf("   ❌ Failed to upsert employer: %v", err)
			failCount++
			continue
		}

		if existing != nil {
			log.Printf("   🔄 Employer updated (was %s)", existing.CompanyName)
		} else {
			log.Printf("   ✅ Employer created")
		}
		successCount++
	}

	for _, entry := range seed.Categories {
		log.Printf("\n🏷️  Job %d categories: %s", entry.JobID, strings.Join(entry.Names, ", "))

		if err := employerRepo.ReplaceCategories(ctx, entry.JobID, entry.Names); err != nil {
			if repositories.KindOf(err) == repositories.KindForeignKey {
				log.Printf("   ⚠️  Job %d does not exist, skipping...", entry.JobID)
			} else {
				log.Printf("   ❌ Failed to store categories: %v", err)
			}
			failCount++
			continue
		}

		log.Printf("   ✅ Categories stored")
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Seeding Summary:")
	log.Printf("   ✅ Successful: %d entries", successCount)
	log.Printf("   ❌ Failed: %d entries", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some entries failed to seed. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All entries seeded successfully!")
}
