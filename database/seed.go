package database

import (
	"log"

	"github.com/omarashraf/quiz_platform/models"
)

type subjectSeed struct {
	Code        string
	Name        string
	Description string
	Icon        string
}

var subjectSeeds = []subjectSeed{
	{
		Code:        "CSW351-AI",
		Name:        "Artificial Intelligence",
		Description: "AI concepts, machine learning, neural networks, and intelligent systems",
		Icon:        "bi-robot",
	},
	{
		Code:        "INT353-MULTIMEDIA",
		Name:        "Multimedia",
		Description: "Multimedia systems, graphics, audio, video processing, and compression",
		Icon:        "bi-film",
	},
	{
		Code:        "INT341-WEB-TECHNOLOGY",
		Name:        "Web Technology",
		Description: "Web development, HTML, CSS, JavaScript, and modern web frameworks",
		Icon:        "bi-globe",
	},
	{
		Code:        "CSW325-PARALLEL-PROCESSING",
		Name:        "Parallel Processing",
		Description: "Parallel computing, multi-threading, distributed systems, and concurrent programming",
		Icon:        "bi-cpu",
	},
}

// SeedSubjects creates the course subjects when they are missing. Existing
// rows are left untouched so admin edits survive restarts.
func SeedSubjects() {
	created := 0
	for _, seed := range subjectSeeds {
		var count int64
		if err := DB.Model(&models.Subject{}).Where("code = ?", seed.Code).Count(&count).Error; err != nil {
			log.Fatalf("🔥 Failed to check for subject %s: %v", seed.Code, err)
			return
		}
		if count > 0 {
			continue
		}

		subject := models.Subject{
			Code:        seed.Code,
			Name:        seed.Name,
			Description: seed.Description,
			Icon:        seed.Icon,
		}
		if err := DB.Create(&subject).Error; err != nil {
			log.Fatalf("🔥 Failed to seed subject %s: %v", seed.Code, err)
			return
		}
		created++
	}

	if created > 0 {
		log.Printf("✅ Seeded %d subject(s)", created)
	} else {
		log.Println("Subjects already seeded.")
	}
}

// SeedBadges ensures the gamification badges exist.
func SeedBadges() {
	badges := []models.Badge{
		{Name: "First Quiz", Description: "Completed a first quiz", IconURL: "/static/badges/first-quiz.png"},
		{Name: "Perfect Score", Description: "Finished a quiz with every answer correct", IconURL: "/static/badges/perfect-score.png"},
	}

	for _, badge := range badges {
		var count int64
		if err := DB.Model(&models.Badge{}).Where("name = ?", badge.Name).Count(&count).Error; err != nil {
			log.Fatalf("🔥 Failed to check for badge %s: %v", badge.Name, err)
			return
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&badge).Error; err != nil {
			log.Fatalf("🔥 Failed to seed badge %s: %v", badge.Name, err)
			return
		}
	}
}
