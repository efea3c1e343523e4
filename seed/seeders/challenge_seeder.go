package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agri-quest/agriquest_api/model"
	"github.com/agri-quest/agriquest_api/shared"
)

// ChallengeSeeder handles seeding the sustainable-farming challenge catalog.
type ChallengeSeeder struct {
	db *gorm.DB
}

func NewChallengeSeeder(db *gorm.DB) *ChallengeSeeder {
	return &ChallengeSeeder{db: db}
}

// SeedChallenges inserts the challenge catalog, skipping titles that already
// exist.
func (s *ChallengeSeeder) SeedChallenges() error {
	for _, challenge := range s.getChallenges() {
		var existing model.Challenge
		err := s.db.Where("title = ?", challenge.Title).First(&existing).Error
		if err == nil {
			log.Printf("Challenge %q already exists, skipping", challenge.Title)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := s.db.Create(&challenge).Error; err != nil {
			log.Printf("Error creating challenge %q: %v", challenge.Title, err)
			return err
		}
		log.Printf("Created challenge: %s", challenge.Title)
	}

	log.Println("Challenge seeding completed successfully")
	return nil
}

func (s *ChallengeSeeder) getChallenges() []model.Challenge {
	now := time.Now()

	type row struct {
		title, description, difficulty, criteria, imageURL string
		xpReward                                           int
	}

	rows := []row{
		{
			title:       "24-Hour Drip Irrigation Trial",
			description: "Switch from flood irrigation to drip irrigation for one day and document water savings. Take before and after photos of your irrigation setup.",
			xpReward:    50,
			difficulty:  shared.DifficultyEasy,
			criteria:    "Photo proof of drip irrigation setup and water usage comparison",
			imageURL:    "/uploads/challenges/drip-irrigation.jpg",
		},
		{
			title:       "Organic Compost Application",
			description: "Apply homemade organic compost to a section of your field instead of chemical fertilizers. Monitor plant growth over 2 weeks.",
			xpReward:    75,
			difficulty:  shared.DifficultyMedium,
			criteria:    "Before/after photos and growth measurement documentation",
			imageURL:    "/uploads/challenges/compost.jpg",
		},
		{
			title:       "Green Manure Patch Planting",
			description: "Plant nitrogen-fixing crops like legumes in a 10x10 meter patch to naturally improve soil fertility.",
			xpReward:    100,
			difficulty:  shared.DifficultyMedium,
			criteria:    "Photo of planted area and soil test results if available",
			imageURL:    "/uploads/challenges/green-manure.jpg",
		},
		{
			title:       "Natural Pest Trap Deployment",
			description: "Create and deploy natural pest traps using eco-friendly materials. Monitor effectiveness over 1 week.",
			xpReward:    60,
			difficulty:  shared.DifficultyEasy,
			criteria:    "Photos of traps and pest count documentation",
			imageURL:    "/uploads/challenges/pest-trap.jpg",
		},
		{
			title:       "Mulching Experiment",
			description: "Apply organic mulch (straw, leaves, grass clippings) to crop rows to conserve moisture and suppress weeds.",
			xpReward:    40,
			difficulty:  shared.DifficultyEasy,
			criteria:    "Before and after photos showing mulch application",
			imageURL:    "/uploads/challenges/mulching.jpg",
		},
		{
			title:       "Rainwater Harvesting Setup",
			description: "Install a simple rainwater collection system for irrigation. Document water collected over one month.",
			xpReward:    120,
			difficulty:  shared.DifficultyHard,
			criteria:    "Photos of setup and water collection measurements",
			imageURL:    "/uploads/challenges/rainwater.jpg",
		},
		{
			title:       "Companion Planting Trial",
			description: "Plant beneficial companion crops together (like tomatoes with basil, or corn with beans) to improve growth naturally.",
			xpReward:    80,
			difficulty:  shared.DifficultyMedium,
			criteria:    "Layout photo and growth comparison with non-companion plants",
			imageURL:    "/uploads/challenges/companion.jpg",
		},
		{
			title:       "Soil pH Testing & Natural Correction",
			description: "Test your soil pH and use natural methods (lime, compost, etc.) to adjust if needed. Retest after 2 weeks.",
			xpReward:    90,
			difficulty:  shared.DifficultyMedium,
			criteria:    "pH test results before and after treatment",
			imageURL:    "/uploads/challenges/soil-ph.jpg",
		},
		{
			title:       "Beneficial Insect Habitat Creation",
			description: "Create habitat for beneficial insects by planting native flowers or building insect hotels.",
			xpReward:    70,
			difficulty:  shared.DifficultyMedium,
			criteria:    "Photos of habitat and any beneficial insects observed",
			imageURL:    "/uploads/challenges/insect-habitat.jpg",
		},
		{
			title:       "Zero-Waste Farming Day",
			description: "Spend one full day farming with zero waste - compost all organic matter, reuse materials, minimize packaging.",
			xpReward:    110,
			difficulty:  shared.DifficultyHard,
			criteria:    "Documentation of waste reduction activities and results",
			imageURL:    "/uploads/challenges/zero-waste.jpg",
		},
	}

	challenges := make([]model.Challenge, 0, len(rows))
	for _, r := range rows {
		id, _ := uuid.NewV7()
		challenges = append(challenges, model.Challenge{
			ID:          id.String(),
			Title:       r.title,
			Description: r.description,
			XPReward:    r.xpReward,
			Difficulty:  r.difficulty,
			Criteria:    r.criteria,
			ImageURL:    r.imageURL,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return challenges
}
