package seeders

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agri-quest/agriquest_api/model"
)

// FarmerSeeder handles seeding demo farmer profiles.
type FarmerSeeder struct {
	db *gorm.DB
}

func NewFarmerSeeder(db *gorm.DB) *FarmerSeeder {
	return &FarmerSeeder{db: db}
}

// SeedFarmers inserts the demo farmer roster. Existing names are skipped so
// the seeder is safe to rerun.
func (s *FarmerSeeder) SeedFarmers() error {
	for _, farmer := range s.getFarmers() {
		var existing model.Farmer
		err := s.db.Where("name = ?", farmer.Name).First(&existing).Error
		if err == nil {
			log.Printf("Farmer %s already exists, skipping", farmer.Name)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := s.db.Create(&farmer).Error; err != nil {
			log.Printf("Error creating farmer %s: %v", farmer.Name, err)
			return err
		}
		log.Printf("Created farmer: %s", farmer.Name)
	}

	log.Println("Farmer seeding completed successfully")
	return nil
}

func (s *FarmerSeeder) getFarmers() []model.Farmer {
	now := time.Now()

	type row struct {
		name, village, region string
		xp, ecoScore          int
		badges                []string
	}

	rows := []row{
		{"Demo Farmer", "Green Valley", "Maharashtra", 150, 75, []string{"eco-newcomer", "first-scan"}},
		{"Rajesh Kumar", "Sunrise Village", "Maharashtra", 450, 88, []string{"eco-warrior", "sustainability-champion", "water-saver"}},
		{"Priya Patel", "Green Valley", "Gujarat", 320, 82, []string{"eco-warrior", "wise-farmer"}},
		{"Amit Singh", "Harmony Hills", "Punjab", 280, 79, []string{"eco-warrior", "soil-protector"}},
		{"Sunita Devi", "Sunrise Village", "Rajasthan", 380, 85, []string{"eco-warrior", "water-saver", "eco-champion"}},
		{"Vikram Reddy", "Fertile Fields", "Andhra Pradesh", 520, 91, []string{"sustainability-champion", "green-master", "water-saver"}},
		{"Lakshmi Nair", "Coconut Grove", "Kerala", 340, 83, []string{"eco-warrior", "wise-farmer", "soil-protector"}},
		{"Ravi Sharma", "Golden Fields", "Haryana", 290, 77, []string{"eco-warrior", "first-scan"}},
		{"Meera Joshi", "Mountain View", "Himachal Pradesh", 410, 86, []string{"eco-warrior", "sustainability-champion", "eco-champion"}},
		{"Arjun Gupta", "River Bend", "Uttar Pradesh", 250, 74, []string{"eco-newcomer", "wise-farmer"}},
	}

	farmers := make([]model.Farmer, 0, len(rows))
	for _, r := range rows {
		id, _ := uuid.NewV7()
		farmers = append(farmers, model.Farmer{
			ID:        id.String(),
			Name:      r.name,
			Village:   r.village,
			Region:    r.region,
			XP:        r.xp,
			EcoScore:  r.ecoScore,
			Badges:    jsonArray(r.badges),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return farmers
}

func jsonArray(items []string) json.RawMessage {
	raw, _ := json.Marshal(items)
	return raw
}
