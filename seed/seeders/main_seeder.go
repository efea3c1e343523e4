package seeders

import (
	"log"

	"gorm.io/gorm"

	"github.com/agri-quest/agriquest_api/model"
)

// MainSeeder coordinates all seeding operations.
type MainSeeder struct {
	db *gorm.DB
}

func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll migrates the schema and runs every seeder.
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.migrate(); err != nil {
		return err
	}

	if err := NewFarmerSeeder(s.db).SeedFarmers(); err != nil {
		log.Printf("Farmer seeding failed: %v", err)
		return err
	}

	if err := NewChallengeSeeder(s.db).SeedChallenges(); err != nil {
		log.Printf("Challenge seeding failed: %v", err)
		return err
	}

	if err := NewMissionSeeder(s.db).SeedMissions(); err != nil {
		log.Printf("Mission seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func (s *MainSeeder) migrate() error {
	return s.db.AutoMigrate(
		&model.Farmer{},
		&model.Challenge{},
		&model.ChallengeCompletion{},
		&model.Mission{},
		&model.CropScan{},
		&model.MediaAsset{},
	)
}

func (s *MainSeeder) SeedFarmersOnly() error {
	if err := s.migrate(); err != nil {
		return err
	}
	return NewFarmerSeeder(s.db).SeedFarmers()
}

func (s *MainSeeder) SeedChallengesOnly() error {
	if err := s.migrate(); err != nil {
		return err
	}
	return NewChallengeSeeder(s.db).SeedChallenges()
}

func (s *MainSeeder) SeedMissionsOnly() error {
	if err := s.migrate(); err != nil {
		return err
	}
	return NewMissionSeeder(s.db).SeedMissions()
}
