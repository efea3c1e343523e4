package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agri-quest/agriquest_api/model"
)

// MissionSeeder handles seeding the branching narrative missions.
type MissionSeeder struct {
	db *gorm.DB
}

func NewMissionSeeder(db *gorm.DB) *MissionSeeder {
	return &MissionSeeder{db: db}
}

// SeedMissions inserts the mission catalog, skipping titles that already
// exist.
func (s *MissionSeeder) SeedMissions() error {
	for _, def := range s.getMissions() {
		var existing model.Mission
		err := s.db.Where("title = ?", def.title).First(&existing).Error
		if err == nil {
			log.Printf("Mission %q already exists, skipping", def.title)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		id, _ := uuid.NewV7()
		mission := model.Mission{
			ID:        id.String(),
			Title:     def.title,
			XPReward:  def.xpReward,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := mission.SetNodeList(def.nodes); err != nil {
			return err
		}

		if err := s.db.Create(&mission).Error; err != nil {
			log.Printf("Error creating mission %q: %v", def.title, err)
			return err
		}
		log.Printf("Created mission: %s", def.title)
	}

	log.Println("Mission seeding completed successfully")
	return nil
}

type missionDef struct {
	title    string
	xpReward int
	nodes    []model.MissionNode
}

func (s *MissionSeeder) getMissions() []missionDef {
	return []missionDef{
		{
			title:    "The Fertilizer Dilemma",
			xpReward: 150,
			nodes: []model.MissionNode{
				{
					Text: "Your crops are showing slow growth. A fellow farmer suggests using chemical fertilizers for faster results, but you know organic methods are better for long-term soil health. What do you choose?",
					Choices: []model.MissionChoice{
						{Text: "Use chemical fertilizers for quick results", ScoreImpact: -5, Desc: "Short-term gains but potential soil damage and chemical dependency"},
						{Text: "Apply organic compost and be patient", ScoreImpact: 10, Desc: "Slower initial growth but healthier soil and sustainable practices"},
						{Text: "Mix both chemical and organic fertilizers", ScoreImpact: 2, Desc: "Compromise approach with moderate sustainability impact"},
					},
				},
				{
					Text: "After your fertilizer choice, you notice your neighbor is struggling with similar issues. How do you help?",
					Choices: []model.MissionChoice{
						{Text: "Share your organic composting knowledge", ScoreImpact: 8, Desc: "Spread sustainable practices in your community"},
						{Text: "Recommend the local chemical supplier", ScoreImpact: -3, Desc: "Perpetuate unsustainable farming practices"},
						{Text: "Suggest consulting an agricultural expert", ScoreImpact: 5, Desc: "Promote professional guidance and learning"},
					},
				},
				{
					Text: "Your harvest results are in. How do you evaluate your farming approach for next season?",
					Choices: []model.MissionChoice{
						{Text: "Analyze soil health and plan improvements", ScoreImpact: 12, Desc: "Focus on long-term sustainability and soil health"},
						{Text: "Only look at yield numbers", ScoreImpact: -2, Desc: "Short-sighted approach ignoring environmental impact"},
						{Text: "Consider both yield and environmental impact", ScoreImpact: 8, Desc: "Balanced approach to sustainable farming"},
					},
				},
			},
		},
		{
			title:    "Water Crisis Challenge",
			xpReward: 200,
			nodes: []model.MissionNode{
				{
					Text: "The monsoon is late this year, and water is becoming scarce. Your crops need irrigation urgently. What water management strategy do you implement?",
					Choices: []model.MissionChoice{
						{Text: "Install drip irrigation system", ScoreImpact: 15, Desc: "Highly efficient water use with minimal waste"},
						{Text: "Continue flood irrigation as usual", ScoreImpact: -8, Desc: "Wasteful water use during scarcity"},
						{Text: "Use sprinkler irrigation", ScoreImpact: 5, Desc: "Moderate water efficiency improvement"},
					},
				},
				{
					Text: "You discover a way to collect and store rainwater. What do you do?",
					Choices: []model.MissionChoice{
						{Text: "Build rainwater harvesting system", ScoreImpact: 12, Desc: "Sustainable water conservation for future use"},
						{Text: "Ignore it and rely on groundwater", ScoreImpact: -5, Desc: "Miss opportunity for sustainable water management"},
						{Text: "Share the idea with other farmers first", ScoreImpact: 10, Desc: "Community-focused approach to water conservation"},
					},
				},
				{
					Text: "Local authorities offer subsidies for water-efficient farming equipment. How do you respond?",
					Choices: []model.MissionChoice{
						{Text: "Apply immediately and upgrade equipment", ScoreImpact: 10, Desc: "Take advantage of sustainability incentives"},
						{Text: "Stick with traditional methods", ScoreImpact: -3, Desc: "Resist modernization and efficiency improvements"},
						{Text: "Research and help neighbors apply too", ScoreImpact: 15, Desc: "Maximize community benefit from sustainability programs"},
					},
				},
			},
		},
		{
			title:    "Pest Invasion",
			xpReward: 180,
			nodes: []model.MissionNode{
				{
					Text: "A pest outbreak threatens your crops. The agricultural store offers powerful chemical pesticides, but you know about natural alternatives. What do you choose?",
					Choices: []model.MissionChoice{
						{Text: "Use chemical pesticides immediately", ScoreImpact: -10, Desc: "Quick fix but harmful to beneficial insects and soil"},
						{Text: "Try natural pest control methods", ScoreImpact: 12, Desc: "Eco-friendly approach protecting beneficial organisms"},
						{Text: "Consult with organic farming experts", ScoreImpact: 8, Desc: "Seek expert guidance for sustainable solutions"},
					},
				},
				{
					Text: "Your natural pest control is working slowly. Neighbors pressure you to use chemicals for faster results. How do you respond?",
					Choices: []model.MissionChoice{
						{Text: "Give in to pressure and use chemicals", ScoreImpact: -8, Desc: "Abandon sustainable practices under social pressure"},
						{Text: "Stay committed to natural methods", ScoreImpact: 15, Desc: "Strong commitment to sustainable farming principles"},
						{Text: "Educate neighbors about natural alternatives", ScoreImpact: 18, Desc: "Lead by example and spread sustainable practices"},
					},
				},
				{
					Text: "The pest problem is resolved. How do you prevent future outbreaks?",
					Choices: []model.MissionChoice{
						{Text: "Plant diverse crops to create natural balance", ScoreImpact: 14, Desc: "Biodiversity approach to pest management"},
						{Text: "Schedule regular chemical treatments", ScoreImpact: -6, Desc: "Preventive chemical use with environmental impact"},
						{Text: "Create habitat for beneficial predator insects", ScoreImpact: 16, Desc: "Natural ecosystem approach to pest control"},
					},
				},
			},
		},
		{
			title:    "Soil Health Crisis",
			xpReward: 160,
			nodes: []model.MissionNode{
				{
					Text: "Soil tests reveal your land has low fertility and poor structure. What long-term strategy do you implement?",
					Choices: []model.MissionChoice{
						{Text: "Start intensive composting program", ScoreImpact: 12, Desc: "Build soil organic matter naturally"},
						{Text: "Apply synthetic fertilizers heavily", ScoreImpact: -7, Desc: "Quick fix that may worsen soil structure"},
						{Text: "Implement crop rotation with legumes", ScoreImpact: 15, Desc: "Natural nitrogen fixation and soil improvement"},
					},
				},
				{
					Text: "You learn about cover crops that can improve soil health during fallow periods. What do you do?",
					Choices: []model.MissionChoice{
						{Text: "Plant nitrogen-fixing cover crops", ScoreImpact: 14, Desc: "Improve soil fertility naturally during off-season"},
						{Text: "Leave fields bare to save on seed costs", ScoreImpact: -5, Desc: "Miss opportunity for soil improvement and erosion control"},
						{Text: "Research best cover crops for your region", ScoreImpact: 10, Desc: "Scientific approach to soil improvement"},
					},
				},
			},
		},
		{
			title:    "Market Pressure vs. Sustainability",
			xpReward: 220,
			nodes: []model.MissionNode{
				{
					Text: "Buyers offer premium prices for conventionally grown produce but lower prices for organic. Your organic certification is pending. What do you choose?",
					Choices: []model.MissionChoice{
						{Text: "Switch back to conventional for better prices", ScoreImpact: -12, Desc: "Prioritize short-term profits over sustainability"},
						{Text: "Continue organic practices despite lower prices", ScoreImpact: 16, Desc: "Long-term commitment to sustainable farming"},
						{Text: "Find direct-to-consumer organic markets", ScoreImpact: 18, Desc: "Innovation in sustainable market channels"},
					},
				},
				{
					Text: "A large corporation offers to contract your entire production if you use their chemical inputs. How do you respond?",
					Choices: []model.MissionChoice{
						{Text: "Accept the contract for financial security", ScoreImpact: -10, Desc: "Compromise sustainability for guaranteed income"},
						{Text: "Negotiate for organic input allowances", ScoreImpact: 8, Desc: "Try to balance business needs with sustainability"},
						{Text: "Decline and focus on sustainable partnerships", ScoreImpact: 14, Desc: "Prioritize values over short-term financial gain"},
					},
				},
			},
		},
		{
			title:    "Climate Adaptation Challenge",
			xpReward: 190,
			nodes: []model.MissionNode{
				{
					Text: "Changing weather patterns are affecting your traditional farming schedule. How do you adapt?",
					Choices: []model.MissionChoice{
						{Text: "Research climate-resilient crop varieties", ScoreImpact: 15, Desc: "Proactive adaptation to climate change"},
						{Text: "Stick to traditional varieties and hope for the best", ScoreImpact: -5, Desc: "Resistance to necessary adaptation"},
						{Text: "Diversify crops to spread climate risk", ScoreImpact: 12, Desc: "Smart risk management through diversification"},
					},
				},
				{
					Text: "Extreme weather events are becoming more frequent. What infrastructure do you prioritize?",
					Choices: []model.MissionChoice{
						{Text: "Build storm-resistant structures", ScoreImpact: 8, Desc: "Prepare for extreme weather resilience"},
						{Text: "Invest in water storage and drainage", ScoreImpact: 14, Desc: "Focus on water management for climate adaptation"},
						{Text: "Do minimal preparation to save costs", ScoreImpact: -8, Desc: "Short-sighted approach to climate risks"},
					},
				},
			},
		},
	}
}
