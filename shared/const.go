package shared

const (
	FarmerID = "farmer_id"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	CompletionStatusPending  = "pending"
	CompletionStatusApproved = "approved"
	CompletionStatusRejected = "rejected"

	AnalysisSourceAI       = "ai"
	AnalysisSourceFallback = "fallback"

	BadgeEcoWarrior             = "eco-warrior"
	BadgeSustainabilityChampion = "sustainability-champion"
	BadgeGreenMaster            = "green-master"
	BadgeEcoChampion            = "eco-champion"
	BadgeWiseFarmer             = "wise-farmer"
	BadgeWaterSaver             = "water-saver"

	OutcomeExcellent = "excellent"
	OutcomeGood      = "good"
	OutcomeOkay      = "okay"
	OutcomePoor      = "poor"
)

// BadgeCatalog maps badge identifiers to display text. Consumed only for
// display; progression logic treats badge ids as opaque tokens.
var BadgeCatalog = map[string]string{
	"eco-newcomer":              "Welcome to sustainable farming!",
	"first-scan":                "Completed first crop analysis",
	BadgeEcoWarrior:             "Reached level 5 in sustainable practices",
	BadgeSustainabilityChampion: "Reached level 10 with excellent eco-score",
	BadgeGreenMaster:            "Achieved mastery in sustainable farming",
	BadgeWaterSaver:             "Demonstrated excellent water conservation",
	BadgeEcoChampion:            "Outstanding sustainable mission choices",
	BadgeWiseFarmer:             "Consistently wise farming decisions",
	"soil-protector":            "Maintained healthy soil practices",
}
