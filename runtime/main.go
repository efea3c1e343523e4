package main

import (
	"github.com/agri-quest/agriquest_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file loaded, using environment")
	}

	ctx, err := context.NewCtx(
		&services.SqlService{},
		&services.RedisService{},
		&services.MinIOService{},
		&services.MonitoringService{},

		&services.ImageService{},
		&services.GeminiService{},
		&services.MediaService{},

		&services.FarmerService{},
		&services.ChallengeService{},
		&services.MissionService{},
		&services.CropScanService{},
		&services.RateLimitService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
