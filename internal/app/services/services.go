package services

import (
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/app/repositories"
	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/filestorage"
	"github.com/rs/zerolog"
)

// Services holds all the service instances
type Services struct {
	AccountService     *AccountService
	AchievementService *AchievementService
}

// NewServices wires the services onto the repositories
func NewServices(repos *repositories.Repositories, storage filestorage.FileStorage, logger zerolog.Logger) *Services {
	return &Services{
		AccountService: NewAccountService(
			repos.StudentRepository,
			repos.TeacherRepository,
			logger.With().Str("component", "account_service").Logger(),
		),
		AchievementService: NewAchievementService(
			repos.AchievementRepository,
			repos.StudentRepository,
			storage,
			logger.With().Str("component", "achievement_service").Logger(),
		),
	}
}
