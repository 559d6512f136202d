package services

import (
	"github.com/rs/zerolog"

	"github.com/aditya/universe/internal/app/repositories"
)

// Services combines all application services
type Services struct {
	Auth     AuthService
	Activity ActivityService
	Search   SearchService
}

// NewServices creates a new Services container wired to the repositories
func NewServices(repos *repositories.Repositories, logger zerolog.Logger) *Services {
	stores := repos.DocumentStores()

	return &Services{
		Auth:     NewAuthService(repos.Users, logger),
		Activity: NewActivityService(stores, logger),
		Search:   NewSearchService(stores, logger),
	}
}
