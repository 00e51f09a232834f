package services

import (
	"github.com/Tushar3330/Mytube/internal/core/ports"
	portsrepo "github.com/Tushar3330/Mytube/internal/core/ports/repositories"
	portssvc "github.com/Tushar3330/Mytube/internal/core/ports/services"
	"github.com/Tushar3330/Mytube/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, storage ports.AssetStorage) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(cfg)
	container.Auth = NewAuthService(repos.UserRepo, container.Token, storage)
	container.User = NewUserService(repos.UserRepo, repos.ChannelRepo, storage)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvcFacade = (*tokenService)(nil)
	_ portssvc.AuthSvcFacade  = (*authService)(nil)
	_ portssvc.UserSvcFacade  = (*userService)(nil)
)
