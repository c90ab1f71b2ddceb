package service

import (
	"github.com/quickbite/api/internal/repository"
	"github.com/quickbite/api/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	MenuItems *MenuItemService
}

// NewServices constructs the service container over the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		MenuItems: NewMenuItemService(repos.MenuItems),
	}
}
