package repository

import (
	"github.com/quickbite/api/internal/server"
)

// Repositories is a container for all repository instances, wired once at
// startup and handed to the service layer.
type Repositories struct {
	MenuItems *MenuItemRepository
}

// NewRepositories constructs the repository container from the shared
// connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		MenuItems: NewMenuItemRepository(s.DB.Pool),
	}
}
