package keepers

import (
	"github.com/lumenwatch/tower/keepers/system"
	"github.com/lumenwatch/tower/keepers/user"
	"github.com/lumenwatch/tower/storage"
	"github.com/lumenwatch/tower/types/core"
)

// Keepers is the central point for accessing
// all forms of state keepers of the tower
type Keepers struct {
	db     storage.Engine
	user   core.UserKeeper
	system core.SystemKeeper
}

// New creates an instance of Keepers
func New(db storage.Engine) *Keepers {
	hub := &Keepers{db: db}
	hub.user = user.NewKeeper(db)
	hub.system = system.NewKeeper(db)
	return hub
}

// UserKeeper returns the user keeper
func (h *Keepers) UserKeeper() core.UserKeeper {
	return h.user
}

// SystemKeeper returns the system keeper
func (h *Keepers) SystemKeeper() core.SystemKeeper {
	return h.system
}

// DB returns the hub's db reference
func (h *Keepers) DB() storage.Engine {
	return h.db
}
