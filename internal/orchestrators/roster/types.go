package roster

import "github.com/The-Night7/bofuri-mj/internal/entities"

// CreatePlayerInput defines the request for creating a player sheet
type CreatePlayerInput struct {
	Player *entities.Player
}

// CreatePlayerOutput defines the response for creating a player sheet
type CreatePlayerOutput struct {
	Player *entities.Player
}

// GetPlayerInput defines the request for fetching a player sheet
type GetPlayerInput struct {
	Name string
}

// GetPlayerOutput defines the response for fetching a player sheet
type GetPlayerOutput struct {
	Player *entities.Player
}

// ListPlayersInput defines the request for listing player sheets
type ListPlayersInput struct{}

// ListPlayersOutput defines the response for listing player sheets
type ListPlayersOutput struct {
	Players []*entities.Player
}

// UpdatePlayerInput defines the request for replacing a player sheet
type UpdatePlayerInput struct {
	Player *entities.Player
}

// UpdatePlayerOutput defines the response for replacing a player sheet
type UpdatePlayerOutput struct {
	Player *entities.Player
}

// DeletePlayerInput defines the request for deleting a player sheet
type DeletePlayerInput struct {
	Name string
}

// DeletePlayerOutput defines the response for deleting a player sheet
type DeletePlayerOutput struct{}

// RestPlayerInput defines the request for restoring a player to full
type RestPlayerInput struct {
	Name string
}

// RestPlayerOutput defines the response for restoring a player to full
type RestPlayerOutput struct {
	Player *entities.Player
}
