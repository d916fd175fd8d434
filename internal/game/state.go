// Package game provides the game session, the turn loop and the terminal front-end.
package game

// Phase represents where the session is in the turn cycle.
type Phase int

const (
	// PhasePlayerTurn - waiting for the player to pick a direction
	PhasePlayerTurn Phase = iota
	// PhasePlayerMoving - the player's step is animating
	PhasePlayerMoving
	// PhaseEnemyTurn - enemies are taking their turns one after another
	PhaseEnemyTurn
	// PhaseLevelComplete - the player reached the exit; next level is pending
	PhaseLevelComplete
	// PhaseGameOver - the player ran out of food
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player_turn"
	case PhasePlayerMoving:
		return "player_moving"
	case PhaseEnemyTurn:
		return "enemy_turn"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
