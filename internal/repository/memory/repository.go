package memory

import (
	"sync"

	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/models"
)

// Repository holds the bot's in-process caches: the computed season
// report and the NFL player directory. The CLI bypasses this entirely.
type Repository struct {
	report  *models.SeasonReport
	players *models.PlayerDirectory
	mu      sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveReport(report *models.SeasonReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.report = report
}

func (r *Repository) GetReport() *models.SeasonReport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.report
}

func (r *Repository) SavePlayers(players *models.PlayerDirectory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = players
}

func (r *Repository) GetPlayers() *models.PlayerDirectory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.players
}
