package publisher

import (
	"time"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// boardSnapshot is the body PUT to the mirror's board resource. It always
// carries the full list; the mirror replaces whatever it held before.
type boardSnapshot struct {
	Board       string        `json:"board"`
	Count       int           `json:"count"`
	Projects    []projectJSON `json:"projects"`
	PublishedAt time.Time     `json:"published_at"`
}

type projectJSON struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

func toSnapshot(board string, projects []project.Project, now time.Time) boardSnapshot {
	out := make([]projectJSON, len(projects))
	for i, p := range projects {
		out[i] = projectJSON{Title: p.Title, Description: p.Description, People: p.People}
	}
	return boardSnapshot{
		Board:       board,
		Count:       len(out),
		Projects:    out,
		PublishedAt: now.UTC(),
	}
}
