package db

import (
	"time"

	"github.com/NicholasIapalucci/drexel-api/catalog"
	"github.com/google/uuid"
)

// Run is one generation of the document saved to the database. Every row
// written carries the id of the run that last touched it.
type Run struct {
	Id        uuid.UUID
	StartedAt time.Time
	Stats     catalog.Stats
}

func NewRun(doc *catalog.Document) Run {
	return Run{
		Id:        uuid.New(),
		StartedAt: time.Now().UTC(),
		Stats:     doc.Stats(),
	}
}
