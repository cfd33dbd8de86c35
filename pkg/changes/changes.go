package changes

import "github.com/Jordan10001/soramatcha-admin/pkg/pubsub"

type Kind string

const (
	KindCreated Kind = "created"
	KindUpdated Kind = "updated"
	KindDeleted Kind = "deleted"
)

const (
	TableCategory = "category"
	TableMenu     = "menu"
	TableEvent    = "event"
)

// Change describes one committed row mutation. Row carries the canonical
// server row for created/updated so list views can splice it in without a
// refetch; deletes carry only the id.
type Change struct {
	Table string `json:"table"`
	Kind  Kind   `json:"kind"`
	ID    string `json:"id"`
	Row   any    `json:"row,omitempty"`
}

type Bus = pubsub.Bus[Change]

func NewBus() *Bus { return pubsub.NewBus[Change]() }
