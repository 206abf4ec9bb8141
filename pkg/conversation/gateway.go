package conversation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pest-assess-be/pkg/severity"
)

// LeadRecord is the snapshot handed to the persistence layer the moment a
// session qualifies. It carries everything the sales team needs without
// requiring the session to still exist.
type LeadRecord struct {
	SessionID   uuid.UUID
	PestType    string
	Tier        severity.Tier
	Slots       Slots
	QualifiedAt time.Time
}

// LeadGateway persists qualified leads. Implementations must be safe for
// concurrent use; the engine guarantees at most one Save per session.
type LeadGateway interface {
	Save(ctx context.Context, lead LeadRecord) error
}

// GuardStore records one-time session milestones durably so that results
// disclosure and lead persistence happen at most once even across process
// restarts. MarkOnce returns true only for the first caller of a key.
type GuardStore interface {
	MarkOnce(ctx context.Context, key string) (bool, error)
	Seen(ctx context.Context, key string) (bool, error)
}
