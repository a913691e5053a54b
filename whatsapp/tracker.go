package whatsapp

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"boutique/models"
)

// Tracker records product-interest events in the whatsapp_interactions
// table. Tracking is best-effort telemetry: failures are logged and
// swallowed, never surfaced to the shopper.
type Tracker struct {
	db  *sqlx.DB
	log *logrus.Logger
}

// NewTracker constructs a Tracker
func NewTracker(db *sqlx.DB, log *logrus.Logger) *Tracker {
	return &Tracker{db: db, log: log}
}

// Track inserts one interaction row for the product. Safe to call from a
// goroutine; the caller never learns about failures.
func (t *Tracker) Track(p models.Product, userAgent, ipAddress string) {
	query := `INSERT INTO whatsapp_interactions (id, product_id, product_name, user_agent, ip_address)
		VALUES (?, ?, ?, ?, ?)`
	_, err := t.db.Exec(query, uuid.NewString(), p.ID, p.Name,
		nullable(userAgent), nullable(ipAddress))
	if err != nil {
		t.log.WithError(err).WithField("product_id", p.ID).
			Warn("whatsapp interaction not recorded")
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
