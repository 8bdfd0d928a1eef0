// Package audit registra trilhas de auditoria para operações destrutivas.
// O registro é fire-and-forget: falhas são logadas e engolidas
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-gamification-api/infrastructure/database/postgres"
)

type Entry struct {
	Entity   string      `json:"entity"`
	EntityID string      `json:"entity_id"`
	Action   string      `json:"action"`
	ActorID  int         `json:"actor_id"`
	Snapshot interface{} `json:"snapshot"`
}

type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

type postgresRecorder struct {
	conn *postgres.Connection
}

func NewPostgresRecorder(conn *postgres.Connection) Recorder {
	return &postgresRecorder{
		conn: conn,
	}
}

// Record grava a entrada de auditoria com o snapshot da entidade antes da
// operação destrutiva, serializado como JSON
func (r *postgresRecorder) Record(_ context.Context, entry Entry) error {
	snapshot, err := json.Marshal(entry.Snapshot)
	if err != nil {
		return fmt.Errorf("erro ao serializar snapshot de auditoria: %w", err)
	}

	_, err = r.conn.Exec(
		"INSERT INTO audit_log (entity, entity_id, action, actor_id, snapshot) VALUES ($1, $2, $3, $4, $5)",
		entry.Entity, entry.EntityID, entry.Action, entry.ActorID, snapshot,
	)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gravar entrada de auditoria")
		return fmt.Errorf("erro ao gravar entrada de auditoria: %w", err)
	}

	return nil
}
