// Package notifier implementa o colaborador de notificação chamado após
// transições de status. Falhas de notificação nunca se propagam para a
// operação que as originou
package notifier

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-gamification-api/pkg/utils"
)

// Tipos de evento de notificação
const (
	KindDealApproved   = "deal_approved"
	KindDealRejected   = "deal_rejected"
	KindPointsRedeemed = "points_redeemed"
)

type Notifier interface {
	Notify(ctx context.Context, userID int, kind string, payload map[string]interface{}) error
}

type logNotifier struct{}

// NewLogNotifier cria um notificador que apenas registra o evento em log.
// A entrega em tempo real para clientes conectados fica fora deste núcleo
func NewLogNotifier() Notifier {
	return &logNotifier{}
}

func (n *logNotifier) Notify(_ context.Context, userID int, kind string, payload map[string]interface{}) error {
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"kind":    kind,
	}).Info("Notificação emitida")

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug(utils.PrettyJson(payload))
	}

	return nil
}
