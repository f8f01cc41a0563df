// Package notify fans order events out to a notification actor. The
// actor only logs today; it is the seam where email/sms/push delivery
// would hang. Messages are fire-and-forget so checkout never waits on
// notification delivery.
package notify

import (
	"fmt"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/example/storefront/pkg/models"
	"go.uber.org/zap"
)

// OrderPlaced is sent after a successful checkout.
type OrderPlaced struct {
	OrderID     string
	UserID      string
	TotalAmount string
	ItemCount   int
}

// OrderStatusChanged is sent after an administrative status update.
type OrderStatusChanged struct {
	OrderID string
	UserID  string
	Status  string
}

type notificationActor struct {
	logger *zap.Logger
}

func (a *notificationActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *OrderPlaced:
		a.logger.Info("Order placed notification",
			zap.String("order_id", msg.OrderID),
			zap.String("user_id", msg.UserID),
			zap.String("total_amount", msg.TotalAmount),
			zap.Int("item_count", msg.ItemCount))

	case *OrderStatusChanged:
		a.logger.Info("Order status notification",
			zap.String("order_id", msg.OrderID),
			zap.String("user_id", msg.UserID),
			zap.String("status", msg.Status))

	case *actor.Started:
		a.logger.Info("Notification actor started")

	case *actor.Stopped:
		a.logger.Info("Notification actor stopped")
	}
}

// Notifier owns the actor system and the notification actor pid. A nil
// Notifier is valid and drops every event.
type Notifier struct {
	system *actor.ActorSystem
	pid    *actor.PID
}

func New(logger *zap.Logger) (*Notifier, error) {
	system := actor.NewActorSystem()
	props := actor.PropsFromProducer(func() actor.Actor {
		return &notificationActor{logger: logger.Named("notification-actor")}
	})
	pid, err := system.Root.SpawnNamed(props, "notification-actor")
	if err != nil {
		return nil, fmt.Errorf("failed to spawn notification actor: %w", err)
	}
	return &Notifier{system: system, pid: pid}, nil
}

// OrderPlaced publishes a checkout event.
func (n *Notifier) OrderPlaced(order models.Order) {
	if n == nil {
		return
	}
	n.system.Root.Send(n.pid, &OrderPlaced{
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount.StringFixed(2),
		ItemCount:   len(order.Items),
	})
}

// OrderStatusChanged publishes a status transition.
func (n *Notifier) OrderStatusChanged(order models.Order) {
	if n == nil {
		return
	}
	n.system.Root.Send(n.pid, &OrderStatusChanged{
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
	})
}

func (n *Notifier) Close() {
	if n == nil {
		return
	}
	n.system.Root.Stop(n.pid)
	n.system.Shutdown()
}
