package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

const requestTimeout = 5 * time.Second

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NotificationGateway уведомляет водителя о новом назначении. Вызывается
// после фиксации транзакции, ошибки доставки только логируются.
type NotificationGateway struct {
	client  httpDoer
	baseURL string
	log     logger.Logger
}

func New(client httpDoer, baseURL string, log logger.Logger) *NotificationGateway {
	return &NotificationGateway{
		client:  client,
		baseURL: baseURL,
		log:     log,
	}
}

type driverAssignedMessage struct {
	TaskID      int64  `json:"taskId"`
	OrderID     string `json:"orderId"`
	DriverID    string `json:"driverId"`
	DriverName  string `json:"driverName"`
	DriverPhone string `json:"driverPhone,omitempty"`
	Address     string `json:"address"`
}

func (g *NotificationGateway) NotifyDriverAssigned(task entities.DriverTask, order entities.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	msg := driverAssignedMessage{
		TaskID:   task.ID,
		OrderID:  order.ID,
		DriverID: task.DriverID,
		Address:  order.Shipping.Address,
	}
	if order.Shipping.Driver != nil {
		msg.DriverName = order.Shipping.Driver.Name
		msg.DriverPhone = order.Shipping.Driver.Phone
	}

	if err := g.post(ctx, g.baseURL+"/api/v1/notifications/driver-assignment", msg); err != nil {
		g.log.Error("driver assignment notification failed",
			logger.NewField("order_id", order.ID),
			logger.NewField("driver_id", task.DriverID),
			logger.NewField("error", err),
		)
		return
	}

	g.log.Debug("driver assignment notification sent",
		logger.NewField("order_id", order.ID),
		logger.NewField("driver_id", task.DriverID),
	)
}

func (g *NotificationGateway) post(ctx context.Context, endpoint string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
