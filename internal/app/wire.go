//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/go-redis/redis/v8"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/genai"

	eventsGateway "marketplace/internal/gateway/events"
	notificationGateway "marketplace/internal/gateway/notification"
	paymentGateway "marketplace/internal/gateway/payment"
	"marketplace/internal/gateway/ratesuggest"

	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/admin_secure_action_post"
	"marketplace/internal/handlers/rest/delivery_stats_get"
	"marketplace/internal/handlers/rest/order_driver_post"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/order_refund_post"
	"marketplace/internal/handlers/rest/order_status_put"
	"marketplace/internal/handlers/rest/orders_get"
	"marketplace/internal/handlers/rest/orders_stream_ws"
	"marketplace/internal/handlers/tasks/stats_reconcile"
	"marketplace/internal/pkg/auth"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/payment_handle"
	"marketplace/internal/pkg/factory/status_transition"

	drivertaskRepo "marketplace/internal/repository/drivertask"
	orderRepo "marketplace/internal/repository/order"
	statsRepo "marketplace/internal/repository/stats"
	orderService "marketplace/internal/service/order"
	statsService "marketplace/internal/service/stats"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/stream"
	"marketplace/pkg/tx"
)

type (
	ReconcileInterval time.Duration
)

const gatewayHTTPTimeout = 10 * time.Second

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceStats      ServiceStats
	RateGateway       *ratesuggest.RateGateway
	Verifier          *auth.Verifier
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	order_status_put.Service
	order_driver_post.Service
	order_refund_post.Service
	orders_stream_ws.Service
	admin_secure_action_post.OrderService
}

type ServiceStats interface {
	delivery_stats_get.Service
	admin_secure_action_post.StatsService
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	genaiClient *genai.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,

		provideOrderRepository,
		provideTaskRepository,
		provideStatsRepository,
		provideStatsCache,

		provideServiceStats,
		status_transition.New,
		providePaymentGateway,
		provideNotificationGateway,
		provideEventsPublisher,
		provideEventHub,
		provideServiceOrder,

		provideRateGateway,
		provideVerifier,

		provideStatsReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceStats), new(*statsService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TaskRepository), new(*drivertaskRepo.Repository)),
		wire.Bind(new(orderService.StatsRecorder), new(*statsService.Service)),
		wire.Bind(new(orderService.PaymentGateway), new(*paymentGateway.PaymentGateway)),
		wire.Bind(new(orderService.Publisher), new(*eventsGateway.Publisher)),
		wire.Bind(new(orderService.Notifier), new(*notificationGateway.NotificationGateway)),
		wire.Bind(new(orderService.TransitionGuard), new(*status_transition.TransitionGuard)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(statsService.Repository), new(*statsRepo.Repository)),
		wire.Bind(new(statsService.Cache), new(*statsRepo.Cache)),
		wire.Bind(new(statsService.TxManager), new(*tx.Manager)),

		wire.Bind(new(stats_reconcile.Service), new(*statsService.Service)),
	)
	return &Application{}, nil
}

type PaymentWorkerApp struct {
	HandlerFactory *payment_handle.EventHandlerFactory
}

// InitializePaymentWorkerApp для Kafka воркера (cmd/worker-payment-events)
func InitializePaymentWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*PaymentWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideTaskRepository,
		provideStatsRepository,
		provideStatsCache,

		provideServiceStats,
		status_transition.New,
		providePaymentGateway,
		provideNotificationGateway,
		provideEventsPublisher,
		provideEventHub,
		provideServiceOrder,

		provideEventHandlerFactory,

		wire.Struct(new(PaymentWorkerApp), "*"),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TaskRepository), new(*drivertaskRepo.Repository)),
		wire.Bind(new(orderService.StatsRecorder), new(*statsService.Service)),
		wire.Bind(new(orderService.PaymentGateway), new(*paymentGateway.PaymentGateway)),
		wire.Bind(new(orderService.Publisher), new(*eventsGateway.Publisher)),
		wire.Bind(new(orderService.Notifier), new(*notificationGateway.NotificationGateway)),
		wire.Bind(new(orderService.TransitionGuard), new(*status_transition.TransitionGuard)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(statsService.Repository), new(*statsRepo.Repository)),
		wire.Bind(new(statsService.Cache), new(*statsRepo.Cache)),
		wire.Bind(new(statsService.TxManager), new(*tx.Manager)),

		wire.Bind(new(payment_handle.OrderService), new(*orderService.Service)),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideTaskRepository(querier *querier.Querier) *drivertaskRepo.Repository {
	return drivertaskRepo.New(querier)
}

func provideStatsRepository(querier *querier.Querier) *statsRepo.Repository {
	return statsRepo.New(querier)
}

func provideStatsCache(log logger.Logger, redisClient *redis.Client, cfg *config.Config) *statsRepo.Cache {
	return statsRepo.NewCache(redisClient, cfg.Stats.CacheTTL, log)
}

func provideServiceStats(
	repository statsService.Repository,
	cache statsService.Cache,
	txManager statsService.TxManager,
) *statsService.Service {
	return statsService.New(repository, cache, txManager)
}

func providePaymentGateway(cfg *config.Config) *paymentGateway.PaymentGateway {
	client := &http.Client{Timeout: gatewayHTTPTimeout}
	return paymentGateway.New(client, cfg.Payment.BaseURL, cfg.Payment.APIKey)
}

func provideNotificationGateway(log logger.Logger, cfg *config.Config) *notificationGateway.NotificationGateway {
	client := &http.Client{Timeout: gatewayHTTPTimeout}
	return notificationGateway.New(client, cfg.Notification.BaseURL, log)
}

func provideEventsPublisher(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *eventsGateway.Publisher {
	return eventsGateway.New(producer, cfg.Kafka.StatusTopic, log)
}

func provideEventHub() *stream.Hub[entities.OrderStatusEvent] {
	return stream.NewHub[entities.OrderStatusEvent](16)
}

func provideServiceOrder(
	repository orderService.Repository,
	tasks orderService.TaskRepository,
	stats orderService.StatsRecorder,
	payments orderService.PaymentGateway,
	publisher orderService.Publisher,
	notifier orderService.Notifier,
	guard orderService.TransitionGuard,
	txManager orderService.TxManager,
	events *stream.Hub[entities.OrderStatusEvent],
) *orderService.Service {
	return orderService.New(
		repository,
		tasks,
		stats,
		payments,
		publisher,
		notifier,
		guard,
		txManager,
		events,
	)
}

func provideRateGateway(genaiClient *genai.Client, cfg *config.Config) *ratesuggest.RateGateway {
	return ratesuggest.New(genaiClient.Models, cfg.GenAI.Model)
}

func provideVerifier(cfg *config.Config) *auth.Verifier {
	return auth.NewVerifier(cfg.Admin.JWTSecret)
}

func provideEventHandlerFactory(orderService payment_handle.OrderService) *payment_handle.EventHandlerFactory {
	return payment_handle.NewEventHandlerFactory(orderService)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.StatsReconcileInterval)
}

func provideStatsReconcileTask(
	log logger.Logger,
	statsService stats_reconcile.Service,
	interval ReconcileInterval,
) *stats_reconcile.StatsReconcile {
	return stats_reconcile.NewStatsReconcile(log, statsService, time.Duration(interval))
}

func provideTaskList(
	statsReconcileTask *stats_reconcile.StatsReconcile,
) []background.Task {
	return []background.Task{
		statsReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
