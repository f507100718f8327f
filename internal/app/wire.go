//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	notificationGateway "dispatch/internal/gateway/kafka/notification"
	commission_courier_patch "dispatch/internal/handlers/rest/commission_courier_patch"
	commission_vendor_patch "dispatch/internal/handlers/rest/commission_vendor_patch"
	courier_get "dispatch/internal/handlers/rest/courier_get"
	courier_location_post "dispatch/internal/handlers/rest/courier_location_post"
	courier_post "dispatch/internal/handlers/rest/courier_post"
	courier_put "dispatch/internal/handlers/rest/courier_put"
	couriers_get "dispatch/internal/handlers/rest/couriers_get"
	delivery_assign_post "dispatch/internal/handlers/rest/delivery_assign_post"
	delivery_confirm_post "dispatch/internal/handlers/rest/delivery_confirm_post"
	delivery_reject_post "dispatch/internal/handlers/rest/delivery_reject_post"
	delivery_status_post "dispatch/internal/handlers/rest/delivery_status_post"
	dispatch_post "dispatch/internal/handlers/rest/dispatch_post"
	tracking_location_post "dispatch/internal/handlers/rest/tracking_location_post"
	tracking_route_post "dispatch/internal/handlers/rest/tracking_route_post"
	tracking_start_post "dispatch/internal/handlers/rest/tracking_start_post"
	tracking_stop_post "dispatch/internal/handlers/rest/tracking_stop_post"
	"dispatch/internal/handlers/tasks/dispatch_retry"
	"dispatch/internal/handlers/tasks/offer_sweep"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/order_handle"
	"dispatch/internal/pkg/factory/verification_code"
	"dispatch/internal/pkg/kafka"

	commissionRepo "dispatch/internal/repository/commission"
	courierRepo "dispatch/internal/repository/courier"
	deliveryRepo "dispatch/internal/repository/delivery"
	deliveryRequestRepo "dispatch/internal/repository/deliveryrequest"
	locationLogRepo "dispatch/internal/repository/locationlog"
	orderRepo "dispatch/internal/repository/order"
	settingsRepo "dispatch/internal/repository/settings"
	courierService "dispatch/internal/service/courier"
	dispatchService "dispatch/internal/service/dispatch"
	offerService "dispatch/internal/service/offer"
	orderService "dispatch/internal/service/order"
	settlementService "dispatch/internal/service/settlement"
	trackingService "dispatch/internal/service/tracking"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SweepInterval time.Duration
	RetryInterval time.Duration
	RetryGrace    time.Duration
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceDispatch   ServiceDispatch
	ServiceOrder      ServiceOrder
	ServiceTracking   ServiceTracking
	ServiceSettlement ServiceSettlement
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	couriers_get.Service
	courier_location_post.Service
}

type ServiceDispatch interface {
	dispatch_post.Service
	delivery_assign_post.Service
	delivery_reject_post.Service
}

type ServiceOrder interface {
	delivery_status_post.Service
	delivery_confirm_post.Service
}

type ServiceTracking interface {
	tracking_start_post.Service
	tracking_stop_post.Service
	tracking_location_post.Service
	tracking_route_post.Service
}

type ServiceSettlement interface {
	commission_courier_patch.Service
	commission_vendor_patch.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,
		provideRetryInterval,
		provideRetryGrace,
		provideDispatchConfig,

		provideCourierRepository,
		provideDeliveryRepository,
		provideDeliveryRequestRepository,
		provideOrderRepository,
		provideCommissionRepository,
		provideSettingsRepository,
		provideLocationLogRepository,

		provideNotificationGateway,
		verification_code.New,

		provideServiceCourier,
		provideServiceOffer,
		provideServiceSettlement,
		provideServiceOrder,
		provideServiceDispatch,
		provideServiceTracking,

		provideOfferSweepTask,
		provideDispatchRetryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),
		wire.Bind(new(ServiceSettlement), new(*settlementService.Settlement)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.LocationLogRepository), new(*locationLogRepo.Repository)),
		wire.Bind(new(trackingService.LocationLogRepository), new(*locationLogRepo.Repository)),
		wire.Bind(new(offerService.Repository), new(*deliveryRequestRepo.Repository)),
		wire.Bind(new(settlementService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(settlementService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(settlementService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(settlementService.CommissionRepository), new(*commissionRepo.Repository)),
		wire.Bind(new(settlementService.SettingsRepository), new(*settingsRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(orderService.Settlement), new(*settlementService.Settlement)),
		wire.Bind(new(orderService.Notifier), new(*notificationGateway.NotificationGateway)),
		wire.Bind(new(dispatchService.OrderService), new(*orderService.Order)),
		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.OfferService), new(*offerService.Offer)),
		wire.Bind(new(dispatchService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(dispatchService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(dispatchService.CodeFactory), new(*verification_code.CodeFactory)),
		wire.Bind(new(dispatchService.Notifier), new(*notificationGateway.NotificationGateway)),
		wire.Bind(new(trackingService.DeliveryRepository), new(*deliveryRepo.Repository)),

		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(offerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(settlementService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(trackingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(offer_sweep.Service), new(*dispatchService.Dispatch)),
		wire.Bind(new(dispatch_retry.Service), new(*dispatchService.Dispatch)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService   *orderService.Order
	StatusHandlers *order_handle.StatusHandlerFactory
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideDispatchConfig,

		provideCourierRepository,
		provideDeliveryRepository,
		provideDeliveryRequestRepository,
		provideOrderRepository,
		provideCommissionRepository,
		provideSettingsRepository,

		provideNotificationGateway,
		verification_code.New,

		provideServiceOffer,
		provideServiceSettlement,
		provideServiceOrder,
		provideServiceDispatch,
		provideStatusHandlerFabric,

		wire.Bind(new(offerService.Repository), new(*deliveryRequestRepo.Repository)),
		wire.Bind(new(settlementService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(settlementService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(settlementService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(settlementService.CommissionRepository), new(*commissionRepo.Repository)),
		wire.Bind(new(settlementService.SettingsRepository), new(*settingsRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(orderService.Settlement), new(*settlementService.Settlement)),
		wire.Bind(new(orderService.Notifier), new(*notificationGateway.NotificationGateway)),
		wire.Bind(new(dispatchService.OrderService), new(*orderService.Order)),
		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.OfferService), new(*offerService.Offer)),
		wire.Bind(new(dispatchService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(dispatchService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(dispatchService.CodeFactory), new(*verification_code.CodeFactory)),
		wire.Bind(new(dispatchService.Notifier), new(*notificationGateway.NotificationGateway)),

		wire.Bind(new(offerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(settlementService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_handle.DispatchService), new(*dispatchService.Dispatch)),
		wire.Bind(new(order_handle.OfferService), new(*offerService.Offer)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideDeliveryRequestRepository(querier *querier.Querier) *deliveryRequestRepo.Repository {
	return deliveryRequestRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCommissionRepository(querier *querier.Querier) *commissionRepo.Repository {
	return commissionRepo.New(querier)
}

func provideSettingsRepository(querier *querier.Querier) *settingsRepo.Repository {
	return settingsRepo.New(querier)
}

func provideLocationLogRepository(querier *querier.Querier) *locationLogRepo.Repository {
	return locationLogRepo.New(querier)
}

func provideNotificationGateway(log logger.Logger, producer *kafka.Producer, cfg *config.Config) *notificationGateway.NotificationGateway {
	return notificationGateway.New(log, producer, cfg.Kafka.NotificationsTopic)
}

func provideServiceCourier(
	repository courierService.Repository,
	locationLog courierService.LocationLogRepository,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, locationLog, txManager)
}

func provideServiceOffer(
	repository offerService.Repository,
	txManager offerService.TxManager,
) *offerService.Offer {
	return offerService.New(repository, txManager)
}

func provideServiceSettlement(
	orderRepository settlementService.OrderRepository,
	deliveryRepository settlementService.DeliveryRepository,
	courierRepository settlementService.CourierRepository,
	commissionRepository settlementService.CommissionRepository,
	settingsRepository settlementService.SettingsRepository,
	txManager settlementService.TxManager,
) *settlementService.Settlement {
	return settlementService.New(
		orderRepository,
		deliveryRepository,
		courierRepository,
		commissionRepository,
		settingsRepository,
		txManager,
	)
}

func provideServiceOrder(
	repository orderService.Repository,
	deliveryRepository orderService.DeliveryRepository,
	settlement orderService.Settlement,
	notifier orderService.Notifier,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, deliveryRepository, settlement, notifier, txManager)
}

func provideDispatchConfig(cfg *config.Config) dispatchService.Config {
	return dispatchService.Config{
		OfferTTL:                cfg.Dispatch.OfferTTL,
		BroadcastTTL:            cfg.Dispatch.BroadcastTTL,
		MaxExclusiveAttempts:    cfg.Dispatch.MaxExclusiveAttempts,
		LocationStalenessWindow: cfg.Dispatch.LocationStalenessWindow,
		AllowAcceptedOrders:     cfg.Dispatch.AllowAcceptedOrders,
		AvgCourierSpeedKmh:      cfg.Dispatch.AvgCourierSpeedKmh,
	}
}

func provideServiceDispatch(
	orders dispatchService.OrderService,
	orderRepository dispatchService.OrderRepository,
	offers dispatchService.OfferService,
	courierRepository dispatchService.CourierRepository,
	deliveryRepository dispatchService.DeliveryRepository,
	codeFactory dispatchService.CodeFactory,
	notifier dispatchService.Notifier,
	txManager dispatchService.TxManager,
	dispatchCfg dispatchService.Config,
) *dispatchService.Dispatch {
	return dispatchService.New(
		orders,
		orderRepository,
		offers,
		courierRepository,
		deliveryRepository,
		codeFactory,
		notifier,
		txManager,
		dispatchCfg,
	)
}

func provideServiceTracking(
	deliveryRepository trackingService.DeliveryRepository,
	locationLog trackingService.LocationLogRepository,
	txManager trackingService.TxManager,
) *trackingService.Tracking {
	return trackingService.New(deliveryRepository, locationLog, txManager)
}

func provideStatusHandlerFabric(
	dispatch order_handle.DispatchService,
	offers order_handle.OfferService,
) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(dispatch, offers)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.OfferSweepInterval)
}

func provideRetryInterval(cfg *config.Config) RetryInterval {
	return RetryInterval(cfg.Tasks.DispatchRetryInterval)
}

func provideRetryGrace(cfg *config.Config) RetryGrace {
	return RetryGrace(cfg.Tasks.DispatchRetryGrace)
}

func provideOfferSweepTask(
	log logger.Logger,
	dispatch offer_sweep.Service,
	interval SweepInterval,
) *offer_sweep.OfferSweep {
	return offer_sweep.NewOfferSweep(log, dispatch, time.Duration(interval))
}

func provideDispatchRetryTask(
	log logger.Logger,
	dispatch dispatch_retry.Service,
	interval RetryInterval,
	grace RetryGrace,
) *dispatch_retry.DispatchRetry {
	return dispatch_retry.NewDispatchRetry(log, dispatch, time.Duration(interval), time.Duration(grace))
}

func provideTaskList(
	offerSweepTask *offer_sweep.OfferSweep,
	dispatchRetryTask *dispatch_retry.DispatchRetry,
) []background.Task {
	return []background.Task{
		offerSweepTask,
		dispatchRetryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
