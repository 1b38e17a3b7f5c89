package entities

import "time"

// DeliveryStatistics агрегаты ведутся инкрементально в тех же транзакциях,
// что и смена статуса; полного скана на каждый запрос дашборда нет.
type DeliveryStatistics struct {
	TotalDeliveries     int64
	CompletedDeliveries int64
	InTransitDeliveries int64
	FailedDeliveries    int64
	ByStatus            map[OrderStatusType]int64
	AvgDeliveryTime     time.Duration
}
