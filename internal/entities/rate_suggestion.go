package entities

type RateQuery struct {
	PickupAddress   string
	DeliveryAddress string
	WeightKg        float64
	Urgent          bool
}

type RateSuggestion struct {
	Amount      int64
	Currency    string
	DeliveryFee int64
	Rationale   string
}
