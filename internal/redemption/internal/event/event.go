package event

const RedemptionEvents = "redemption_events"

// RedemptionEvent 兑换成功之后发出，下游用来清缓存、做通知
type RedemptionEvent struct {
	Uid        int64 `json:"uid"`
	VoucherId  int64 `json:"voucherId"`
	PointsUsed int64 `json:"pointsUsed"`
}
