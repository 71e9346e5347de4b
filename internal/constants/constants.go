package constants

// 分页常量
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// 队列常量
const (
	QueueDefault      = "default"
	TaskOrderRecorded = "order:recorded"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "mk"
)

// 限流键常量
const (
	RateLimitPurchasePrefix = "rate:purchase"
)
