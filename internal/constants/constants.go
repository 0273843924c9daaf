package constants

// 订单状态常量
const (
	OrderStatusPendingPayment = "Pending Payment"
	OrderStatusConfirmed      = "Confirmed"
	OrderStatusShipped        = "Shipped"
	OrderStatusDelivered      = "Delivered"
	OrderStatusCancelled      = "Cancelled"
)

// 配送状态常量
const (
	DeliveryStatusPending    = "Pending"
	DeliveryStatusInProgress = "In Progress"
	DeliveryStatusCompleted  = "Completed"
	DeliveryStatusCancelled  = "Cancelled"
)

// 支付常量
const (
	PaymentProviderStub  = "stub"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// 用户角色常量
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleDelivery = "delivery"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 订单编号前缀
const (
	OrderNoPrefix = "SF"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "sf"
)

// 默认预计送达天数
const (
	DefaultEstimatedDeliveryDays = 5
)
