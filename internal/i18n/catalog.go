package i18n

var catalogs = map[string]map[string]string{
	LocaleZhCN: {
		"error.bad_request":             "请求参数错误",
		"error.unauthorized":            "未登录或登录已失效",
		"error.forbidden":               "无权访问该资源",
		"error.not_found":               "资源不存在",
		"error.internal":                "服务器内部错误",
		"error.too_many_requests":       "请求过于频繁",
		"error.rate_limited":            "请求过于频繁，请 %d 秒后再试",
		"error.rate_limit_unavailable":  "限流服务暂不可用",
		"error.login_too_many":          "登录尝试次数过多，请 %d 秒后再试",
		"error.auth_header_missing":     "缺少 Authorization 请求头",
		"error.auth_header_invalid":     "Authorization 请求头格式错误",
		"error.token_invalid":           "登录凭证无效",
		"error.token_revoked":           "登录凭证已失效，请重新登录",
		"error.jwt_secret_missing":      "JWT 密钥未配置",
		"error.user_id_type_invalid":    "用户 ID 类型错误",
		"error.user_disabled":           "账号已被禁用",
		"error.user_not_found":          "用户不存在",
		"error.email_invalid":           "邮箱格式错误",
		"error.email_exists":            "邮箱已被注册",
		"error.invalid_credentials":     "邮箱或密码错误",
		"error.password_weak":           "密码强度不足",
		"error.password_min_length":     "密码长度至少 %d 位",
		"error.password_require_upper":  "密码需包含大写字母",
		"error.password_require_lower":  "密码需包含小写字母",
		"error.password_require_number": "密码需包含数字",
		"error.password_require_special":"密码需包含特殊字符",
		"error.role_invalid":            "角色无效",
		"error.profile_empty":           "没有需要更新的资料",
		"error.user_fetch_failed":       "获取用户失败",
		"error.user_create_failed":      "创建用户失败",
		"error.user_update_failed":      "更新用户失败",
		"error.login_failed":            "登录失败",
		"error.register_failed":         "注册失败",
		"error.product_not_found":       "商品不存在",
		"error.product_fetch_failed":    "获取商品失败",
		"error.product_update_failed":   "保存商品失败",
		"error.product_price_invalid":   "商品价格无效",
		"error.product_stock_invalid":   "商品库存无效",
		"error.product_id_invalid":      "商品 ID 无效",
		"error.category_not_found":      "分类不存在",
		"error.category_exists":         "分类已存在",
		"error.category_fetch_failed":   "获取分类失败",
		"error.category_create_failed":  "创建分类失败",
		"error.price_range_invalid":     "价格区间无效",
		"error.cart_not_found":          "购物车不存在",
		"error.cart_item_not_found":     "购物车中没有该商品",
		"error.cart_update_failed":      "更新购物车失败",
		"error.cart_fetch_failed":       "获取购物车失败",
		"error.quantity_invalid":        "数量必须为正整数",
		"error.insufficient_stock":      "库存不足",
		"error.cart_empty":              "购物车为空",
		"error.cart_changed":            "购物车已变更，请重新结算",
		"error.order_not_found":         "订单不存在",
		"error.order_fetch_failed":      "获取订单失败",
		"error.order_create_failed":     "创建订单失败",
		"error.order_update_failed":     "更新订单失败",
		"error.order_already_confirmed": "订单已确认支付",
		"error.order_status_invalid":    "订单状态不允许该操作",
		"error.order_id_invalid":        "订单 ID 无效",
		"error.payment_failed":          "支付失败",
		"error.payment_create_failed":   "支付确认失败",
		"error.delivery_person_invalid": "配送员无效",
		"error.delivery_not_found":      "配送记录不存在",
		"error.delivery_status_invalid": "配送状态不允许该操作",
		"error.delivery_update_failed":  "更新配送失败",
		"error.delivery_fetch_failed":   "获取配送记录失败",
		"error.delivery_id_invalid":     "配送 ID 无效",
		"error.date_range_invalid":      "日期区间无效",
		"error.analytics_fetch_failed":  "获取统计数据失败",
	},
	LocaleEnUS: {
		"error.bad_request":             "bad request",
		"error.unauthorized":            "unauthorized",
		"error.forbidden":               "forbidden",
		"error.not_found":               "resource not found",
		"error.internal":                "internal server error",
		"error.too_many_requests":       "too many requests",
		"error.rate_limited":            "too many requests, please retry in %d seconds",
		"error.rate_limit_unavailable":  "rate limiter unavailable",
		"error.login_too_many":          "too many login attempts, please retry in %d seconds",
		"error.auth_header_missing":     "missing authorization header",
		"error.auth_header_invalid":     "invalid authorization header",
		"error.token_invalid":           "invalid token",
		"error.token_revoked":           "token revoked, please log in again",
		"error.jwt_secret_missing":      "jwt secret not configured",
		"error.user_id_type_invalid":    "invalid user id type",
		"error.user_disabled":           "user disabled",
		"error.user_not_found":          "user not found",
		"error.email_invalid":           "invalid email",
		"error.email_exists":            "email already registered",
		"error.invalid_credentials":     "invalid email or password",
		"error.password_weak":           "password too weak",
		"error.password_min_length":     "password must be at least %d characters",
		"error.password_require_upper":  "password must contain an uppercase letter",
		"error.password_require_lower":  "password must contain a lowercase letter",
		"error.password_require_number": "password must contain a number",
		"error.password_require_special":"password must contain a special character",
		"error.role_invalid":            "invalid role",
		"error.profile_empty":           "nothing to update",
		"error.user_fetch_failed":       "failed to fetch user",
		"error.user_create_failed":      "failed to create user",
		"error.user_update_failed":      "failed to update user",
		"error.login_failed":            "login failed",
		"error.register_failed":         "registration failed",
		"error.product_not_found":       "product not found",
		"error.product_fetch_failed":    "failed to fetch products",
		"error.product_update_failed":   "failed to save product",
		"error.product_price_invalid":   "invalid product price",
		"error.product_stock_invalid":   "invalid product stock",
		"error.product_id_invalid":      "invalid product id",
		"error.category_not_found":      "category not found",
		"error.category_exists":         "category already exists",
		"error.category_fetch_failed":   "failed to fetch categories",
		"error.category_create_failed":  "failed to create category",
		"error.price_range_invalid":     "invalid price range",
		"error.cart_not_found":          "cart not found",
		"error.cart_item_not_found":     "item not in cart",
		"error.cart_update_failed":      "failed to update cart",
		"error.cart_fetch_failed":       "failed to fetch cart",
		"error.quantity_invalid":        "quantity must be a positive integer",
		"error.insufficient_stock":      "insufficient stock",
		"error.cart_empty":              "cart is empty",
		"error.cart_changed":            "cart changed during checkout, please retry",
		"error.order_not_found":         "order not found",
		"error.order_fetch_failed":      "failed to fetch orders",
		"error.order_create_failed":     "failed to create order",
		"error.order_update_failed":     "failed to update order",
		"error.order_already_confirmed": "order already confirmed",
		"error.order_status_invalid":    "order status does not allow this operation",
		"error.order_id_invalid":        "invalid order id",
		"error.payment_failed":          "payment failed",
		"error.payment_create_failed":   "failed to confirm payment",
		"error.delivery_person_invalid": "invalid delivery person",
		"error.delivery_not_found":      "delivery not found",
		"error.delivery_status_invalid": "delivery status does not allow this operation",
		"error.delivery_update_failed":  "failed to update delivery",
		"error.delivery_fetch_failed":   "failed to fetch deliveries",
		"error.delivery_id_invalid":     "invalid delivery id",
		"error.date_range_invalid":      "invalid date range",
		"error.analytics_fetch_failed":  "failed to fetch analytics",
	},
}
