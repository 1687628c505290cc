package config

const (
	EnvPrefix = "STOREFRONT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv                  = "STOREFRONT_APP_ENV"
	EnvPort                    = "STOREFRONT_APP_PORT"
	EnvLogLevel                = "STOREFRONT_LOG_LEVEL"
	EnvRedisURL                = "STOREFRONT_REDIS_URL"
	EnvCORSOrigins             = "STOREFRONT_CORS_ORIGINS"
	EnvCheckoutContactEndpoint = "STOREFRONT_CHECKOUT_CONTACT_ENDPOINT"
	EnvShippingRegularCost     = "STOREFRONT_SHIPPING_REGULAR_COST"
	EnvShippingFastCost        = "STOREFRONT_SHIPPING_FAST_COST"
	EnvShippingCargoCost       = "STOREFRONT_SHIPPING_CARGO_COST"
	EnvNotifyToastTTL          = "STOREFRONT_NOTIFY_TOAST_TTL"
)
