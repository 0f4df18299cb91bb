package providers

const (
	// Identifier for ip-api.com.
	NameIPAPI = "ip_api"

	// Identifier for ipinfo.io.
	NameIPInfo = "ipinfo"
)
