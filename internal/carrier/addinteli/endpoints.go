// Package addinteli implements the outbound client for the Addinteli
// wholesale API (v8.0): payload validation against a closed schema catalog,
// authenticated HTTP calls with retry and backoff, structured error-code
// translation and masked audit logging.
package addinteli

// Fixed endpoint paths, relative to the per-mode base URL.
const (
	EndpointActivation       = "/activation"
	EndpointSuspend          = "/suspend"
	EndpointResume           = "/resume"
	EndpointChangeOffer      = "/change_offer"
	EndpointPurchase         = "/purchase"
	EndpointPurchaseExtended = "/purchase_extended"
	EndpointPurchaseSearch   = "/purchase_search"
	EndpointPortability      = "/portability"
	EndpointGetBenefits      = "/get_benefits_v3"
	EndpointCheckDevice      = "/check_device"
	EndpointLockIMEI         = "/lock_imei"
	EndpointUnlockIMEI       = "/unlock_imei"
	EndpointAvailablePlans   = "/planes_disponibles"
	EndpointChangeRegion     = "/change_region"
)
