package addinteli

import (
	"github.com/shopspring/decimal"
)

// The schema catalog. Every operation payload is validated against one of
// these closed record types before it may reach the network: required fields,
// per-field format constraints, and rejection of any field outside the
// schema. distributor_id and wallet_id are injected by the facades, never
// supplied by callers.

// BasePayload covers operations that need only a line identifier plus the
// reseller credentials (suspend, resume, benefit/plan/history queries).
type BasePayload struct {
	MSISDN        string `json:"msisdn" validate:"required,msisdn"`
	DistributorID string `json:"distributor_id" validate:"required,uuid_v4"`
	WalletID      string `json:"wallet_id" validate:"required,uuid_v4"`
}

// AccountPayload covers distributor-wide queries that carry no line
// identifier (plan catalog, city catalog).
type AccountPayload struct {
	DistributorID string `json:"distributor_id" validate:"required,uuid_v4"`
	WalletID      string `json:"wallet_id" validate:"required,uuid_v4"`
}

// DevicePayload covers device-compatibility checks (IMEI only).
type DevicePayload struct {
	IMEI          string `json:"imei" validate:"required,imei"`
	DistributorID string `json:"distributor_id" validate:"required,uuid_v4"`
	WalletID      string `json:"wallet_id" validate:"required,uuid_v4"`
}

// IMEIPayload covers IMEI lock/unlock, which bind a device to a line.
type IMEIPayload struct {
	IMEI          string `json:"imei" validate:"required,imei"`
	MSISDN        string `json:"msisdn" validate:"required,msisdn"`
	DistributorID string `json:"distributor_id" validate:"required,uuid_v4"`
	WalletID      string `json:"wallet_id" validate:"required,uuid_v4"`
}

// ActivationPayload covers line activation. Coordinates only apply to HBB
// (home broadband) activations and stay optional.
type ActivationPayload struct {
	BasePayload
	PlanName    string `json:"plan_name" validate:"required,plan"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,contact_email"`
	Address     string `json:"address" validate:"required"`
	Coordinates string `json:"coordinates,omitempty" validate:"omitempty"`
}

// PlanChangePayload covers primary plan changes and extended package
// activation.
type PlanChangePayload struct {
	BasePayload
	PlanName string `json:"plan_name" validate:"required,plan"`
}

// RechargePayload covers balance recharges. Monto is an exact decimal and
// must be strictly positive.
type RechargePayload struct {
	BasePayload
	Monto decimal.Decimal `json:"monto" validate:"amount"`
}

// PortabilityPayload covers port-in requests: the NIP is the 4-digit porting
// PIN issued by the donor carrier, the CURP identifies the subscriber.
type PortabilityPayload struct {
	BasePayload
	PortIn string `json:"port_in" validate:"required,msisdn"`
	NIP    string `json:"nip" validate:"required,len=4,numeric"`
	CURP   string `json:"curp" validate:"required,len=18,alphanum"`
}
