package addinteli

import (
	"context"

	apperrors "github.com/mexared/carrier-gateway/internal/domain/errors"
)

// Line lifecycle operations. Each facade merges the reseller credentials
// into the caller's payload, validates against its schema and posts to the
// operation's fixed endpoint. The decoded response is returned unchanged.

// withAccount copies the payload and injects distributor_id and wallet_id
// from the session. The merge overwrites anything the caller passed under
// those keys.
func (c *Client) withAccount(payload map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(payload)+2)
	for k, v := range payload {
		merged[k] = v
	}
	merged["distributor_id"] = c.distributorID
	merged["wallet_id"] = c.walletID
	return merged
}

// ActivateLine activates a line (msisdn, plan_name, name, email, address,
// optional coordinates).
func (c *Client) ActivateLine(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	var schema ActivationPayload
	if err := Validate(c.withAccount(payload), &schema); err != nil {
		return nil, err
	}
	return c.Post(ctx, EndpointActivation, schema)
}

// SuspendLine suspends a line. A carrier "already suspended" failure is
// remapped to a conflict so callers can treat the suspend as idempotent.
func (c *Client) SuspendLine(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	var schema BasePayload
	if err := Validate(c.withAccount(payload), &schema); err != nil {
		return nil, err
	}
	result, err := c.Post(ctx, EndpointSuspend, schema)
	if err != nil {
		if apperrors.CarrierCode(err) == CodeLineAlreadySuspended {
			return nil, apperrors.NewConflictError(TranslateError(CodeLineAlreadySuspended)).
				WithCarrierCode(CodeLineAlreadySuspended).
				WithCause(err)
		}
		return nil, err
	}
	return result, nil
}

// ResumeLine reactivates a suspended line.
func (c *Client) ResumeLine(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	var schema BasePayload
	if err := Validate(c.withAccount(payload), &schema); err != nil {
		return nil, err
	}
	return c.Post(ctx, EndpointResume, schema)
}

// ChangePlan changes a line's primary plan (msisdn, plan_name).
func (c *Client) ChangePlan(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	var schema PlanChangePayload
	if err := Validate(c.withAccount(payload), &schema); err != nil {
		return nil, err
	}
	return c.Post(ctx, EndpointChangeOffer, schema)
}

// QueryBenefits returns the remaining data/SMS/voice benefits for a line.
func (c *Client) QueryBenefits(ctx context.Context, msisdn string) (map[string]interface{}, error) {
	var schema BasePayload
	if err := Validate(c.withAccount(map[string]interface{}{"msisdn": msisdn}), &schema); err != nil {
		return nil, err
	}
	return c.Post(ctx, EndpointGetBenefits, schema)
}
