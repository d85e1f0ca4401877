package addinteli

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/mexared/carrier-gateway/internal/domain/values"
)

// maxPayloadLogBytes bounds the serialized payload in one audit record.
const maxPayloadLogBytes = 2048

// truncationMarker is appended when the serialized payload was cut.
const truncationMarker = "..."

// AuditLogger emits one structured record per completed carrier call. It is
// the only component allowed to log a subscriber number, and only masked.
type AuditLogger struct {
	logger *zap.Logger
}

// NewAuditLogger creates an AuditLogger writing through the given zap logger.
func NewAuditLogger(logger *zap.Logger) *AuditLogger {
	return &AuditLogger{logger: logger.Named("addinteli.audit")}
}

// LogRequest records a completed call: endpoint, method, status, elapsed
// time, the masked and bounded payload, and the full response body. Failure
// records pass the structured error record as response.
func (a *AuditLogger) LogRequest(endpoint, method string, payload map[string]interface{}, statusCode int, response interface{}, elapsed time.Duration) {
	a.logger.Info("carrier request",
		zap.String("time_iso", time.Now().UTC().Format(time.RFC3339)),
		zap.String("endpoint", endpoint),
		zap.String("method", method),
		zap.Int("status_code", statusCode),
		zap.Int64("time_ms", elapsed.Milliseconds()),
		zap.String("payload", renderPayload(payload)),
		zap.Any("response", response),
	)
}

// renderPayload serializes the masked payload and bounds its size: serialize
// first, then slice to maxPayloadLogBytes, appending the marker only when
// the unsliced serialization exceeded the bound. Slicing before the length
// check would mis-handle boundary-length payloads.
func renderPayload(payload map[string]interface{}) string {
	data, err := json.Marshal(maskValue(payload))
	if err != nil {
		return "<unserializable>"
	}
	if len(data) > maxPayloadLogBytes {
		return string(data[:maxPayloadLogBytes]) + truncationMarker
	}
	return string(data)
}

// maskValue walks a decoded JSON value and masks every msisdn field,
// wherever it nests. All other fields pass through verbatim.
func maskValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		masked := make(map[string]interface{}, len(val))
		for k, item := range val {
			if k == "msisdn" {
				if s, ok := item.(string); ok {
					masked[k] = values.MaskMSISDN(s)
					continue
				}
			}
			masked[k] = maskValue(item)
		}
		return masked
	case []interface{}:
		masked := make([]interface{}, len(val))
		for i, item := range val {
			masked[i] = maskValue(item)
		}
		return masked
	default:
		return v
	}
}
