package addinteli

import "fmt"

// Carrier error codes with dedicated handling at call sites.
const (
	CodeInsufficientBalance  = 1009
	CodeLineAlreadySuspended = 1027
)

// errorCatalog maps Addinteli numeric error codes to the operator-facing
// messages. Messages are kept in Spanish, as surfaced to resellers.
var errorCatalog = map[int]string{
	1001: "MSISDN inválido o mal formado",
	1002: "Línea no encontrada",
	1003: "Línea inactiva",
	1004: "Distribuidor no autorizado para esta operación",
	1005: "Plan no disponible para este distribuidor",
	1007: "Transacción duplicada",
	1009: "No se cuenta con saldo suficiente",
	1010: "IMEI inválido o mal formado",
	1012: "IMEI ya se encuentra bloqueado",
	1015: "Portabilidad en proceso para esta línea",
	1020: "Wallet inválida o sin permisos",
	1027: "Línea ya suspendida",
	1030: "Línea ya se encuentra activa",
	1033: "Equipo no compatible con la red",
	1036: "Región no cubierta",
}

// TranslateError maps a carrier error code to its catalog message, or a
// generic unknown-error message carrying the code.
func TranslateError(code int) string {
	if msg, ok := errorCatalog[code]; ok {
		return msg
	}
	return fmt.Sprintf("Error desconocido (código: %d)", code)
}
