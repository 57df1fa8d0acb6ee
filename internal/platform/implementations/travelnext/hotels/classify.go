package hotels

import (
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
)

// supplierErrorsIn probes the supplier's top-level Errors block on the
// search-family endpoints.
func supplierErrorsIn(decoded map[string]interface{}) (message string, code string, found bool) {
	errorsNode, ok := extracting.HasMap(decoded, "Errors")
	if !ok {
		return "", "", false
	}

	message = "API Error: " + extracting.String(errorsNode, "ErrorMessage", "Unknown error")
	code = extracting.String(errorsNode, "ErrorCode", "UNKNOWN")

	return message, code, true
}

// transactionErrorsIn covers the booking-family endpoints, which report
// failures either through the Errors block or a flat "error" key.
func transactionErrorsIn(
	decoded map[string]interface{},
	prefix string,
	fallbackMessage string,
	fallbackCode string,
) (message string, code string, found bool) {
	errorsNode, hasErrors := extracting.HasMap(decoded, "Errors")
	flatError := extracting.String(decoded, "error", "")

	if !hasErrors && flatError == "" {
		return "", "", false
	}

	message = flatError
	if message == "" {
		message = extracting.String(errorsNode, "ErrorMessage", fallbackMessage)
	}

	return prefix + message, extracting.String(errorsNode, "ErrorCode", fallbackCode), true
}
