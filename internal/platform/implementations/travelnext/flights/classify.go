package flights

import (
	"github.com/tripyverse/travelnext-hub/internal/tools/extracting"
)

// supplierErrorsIn probes the supplier's top-level Errors block, which
// precedes any payload envelope when present.
func supplierErrorsIn(decoded map[string]interface{}) (message string, code string, found bool) {
	errorsNode, ok := extracting.HasMap(decoded, "Errors")
	if !ok {
		return "", "", false
	}

	message = "API Error: " + extracting.String(errorsNode, "ErrorMessage", "Unknown error")
	code = extracting.String(errorsNode, "ErrorCode", "UNKNOWN")

	return message, code, true
}
