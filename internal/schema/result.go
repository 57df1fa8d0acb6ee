package schema

// Result is the envelope header shared by every public operation. Callers
// must branch on Success before touching the payload.
type Result struct {
	Success   bool    `json:"success"`
	Error     *string `json:"error,omitempty"`
	ErrorCode *string `json:"error_code,omitempty"`
}

func OkResult() Result {
	return Result{Success: true}
}

func FailedResult(message string) Result {
	return Result{
		Success: false,
		Error:   &message,
	}
}

func FailedResultWithCode(message string, code string) Result {
	return Result{
		Success:   false,
		Error:     &message,
		ErrorCode: &code,
	}
}

// Diagnostics carries the per-request error and supplier-request buckets
// rendered alongside every envelope.
type Diagnostics struct {
	Errors           *SupplierResponseErrors `json:"errors,omitempty"`
	SupplierRequests *SupplierRequests       `json:"supplier_requests,omitempty"`
}
