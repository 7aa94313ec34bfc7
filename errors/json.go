package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON form of an error. The wrapped chain is left
// out on purpose; paths and reasons travel in Context.
type ErrorResponse struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Classification string                 `json:"classification"`
	Context        map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse. Returns nil if err is nil.
//
// Example:
//
//	if _, err := folder.File("missing.txt"); err != nil {
//	    body, _ := json.Marshal(errors.ToJSON(err))
//	    // {"code":"NOT_FOUND","message":"file not found","classification":"PERMANENT","context":{"path":"/x/missing.txt","reason":"missing"}}
//	}
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	response := &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        err.Error(),
		Classification: string(GetClassification(err)),
	}

	var platformErr PlatformError
	if As(err, &platformErr) {
		response.Message = platformErr.Message()
		response.Context = platformErr.Context()
	}
	return response
}

// MarshalJSON lets a PlatformError be passed to json.Marshal directly.
func (e *platformError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	})
	if err != nil {
		return nil, Wrap(err, CodeInternal, "failed to marshal error response")
	}
	return data, nil
}
