package output

import "github.com/mj1618/axtree/internal/model"

// Envelope is the top-level response of every operation.
//
//	{"success": true, "data": ...}
//	{"success": false, "error": "NotFound", "message": "..."}
//
// A failed recipe also carries its partial results in Data.
type Envelope struct {
	Success bool            `yaml:"success"           json:"success"`
	Data    interface{}     `yaml:"data,omitempty"    json:"data,omitempty"`
	Error   model.ErrorCode `yaml:"error,omitempty"   json:"error,omitempty"`
	Message string          `yaml:"message,omitempty" json:"message,omitempty"`
}

// Success wraps a payload.
func Success(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Failure wraps err, mapping it onto the error taxonomy. data may be nil.
func Failure(err error, data interface{}) Envelope {
	return Envelope{
		Success: false,
		Data:    data,
		Error:   model.CodeOf(err),
		Message: model.MessageOf(err),
	}
}
