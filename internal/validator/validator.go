// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"encoding/json"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// PayloadKind is the entity a POST /api/add body describes.
type PayloadKind int

// Payload kinds.
const (
	PayloadUnknown PayloadKind = iota
	PayloadUser
	PayloadCost
	PayloadAmbiguous
)

var (
	userKeys = []string{"first_name", "last_name", "birthday"}
	costKeys = []string{"description", "category", "userid", "sum"}
)

// Register registers all custom validators with the Gin binding engine.
// categories is the set accepted by the cost_category tag.
func Register(categories []string) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cost_category", costCategory(categories))
	}
}

func costCategory(categories []string) validator.Func {
	allowed := make(map[string]bool, len(categories))
	for _, c := range categories {
		allowed[c] = true
	}
	return func(fl validator.FieldLevel) bool {
		return allowed[fl.Field().String()]
	}
}

// ClassifyPayload decides by key presence whether body is a user or a cost.
// Keys of both kinds yield PayloadAmbiguous, keys of neither PayloadUnknown.
func ClassifyPayload(body map[string]json.RawMessage) PayloadKind {
	isUser := hasAny(body, userKeys)
	isCost := hasAny(body, costKeys)

	switch {
	case isUser && isCost:
		return PayloadAmbiguous
	case isUser:
		return PayloadUser
	case isCost:
		return PayloadCost
	}
	return PayloadUnknown
}

func hasAny(body map[string]json.RawMessage, keys []string) bool {
	for _, k := range keys {
		if _, ok := body[k]; ok {
			return true
		}
	}
	return false
}
