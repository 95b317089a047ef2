package ecode

import (
	"fmt"
)

const requiredMsg = "required"

// FieldIsRequired returns a field required message.
func FieldIsRequired(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], requiredMsg)
	}
	return requiredMsg
}
