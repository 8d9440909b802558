package fmtt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// DumpErrChain walks an error chain and renders each layer's type, message,
// and a spew dump of its fields, for callers that log through a structured
// logger instead of stdout (e.g. a panic-recovery middleware).
func DumpErrChain(err error) string {
	var b strings.Builder
	for i := 0; err != nil; err = errors.Unwrap(err) {
		fmt.Fprintf(&b, "[%d] %T: %v\n", i, err, err)
		b.WriteString(spew.Sdump(err))
		i++
	}
	return b.String()
}
