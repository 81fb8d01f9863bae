package atlas

import (
	"fmt"

	"github.com/ib-77/ropatlas/pkg/rop"
)

// Report renders a population outcome as a single console line.
func Report(res rop.WithError[int]) string {
	if res.IsSuccess() {
		return fmt.Sprintf("%d thousand inhabitants", res.Result())
	}
	if res.Err() == nil {
		return "Error: no result"
	}
	return fmt.Sprintf("Error: %v", res.Err())
}
