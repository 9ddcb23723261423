package ufe_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kargones/ufe/internal/pkg/ufe"
)

type quotaError struct {
	limit int
}

func (e *quotaError) Error() string { return fmt.Sprintf("quota %d exceeded", e.limit) }

func ExampleExplain() {
	r := ufe.NewRegistry()
	r.Register(ufe.For(func(e *quotaError, _ *ufe.Context) ufe.UserFacingError {
		return ufe.Leaf(ufe.NewCause().
			WithSummary("Storage is full").
			WithExtendedReason(fmt.Sprintf("Remove files or raise the limit of %d GB.", e.limit)))
	}))
	r.Freeze()

	tree := ufe.Explain(&quotaError{limit: 10}, ufe.NewContext(ufe.WithRegistry(r)))

	fmt.Println(tree.Error.Summary)
	fmt.Println(tree.Error.ExtendedReason)
	// Output:
	// Storage is full
	// Remove files or raise the limit of 10 GB.
}

func ExampleUserFacingError_Walk() {
	err := fmt.Errorf("sync: %w", fmt.Errorf("upload: %w", errors.New("timeout")))
	ctx := ufe.NewContext(ufe.WithRegistry(ufe.NewRegistry()), ufe.WithChainExpansion(true))

	ufe.Explain(err, ctx).Walk(func(node ufe.UserFacingError, depth int) bool {
		if depth > 0 {
			fmt.Println(strings.Repeat("  ", depth) + node.Error.Summary)
		}
		return true
	})
	// Output:
	//   upload: timeout
	//     timeout
}
