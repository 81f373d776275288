package treefile

import "github.com/arthur-debert/layout/pkg/types"

// Example returns a small sample tree, used by "layout show --example" and
// in tests
func Example() *types.Entry {
	return types.Dir("fauna",
		types.Dir("domestic",
			types.Dir("pet",
				types.Dir("cat",
					types.Dir("persian"),
					types.Dir("tabby",
						types.Dir("white",
							types.File("white.py"),
						),
					),
				),
				types.Dir("dog"),
			),
			types.Dir("notpet"),
		),
		types.Dir("wild"),
	)
}
