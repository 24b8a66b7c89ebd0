package heal_test

import (
	"fmt"

	"github.com/rowmend/rowmend/fuzzy"
	"github.com/rowmend/rowmend/heal"
	"github.com/rowmend/rowmend/schema"
)

// ExampleHealer_HealRow heals a ledger row whose account delimiter was
// overwritten by a corruption marker.
func ExampleHealer_HealRow() {
	s, _ := schema.New(
		schema.FieldSpec{Name: "id", Validate: schema.Identifier("TXN", 0)},
		schema.FieldSpec{Name: "from_id", Validate: schema.Identifier("ACC", 0)},
		schema.FieldSpec{Name: "to_id", Validate: schema.Identifier("ACC", 0)},
		schema.FieldSpec{Name: "amount", Validate: schema.Numeric()},
	)

	opts := heal.DefaultOptions()
	opts.References = fuzzy.NewReferenceSet(map[string][]string{
		"from_id": {"ACC1", "ACC2"},
		"to_id":   {"ACC1", "ACC2"},
	})
	h, _ := heal.New(s, opts)

	rec, entry := h.HealRow(0, "TXN1|ACC1lACC2|55.00")
	fmt.Println(entry.Outcome, rec)
	for _, c := range entry.Corrections {
		fmt.Printf("%s: %q -> %q (%.2f)\n", c.Field, c.Original, c.Corrected, c.Confidence)
	}
	// Output:
	// Healed [TXN1 ACC1 ACC2 55.00]
	// from_id: "ACC1" -> "ACC1" (1.00)
	// to_id: "ACC2" -> "ACC2" (1.00)
}
