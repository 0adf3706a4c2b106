package dataset_test

import (
	"fmt"
	"log"

	"github.com/ednalab/rarecurve/curvefit"
	"github.com/ednalab/rarecurve/dataset"
	"github.com/ednalab/rarecurve/format"
)

// Example demonstrates the full pipeline: pack observation series into a
// container, restore them, and fit a saturation curve.
func Example() {
	enc, err := dataset.NewEncoder(dataset.WithCompression(format.CompressionS2))
	if err != nil {
		log.Fatal(err)
	}

	err = enc.Add(dataset.Series{
		Name:   "site-a/edna-2026",
		Counts: []float64{9, 17, 23, 29, 33, 38, 41, 44, 47, 50},
	})
	if err != nil {
		log.Fatal(err)
	}

	data, err := enc.Finish()
	if err != nil {
		log.Fatal(err)
	}

	dec, err := dataset.NewDecoder(data)
	if err != nil {
		log.Fatal(err)
	}

	counts, ok := dec.CountsByName("site-a/edna-2026")
	if !ok {
		log.Fatal("series missing from container")
	}

	result := curvefit.Fit(counts, curvefit.ModelMichaelisMenten)
	if result == nil {
		log.Fatal("fitting not applicable")
	}

	fmt.Printf("series restored: %d observations\n", len(counts))
	fmt.Printf("model: %s\n", result.Model)

	// Output:
	// series restored: 10 observations
	// model: michaelis-menten
}
