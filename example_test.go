package vignes_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aretw0/vignes"
	"github.com/aretw0/vignes/pkg/domain"
)

// ExampleNew estimates the diffusivity of an equimolar mixture at 25 °C with the default constants.
func ExampleNew() {
	est, err := vignes.New()
	if err != nil {
		log.Fatal(err)
	}

	res, err := est.Estimate(context.Background(), domain.Query{Xa: 0.5, T: 298.15})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("ln(D) = %.4f\n", res.LnD)
	fmt.Printf("D = %.4e m²/s\n", res.D)
	fmt.Printf("error = %.3f %%\n", res.RelativeErrorPercent)
	// Output:
	// ln(D) = -11.1755
	// D = 1.4013e-05 m²/s
	// error = 5.362 %
}

// ExampleEstimator_Estimate_invalid shows how adapters distinguish validation failures.
func ExampleEstimator_Estimate_invalid() {
	est, err := vignes.New()
	if err != nil {
		log.Fatal(err)
	}

	_, err = est.Estimate(context.Background(), domain.Query{Xa: 1.2, T: 298.15})
	if errors.Is(err, domain.ErrInvalidInput) {
		fmt.Println(err)
	}
	// Output:
	// La fraction Xa doit être entre 0 et 1
}
