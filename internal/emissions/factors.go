package emissions

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AnyFuel keys the per-km factor used for a travel mode regardless of fuel type.
const AnyFuel = ""

// anyFuelAlias lets YAML files spell AnyFuel as a readable key.
const anyFuelAlias = "any"

// CanonicalVersion identifies the built-in factor table.
const CanonicalVersion = "2024-ref-1"

// FactorTable holds every multiplier used to convert raw quantities to kg CO2e.
// One table is active per process; calculators and reports never carry their
// own constants.
type FactorTable struct {
	Version string `json:"version" yaml:"version"`
	// Travel maps mode -> fuel type -> kg CO2e per km. The AnyFuel key applies
	// when the fuel type is missing or not listed for the mode.
	Travel      map[string]map[string]float64 `json:"travel" yaml:"travel"`
	Electricity float64                       `json:"electricity" yaml:"electricity"`
	VegMeal     float64                       `json:"vegMeal" yaml:"veg_meal"`
	NonVegMeal  float64                       `json:"nonVegMeal" yaml:"non_veg_meal"`
	Shopping    float64                       `json:"shopping" yaml:"shopping"`
	Waste       float64                       `json:"waste" yaml:"waste"`
	// Comparison converts summed raw quantities (km, kWh, meals, currency, kg)
	// into kg CO2e when estimating savings between two periods.
	Comparison map[Category]float64 `json:"comparison" yaml:"comparison"`
}

// Canonical returns the reference factor table.
func Canonical() *FactorTable {
	return &FactorTable{
		Version: CanonicalVersion,
		Travel: map[string]map[string]float64{
			"car": {
				"petrol": 0.24,
				"diesel": 0.27,
				"ev":     0.05,
			},
			"bus":    {AnyFuel: 0.12},
			"bike":   {AnyFuel: 0.10},
			"train":  {AnyFuel: 0.05},
			"flight": {AnyFuel: 0.25},
		},
		Electricity: 0.9,
		VegMeal:     0.5,
		NonVegMeal:  2.0,
		Shopping:    0.03,
		Waste:       1.2,
		Comparison: map[Category]float64{
			Travel:      0.21,
			Electricity: 0.9,
			Meals:       2.0,
			Shopping:    0.03,
			Waste:       1.2,
		},
	}
}

// TravelFactor resolves the per-km factor for mode and fuel type.
// Unknown or empty values resolve to 0.
func (ft *FactorTable) TravelFactor(mode, fuelType string) float64 {
	byFuel, ok := ft.Travel[normalize(mode)]
	if !ok {
		return 0
	}
	if f, ok := byFuel[normalize(fuelType)]; ok {
		return f
	}
	return byFuel[AnyFuel]
}

// ComparisonFactor returns the raw-quantity factor of category, 0 when absent.
func (ft *FactorTable) ComparisonFactor(c Category) float64 {
	return ft.Comparison[c]
}

func (ft *FactorTable) Validate() error {
	if strings.TrimSpace(ft.Version) == "" {
		return errors.New("factor table version is empty")
	}
	scalars := map[string]float64{
		"electricity":  ft.Electricity,
		"veg_meal":     ft.VegMeal,
		"non_veg_meal": ft.NonVegMeal,
		"shopping":     ft.Shopping,
		"waste":        ft.Waste,
	}
	for name, v := range scalars {
		if v < 0 {
			return fmt.Errorf("factor %s is negative: %v", name, v)
		}
	}
	for mode, byFuel := range ft.Travel {
		for fuel, v := range byFuel {
			if v < 0 {
				return fmt.Errorf("travel factor %s/%s is negative: %v", mode, fuel, v)
			}
		}
	}
	for _, c := range Categories {
		v, ok := ft.Comparison[c]
		if !ok {
			return fmt.Errorf("comparison factor for %s is missing", c)
		}
		if v < 0 {
			return fmt.Errorf("comparison factor for %s is negative: %v", c, v)
		}
	}
	return nil
}

// LoadFactorTable reads a YAML factor table. Mode and fuel keys are
// lower-cased so lookups stay case-insensitive.
func LoadFactorTable(path string) (*FactorTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading factor table error: " + err.Error())
	}
	return ParseFactorTable(data)
}

func ParseFactorTable(data []byte) (*FactorTable, error) {
	var ft FactorTable
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, errors.New("parsing factor table error: " + err.Error())
	}
	travel := make(map[string]map[string]float64, len(ft.Travel))
	for mode, byFuel := range ft.Travel {
		fuels := make(map[string]float64, len(byFuel))
		for fuel, v := range byFuel {
			key := normalize(fuel)
			if key == anyFuelAlias {
				key = AnyFuel
			}
			fuels[key] = v
		}
		travel[normalize(mode)] = fuels
	}
	ft.Travel = travel
	if err := ft.Validate(); err != nil {
		return nil, err
	}
	return &ft, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
