package nutrients

// Macros holds nutrient values per 100 g of an ingredient.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// PerGrams scales the per-100g values to the given weight.
func (m Macros) PerGrams(grams float64) Macros {
	factor := grams / 100
	return Macros{
		Calories: m.Calories * factor,
		Protein:  m.Protein * factor,
		Carbs:    m.Carbs * factor,
		Fat:      m.Fat * factor,
	}
}
