package nutrients

import (
	"context"
	"strings"
)

// staticMacroTable covers the foods that dominate generated meal plans, so
// the external nutrient API is only hit for the long tail. Values are per
// 100 g, cooked unless stated otherwise.
var staticMacroTable = map[string]Macros{
	// proteins
	"chicken breast":   {Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	"chicken thigh":    {Calories: 209, Protein: 26, Carbs: 0, Fat: 10.9},
	"ground chicken":   {Calories: 143, Protein: 17.4, Carbs: 0, Fat: 8.1},
	"turkey":           {Calories: 189, Protein: 29, Carbs: 0, Fat: 7.4},
	"ground turkey":    {Calories: 203, Protein: 27.4, Carbs: 0, Fat: 10.4},
	"turkey bacon":     {Calories: 382, Protein: 29.5, Carbs: 2.2, Fat: 28.1},
	"ground beef":      {Calories: 250, Protein: 26, Carbs: 0, Fat: 15},
	"lean ground beef": {Calories: 185, Protein: 27, Carbs: 0, Fat: 8},
	"beef steak":       {Calories: 271, Protein: 25, Carbs: 0, Fat: 19},
	"sirloin":          {Calories: 206, Protein: 31, Carbs: 0, Fat: 8.2},
	"pork chop":        {Calories: 231, Protein: 25.7, Carbs: 0, Fat: 13.8},
	"pork tenderloin":  {Calories: 143, Protein: 26, Carbs: 0, Fat: 3.5},
	"bacon":            {Calories: 541, Protein: 37, Carbs: 1.4, Fat: 42},
	"salmon":           {Calories: 208, Protein: 20, Carbs: 0, Fat: 13},
	"tuna":             {Calories: 132, Protein: 28, Carbs: 0, Fat: 1.3},
	"canned tuna":      {Calories: 116, Protein: 25.5, Carbs: 0, Fat: 0.8},
	"cod":              {Calories: 82, Protein: 18, Carbs: 0, Fat: 0.7},
	"tilapia":          {Calories: 96, Protein: 20, Carbs: 0, Fat: 1.7},
	"shrimp":           {Calories: 99, Protein: 24, Carbs: 0.2, Fat: 0.3},
	"white fish":       {Calories: 105, Protein: 23, Carbs: 0, Fat: 0.9},
	"egg":              {Calories: 143, Protein: 12.6, Carbs: 0.7, Fat: 9.5},
	"egg white":        {Calories: 52, Protein: 10.9, Carbs: 0.7, Fat: 0.2},
	"tofu":             {Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8},
	"tempeh":           {Calories: 193, Protein: 19, Carbs: 9.4, Fat: 11},
	"seitan":           {Calories: 141, Protein: 25, Carbs: 5.3, Fat: 2},
	"whey protein":     {Calories: 400, Protein: 80, Carbs: 8, Fat: 5},
	"protein powder":   {Calories: 400, Protein: 78, Carbs: 9, Fat: 5},

	// dairy
	"greek yogurt":   {Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4},
	"yogurt":         {Calories: 61, Protein: 3.5, Carbs: 4.7, Fat: 3.3},
	"cottage cheese": {Calories: 98, Protein: 11, Carbs: 3.4, Fat: 4.3},
	"cheddar cheese": {Calories: 403, Protein: 25, Carbs: 1.3, Fat: 33},
	"mozzarella":     {Calories: 280, Protein: 28, Carbs: 3.1, Fat: 17},
	"feta":           {Calories: 264, Protein: 14, Carbs: 4.1, Fat: 21},
	"parmesan":       {Calories: 431, Protein: 38, Carbs: 4.1, Fat: 29},
	"milk":           {Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3},
	"skim milk":      {Calories: 34, Protein: 3.4, Carbs: 5, Fat: 0.1},
	"almond milk":    {Calories: 17, Protein: 0.6, Carbs: 0.6, Fat: 1.2},
	"butter":         {Calories: 717, Protein: 0.9, Carbs: 0.1, Fat: 81},
	"cream cheese":   {Calories: 342, Protein: 5.9, Carbs: 4.1, Fat: 34},

	// grains and carbs
	"white rice":     {Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3},
	"brown rice":     {Calories: 112, Protein: 2.6, Carbs: 24, Fat: 0.9},
	"basmati rice":   {Calories: 121, Protein: 3.5, Carbs: 25, Fat: 0.4},
	"rice":           {Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3},
	"quinoa":         {Calories: 120, Protein: 4.4, Carbs: 21, Fat: 1.9},
	"oats":           {Calories: 389, Protein: 16.9, Carbs: 66, Fat: 6.9},
	"oatmeal":        {Calories: 71, Protein: 2.5, Carbs: 12, Fat: 1.5},
	"pasta":          {Calories: 131, Protein: 5, Carbs: 25, Fat: 1.1},
	"whole wheat pasta": {
		Calories: 124, Protein: 5.3, Carbs: 26.5, Fat: 0.5,
	},
	"bread":             {Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2},
	"whole wheat bread": {Calories: 247, Protein: 13, Carbs: 41, Fat: 3.4},
	"tortilla":          {Calories: 312, Protein: 8.2, Carbs: 51, Fat: 7.7},
	"couscous":          {Calories: 112, Protein: 3.8, Carbs: 23, Fat: 0.2},
	"potato":            {Calories: 86, Protein: 1.7, Carbs: 20, Fat: 0.1},
	"sweet potato":      {Calories: 90, Protein: 2, Carbs: 21, Fat: 0.2},
	"rice cake":         {Calories: 387, Protein: 8.2, Carbs: 81.5, Fat: 2.8},
	"bagel":             {Calories: 250, Protein: 10, Carbs: 49, Fat: 1.5},
	"granola":           {Calories: 471, Protein: 10, Carbs: 64, Fat: 20},

	// legumes
	"black beans":  {Calories: 132, Protein: 8.9, Carbs: 24, Fat: 0.5},
	"kidney beans": {Calories: 127, Protein: 8.7, Carbs: 22.8, Fat: 0.5},
	"chickpeas":    {Calories: 164, Protein: 8.9, Carbs: 27, Fat: 2.6},
	"lentils":      {Calories: 116, Protein: 9, Carbs: 20, Fat: 0.4},
	"edamame":      {Calories: 121, Protein: 12, Carbs: 8.9, Fat: 5.2},
	"hummus":       {Calories: 166, Protein: 7.9, Carbs: 14.3, Fat: 9.6},

	// produce
	"broccoli":     {Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4},
	"spinach":      {Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4},
	"kale":         {Calories: 49, Protein: 4.3, Carbs: 8.8, Fat: 0.9},
	"lettuce":      {Calories: 15, Protein: 1.4, Carbs: 2.9, Fat: 0.2},
	"mixed greens": {Calories: 17, Protein: 1.5, Carbs: 3.3, Fat: 0.2},
	"tomato":       {Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2},
	"cucumber":     {Calories: 15, Protein: 0.7, Carbs: 3.6, Fat: 0.1},
	"bell pepper":  {Calories: 31, Protein: 1, Carbs: 6, Fat: 0.3},
	"onion":        {Calories: 40, Protein: 1.1, Carbs: 9.3, Fat: 0.1},
	"garlic":       {Calories: 149, Protein: 6.4, Carbs: 33, Fat: 0.5},
	"carrot":       {Calories: 41, Protein: 0.9, Carbs: 9.6, Fat: 0.2},
	"zucchini":     {Calories: 17, Protein: 1.2, Carbs: 3.1, Fat: 0.3},
	"mushroom":     {Calories: 22, Protein: 3.1, Carbs: 3.3, Fat: 0.3},
	"asparagus":    {Calories: 20, Protein: 2.2, Carbs: 3.9, Fat: 0.1},
	"green beans":  {Calories: 31, Protein: 1.8, Carbs: 7, Fat: 0.2},
	"cauliflower":  {Calories: 25, Protein: 1.9, Carbs: 5, Fat: 0.3},
	"banana":       {Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3},
	"apple":        {Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2},
	"orange":       {Calories: 47, Protein: 0.9, Carbs: 12, Fat: 0.1},
	"blueberries":  {Calories: 57, Protein: 0.7, Carbs: 14.5, Fat: 0.3},
	"strawberries": {Calories: 32, Protein: 0.7, Carbs: 7.7, Fat: 0.3},
	"raspberries":  {Calories: 52, Protein: 1.2, Carbs: 11.9, Fat: 0.7},
	"grapes":       {Calories: 69, Protein: 0.7, Carbs: 18, Fat: 0.2},
	"pineapple":    {Calories: 50, Protein: 0.5, Carbs: 13, Fat: 0.1},
	"mango":        {Calories: 60, Protein: 0.8, Carbs: 15, Fat: 0.4},
	"berries":      {Calories: 50, Protein: 0.9, Carbs: 12, Fat: 0.4},

	// fats, nuts, seeds
	"olive oil":      {Calories: 884, Protein: 0, Carbs: 0, Fat: 100},
	"coconut oil":    {Calories: 862, Protein: 0, Carbs: 0, Fat: 100},
	"avocado":        {Calories: 160, Protein: 2, Carbs: 8.5, Fat: 14.7},
	"almonds":        {Calories: 579, Protein: 21, Carbs: 22, Fat: 50},
	"walnuts":        {Calories: 654, Protein: 15, Carbs: 14, Fat: 65},
	"cashews":        {Calories: 553, Protein: 18, Carbs: 30, Fat: 44},
	"peanuts":        {Calories: 567, Protein: 26, Carbs: 16, Fat: 49},
	"peanut butter":  {Calories: 588, Protein: 25, Carbs: 20, Fat: 50},
	"almond butter":  {Calories: 614, Protein: 21, Carbs: 19, Fat: 56},
	"chia seeds":     {Calories: 486, Protein: 17, Carbs: 42, Fat: 31},
	"flax seeds":     {Calories: 534, Protein: 18, Carbs: 29, Fat: 42},
	"pumpkin seeds":  {Calories: 559, Protein: 30, Carbs: 11, Fat: 49},
	"sunflower seed": {Calories: 584, Protein: 21, Carbs: 20, Fat: 51},
	"coconut milk":   {Calories: 230, Protein: 2.3, Carbs: 5.5, Fat: 24},

	// pantry
	"honey":          {Calories: 304, Protein: 0.3, Carbs: 82, Fat: 0},
	"maple syrup":    {Calories: 260, Protein: 0, Carbs: 67, Fat: 0.1},
	"soy sauce":      {Calories: 53, Protein: 8.1, Carbs: 4.9, Fat: 0.6},
	"salsa":          {Calories: 36, Protein: 1.5, Carbs: 7, Fat: 0.2},
	"marinara sauce": {Calories: 50, Protein: 1.4, Carbs: 8, Fat: 1.5},
	"dark chocolate": {Calories: 598, Protein: 7.8, Carbs: 46, Fat: 43},
}

var _ Tier = (*StaticTable)(nil)

type StaticTable struct {
	table map[string]Macros
}

func NewStaticTable() *StaticTable {
	return &StaticTable{
		table: staticMacroTable,
	}
}

func (st *StaticTable) Name() string {
	return "static-table"
}

// Resolve matches the normalized ingredient name against the table. A key
// matches when every one of its words appears as a substring of the name;
// the key with the most words wins, so "ground turkey" beats "turkey" for
// "ground turkey breast".
func (st *StaticTable) Resolve(_ context.Context, normalizedName string) (*Macros, bool, error) {
	var bestKey string
	bestWords := 0

	for key := range st.table {
		words := strings.Fields(key)
		allMatch := true
		for _, word := range words {
			if !strings.Contains(normalizedName, word) {
				allMatch = false
				break
			}
		}
		if !allMatch {
			continue
		}
		if len(words) > bestWords || (len(words) == bestWords && key < bestKey) {
			bestKey = key
			bestWords = len(words)
		}
	}

	if bestKey == "" {
		return nil, false, nil
	}

	m := st.table[bestKey]
	return &m, true, nil
}
