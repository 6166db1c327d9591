package recipes

// Package recipes implements the recipe store behind the form: validated
// add-recipe, add-ingredient and add-step mutations, the unfiltered snapshot
// used as filter input, name ordering via a locale-aware collator, and the
// name / food group / calorie filter.
