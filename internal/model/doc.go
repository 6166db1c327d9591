package model

// Package model defines the recipe data structures shared by the store and the
// UI: recipes, their ingredients and preparation steps, and the calorie
// aggregation over them. Structures are plain values designed for direct
// rendering in list rows.
