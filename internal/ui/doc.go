package ui

// Package ui contains the Fyne-based desktop recipe form. It wires the entry
// fields and buttons to the recipe store, renders the recipe, ingredient and
// step lists, and reports validation errors and calorie warnings. All UI
// strings are localized via Localization.
