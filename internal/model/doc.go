package model

// Package model defines domain data structures shared across the app: catalog
// videos, admin jobs, categories and search suggestions, plus their status
// enums. Structures are plain values designed for direct binding in the UI.
