// Entry command group.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage journal entries",
}

func init() {
	entryCmd.AddCommand(entryAddCmd)
	entryCmd.AddCommand(entryListCmd)
	entryCmd.AddCommand(entryShowCmd)
	entryCmd.AddCommand(entrySearchCmd)
	entryCmd.AddCommand(entryDeleteCmd)
	entryCmd.AddCommand(entryFavoriteCmd)
}

// moodNames maps mood levels to display words.
var moodNames = map[int]string{
	types.MoodVerySad:   "very-sad",
	types.MoodSad:       "sad",
	types.MoodNeutral:   "neutral",
	types.MoodHappy:     "happy",
	types.MoodVeryHappy: "very-happy",
}

// moodValues is the reverse of moodNames for flag parsing.
var moodValues = map[string]int{
	"very-sad":   types.MoodVerySad,
	"sad":        types.MoodSad,
	"neutral":    types.MoodNeutral,
	"happy":      types.MoodHappy,
	"very-happy": types.MoodVeryHappy,
}
