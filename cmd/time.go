package main

import (
	"encoding/json"
	"fmt"

	"timeservice/internal/clock"
	"timeservice/internal/timeops"
	"timeservice/internal/timezone"

	"github.com/spf13/cobra"
)

// newTimeService builds the time operations against the real zone database
// and system clock, for one-shot CLI use.
func newTimeService() timeops.Service {
	return timeops.New(timezone.NewResolver(), clock.System{})
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}
	fmt.Println(string(out)) //nolint: forbidigo

	return nil
}

func nowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "now TIMEZONE",
		Short: "Prints the current time in the given IANA timezone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := newTimeService().CurrentTime(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printJSON(snap)
		},
	}
}

func convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert SOURCE_TIMEZONE HH:MM TARGET_TIMEZONE",
		Short: "Converts a wall-clock time from one IANA timezone to another",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := newTimeService().ConvertTime(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			return printJSON(conv)
		},
	}
}
