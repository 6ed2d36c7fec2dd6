package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func printMembers(cmd *cobra.Command) error {
	members, err := store.ListMembers(cmd.Context())
	if err != nil {
		return err
	}
	for _, m := range members {
		fmt.Fprintln(cmd.OutOrStdout(), m.Name)
	}
	return nil
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Show or edit the roster of people",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printMembers(cmd)
	},
}

var membersAddCmd = &cobra.Command{
	Use:   "add <name>...",
	Short: "Append names to the roster",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			name := strings.TrimSpace(arg)
			if name == "" {
				return errors.New("member name is required")
			}
			if err := store.AddMember(cmd.Context(), name); err != nil {
				return err
			}
		}
		return printMembers(cmd)
	},
}

var membersRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a name from the roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.RemoveMember(cmd.Context(), args[0]); err != nil {
			return err
		}
		return printMembers(cmd)
	},
}

var membersMvCmd = &cobra.Command{
	Use:   "mv <name> <position>",
	Short: "Move a name to a zero-based position in the roster",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		position, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid position %q: %w", args[1], err)
		}
		if err := store.MoveMember(cmd.Context(), args[0], position); err != nil {
			return err
		}
		return printMembers(cmd)
	},
}

func init() {
	rootCmd.AddCommand(membersCmd)
	membersCmd.AddCommand(membersAddCmd, membersRmCmd, membersMvCmd)
}
