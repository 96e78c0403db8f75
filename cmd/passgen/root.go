package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/spf13/cobra"
)

var errNonPositiveLength = errors.New("length must be at least 1")

func newRootCmd(gen *crypto.Generator) *cobra.Command {
	root := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords and score password strength",
		Long: `passgen generates random passwords from selectable character classes
and rates any password as Weak, Moderate or Strong with per-criterion feedback.`,
		SilenceUsage: true,
	}

	root.AddCommand(newGenerateCmd(gen), newCheckCmd(), newHashAdminCmd())
	return root
}

func newGenerateCmd(gen *crypto.Generator) *cobra.Command {
	opts := crypto.DefaultOptions()
	count := 1

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Length < 1 {
				return errNonPositiveLength
			}
			for range count {
				password, err := gen.Generate(opts)
				if err != nil {
					return err
				}
				report := crypto.CheckStrength(password)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", password, report.Label)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.Length, "length", "l", opts.Length, "password length")
	flags.BoolVar(&opts.Uppercase, "uppercase", opts.Uppercase, "include uppercase letters")
	flags.BoolVar(&opts.Lowercase, "lowercase", opts.Lowercase, "include lowercase letters")
	flags.BoolVar(&opts.Numbers, "numbers", opts.Numbers, "include numbers")
	flags.BoolVar(&opts.Symbols, "symbols", opts.Symbols, "include special characters")
	flags.BoolVar(&opts.LegacyPatch, "legacy", false, "patch missing classes at index 0 (later patches overwrite earlier ones)")
	flags.IntVarP(&count, "count", "n", 1, "number of passwords to generate")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <password>",
		Short: "Score a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report := crypto.CheckStrength(args[0])
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Strength: %s (%d/%d)\n", report.Label, report.Score, crypto.MaxScore)
			fmt.Fprintln(out, strings.Join(report.Feedback, "\n"))
			return nil
		},
	}
}

func newHashAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-admin <password>",
		Short: "Print an argon2id hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := crypto.HashSecret(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
