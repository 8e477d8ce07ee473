package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/hts"
)

var htsRegistry string

var htsCmd = &cobra.Command{
	Use:   "hts",
	Short: "Validate, format and match HTS code patterns",
}

var htsValidateCmd = &cobra.Command{
	Use:   "validate CODES",
	Short: "Validate a comma-separated list of HTS code patterns",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHTSValidate,
}

var htsFormatCmd = &cobra.Command{
	Use:   "format CODES",
	Short: "Reformat raw digits as xxxx.xx.xx.xx",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHTSFormat,
}

var htsMatchCmd = &cobra.Command{
	Use:   "match CODE PATTERNS",
	Short: "Check whether a code matches any of the patterns",
	Args:  cobra.ExactArgs(2),
	RunE:  runHTSMatch,
}

var htsEditCmd = &cobra.Command{
	Use:   "edit OLD NEW",
	Short: "Replace registered codes",
	Long: `Replaces the OLD codes with the NEW codes, pairing them by position.
The last old code takes any surplus new codes; an old code without a
partner is removed. --registry lists the codes registered before the edit.`,
	Example: `  drawback hts edit "1111.11.11.11" "2222.22.22.22, 3333.33.33.33" --registry "1111.11.11.11"`,
	Args:    cobra.ExactArgs(2),
	RunE:    runHTSEdit,
}

func init() {
	htsEditCmd.Flags().StringVar(&htsRegistry, "registry", "", "comma-separated codes registered before the edit")
	htsCmd.AddCommand(htsValidateCmd)
	htsCmd.AddCommand(htsFormatCmd)
	htsCmd.AddCommand(htsMatchCmd)
	htsCmd.AddCommand(htsEditCmd)
	rootCmd.AddCommand(htsCmd)
}

func runHTSValidate(cmd *cobra.Command, args []string) error {
	s, err := session()
	if err != nil {
		return err
	}

	result := s.Validator.ValidateCodes(strings.Join(args, ","))
	printValidation(cmd, result)
	if !result.OK() {
		return fmt.Errorf("validation failed: %w", result.LastErr)
	}
	return nil
}

func printValidation(cmd *cobra.Command, result domain.ValidationResult) {
	cmd.Printf("Valid: %s\n", listOrNone(result.ValidCodes))
	if len(result.InvalidCodes) > 0 {
		cmd.Printf("Invalid: %s\n", strings.Join(result.InvalidCodes, ", "))
	}
	if len(result.DuplicateCodes) > 0 {
		cmd.Printf("Duplicate: %s\n", strings.Join(result.DuplicateCodes, ", "))
	}
	for _, issue := range result.Issues {
		cmd.Printf("  %s: %v\n", issue.Code, issue.Err)
	}
}

func runHTSFormat(cmd *cobra.Command, args []string) error {
	s, err := session()
	if err != nil {
		return err
	}
	cmd.Println(s.Validator.AutoFormat(strings.Join(args, ",")))
	return nil
}

func runHTSMatch(cmd *cobra.Command, args []string) error {
	code, patterns := args[0], hts.SplitList(args[1])
	if len(patterns) == 0 {
		return fmt.Errorf("%w: no patterns given", domain.ErrInvalidInput)
	}

	compiled := hts.CompileAll(patterns)
	if len(compiled) == 0 {
		return fmt.Errorf("%w: none of the patterns is valid", domain.ErrMalformedPattern)
	}

	for _, p := range compiled {
		if p.Match(code) {
			cmd.Printf("%s matches %s\n", code, p)
			return nil
		}
	}
	cmd.Printf("%s matches none of %s\n", code, strings.Join(patterns, ", "))
	return nil
}

func runHTSEdit(cmd *cobra.Command, args []string) error {
	s, err := session()
	if err != nil {
		return err
	}

	if htsRegistry != "" {
		if seeded := s.Validator.ValidateCodes(htsRegistry); !seeded.OK() {
			printValidation(cmd, seeded)
			return fmt.Errorf("--registry: %w", seeded.LastErr)
		}
	}

	result, err := s.Validator.EditCodes(args[0], args[1])
	if err != nil {
		return fmt.Errorf("edit failed: %w", err)
	}

	for _, e := range result.SuccessfulEdits {
		cmd.Printf("Replaced %s with %s\n", e.OldCode, listOrNone(e.NewCodes))
	}
	for _, e := range result.FailedEdits {
		cmd.Printf("Kept %s: %v\n", e.OldCode, e.Err)
	}
	cmd.Printf("Registry: %s\n", listOrNone(s.Validator.Codes()))

	if !result.OK() {
		return errors.New(s.Validator.ErrorMessage())
	}
	return nil
}

func listOrNone(codes []string) string {
	if len(codes) == 0 {
		return "(none)"
	}
	return strings.Join(codes, ", ")
}
