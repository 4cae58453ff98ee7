package cli

import (
	"io"
	"os"

	"session-booking/internal/domain/availability"
	"session-booking/internal/infra/repository"
	"session-booking/internal/pkg/errs"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type RuleCheckResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	Days  int    `json:"days"`
}

func NewRuleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Validate and apply the availability rule",
	}
	cmd.AddCommand(newRuleCheckCommand(rootOpts))
	cmd.AddCommand(newRuleApplyCommand(rootOpts))
	return cmd
}

func newRuleCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check -f rule.yaml",
		Short: "Validate a rule file without touching the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := LoadRuleFile(file)
			result := RuleCheckResult{Valid: err == nil}
			if err != nil {
				result.Error = err.Error()
			} else {
				result.Days = len(rule.WeeklyAvailability)
			}
			if outErr := output(cmd.OutOrStdout(), rootOpts.Format, result, func(w io.Writer) {
				if result.Valid {
					printf(w, "rule OK: %d day(s) with availability, timezone %s\n", result.Days, rule.Timezone)
					for _, d := range weekOrder {
						if blocks, ok := rule.WeeklyAvailability[d]; ok {
							printf(w, "  %s %v\n", d, blocks)
						}
					}
					return
				}
				printf(w, "rule invalid: %s\n", result.Error)
			}); outErr != nil {
				return outErr
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "rule file (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newRuleApplyCommand(rootOpts *RootOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "apply -f rule.yaml",
		Short: "Validate a rule file and store it as the default rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := LoadRuleFile(file)
			if err != nil {
				return err
			}
			_, pool, cleanup, err := rootOpts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := repository.NewRuleRepository(pool).SaveDefaultRule(cmd.Context(), rule)
			if err != nil {
				return err
			}
			rootOpts.logger(cmd).Debug("rule stored", "rule_id", id)
			return output(cmd.OutOrStdout(), rootOpts.Format, map[string]int64{"ruleId": id}, func(w io.Writer) {
				printf(w, "default rule stored (id %d)\n", id)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "rule file (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// LoadRuleFile reads a YAML rule and validates it as the slot engine would.
func LoadRuleFile(path string) (availability.Rule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return availability.Rule{}, errs.Wrapf(err, "read %s", path)
	}
	return ParseRule(raw)
}

func ParseRule(raw []byte) (availability.Rule, error) {
	var rule availability.Rule
	if err := yaml.Unmarshal(raw, &rule); err != nil {
		return availability.Rule{}, errs.Mark(errs.Wrap(err, "decode rule"), errs.ErrValidation)
	}
	if err := rule.Validate(); err != nil {
		return availability.Rule{}, err
	}
	return rule, nil
}

var weekOrder = []availability.Weekday{
	availability.Monday, availability.Tuesday, availability.Wednesday, availability.Thursday,
	availability.Friday, availability.Saturday, availability.Sunday,
}
