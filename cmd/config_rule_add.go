package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"worktally/config"
)

var (
	configRuleAddName     string
	configRuleAddTemplate string
	configRuleAddPhase    string
)

var configRuleAddPromptInput io.Reader = os.Stdin

var configRuleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one import rule to the config.",
	Long: `Store a new rules entry in the active config file.

Values not given as flags are asked for interactively.`,
	Example: `
  # Rows of blog*.csv files without a phase column get phase PL-7
  worktally config rule add --name blog --template "blog*.csv" --phase PL-7

  # Ask for all values
  worktally config rule add
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := resolveConfigEditPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		_, err = ensureConfigFileWithTemplate(configPath)
		if err != nil {
			return err
		}

		reader := bufio.NewReader(configRuleAddPromptInput)
		newRule, err := promptRule(reader, os.Stdout, config.Rule{
			Name:         configRuleAddName,
			FileTemplate: configRuleAddTemplate,
			Phase:        configRuleAddPhase,
		})
		if err != nil {
			return err
		}

		current, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("read config file: %w", err)
		}

		updated, err := appendRuleToConfigYAML(current, newRule)
		if err != nil {
			return err
		}

		if err := os.WriteFile(configPath, updated, 0o600); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}

		fmt.Println("Rule added successfully.")
		fmt.Printf("Config:   %s\n", configPath)
		fmt.Printf("Name:     %s\n", newRule.Name)
		fmt.Printf("Template: %s\n", newRule.FileTemplate)
		fmt.Printf("Phase:    %s\n", newRule.Phase)
		return nil
	},
}

// promptRule fills the empty fields of rule from reader.
func promptRule(reader *bufio.Reader, out io.Writer, rule config.Rule) (config.Rule, error) {
	fields := []struct {
		label string
		value *string
	}{
		{label: "Rule name", value: &rule.Name},
		{label: "File template (example: blog*.csv)", value: &rule.FileTemplate},
		{label: "Phase (example: PL-7)", value: &rule.Phase},
	}
	for _, field := range fields {
		if strings.TrimSpace(*field.value) != "" {
			*field.value = strings.TrimSpace(*field.value)
			continue
		}
		value, err := promptRequiredString(reader, out, field.label)
		if err != nil {
			return config.Rule{}, err
		}
		*field.value = value
	}
	return rule, nil
}

func promptRequiredString(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	for {
		fmt.Fprintf(out, "%s: ", strings.TrimSpace(label))
		input, err := reader.ReadString('\n')
		value := strings.TrimSpace(input)
		if err != nil {
			if err == io.EOF && value != "" {
				return value, nil
			}
			return "", fmt.Errorf("read %s: %w", strings.TrimSpace(strings.ToLower(label)), err)
		}
		if value == "" {
			fmt.Fprintln(out, "Value must not be empty.")
			continue
		}
		return value, nil
	}
}

func appendRuleToConfigYAML(content []byte, rule config.Rule) ([]byte, error) {
	if strings.TrimSpace(rule.Name) == "" {
		return nil, fmt.Errorf("rule name is required")
	}
	if strings.TrimSpace(rule.FileTemplate) == "" {
		return nil, fmt.Errorf("file template is required")
	}
	if strings.TrimSpace(rule.Phase) == "" {
		return nil, fmt.Errorf("phase is required")
	}

	doc := map[string]any{}
	if strings.TrimSpace(string(content)) != "" {
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	rulesList, err := ensureSliceAny(doc, "rules")
	if err != nil {
		return nil, err
	}

	for _, existing := range rulesList {
		ruleMap, ok := existing.(map[string]any)
		if !ok {
			continue
		}
		existingName, _ := ruleMap["name"].(string)
		if strings.EqualFold(strings.TrimSpace(existingName), strings.TrimSpace(rule.Name)) {
			return nil, fmt.Errorf("rule with name %q already exists", rule.Name)
		}
	}

	rulesList = append(rulesList, map[string]any{
		"name":          rule.Name,
		"file_template": rule.FileTemplate,
		"phase":         rule.Phase,
	})
	doc["rules"] = rulesList

	updated, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal updated config yaml: %w", err)
	}
	if _, err := config.ValidateYAMLContent(updated); err != nil {
		return nil, fmt.Errorf("updated config is invalid: %w", err)
	}
	return updated, nil
}

func ensureSliceAny(doc map[string]any, key string) ([]any, error) {
	raw, exists := doc[key]
	if !exists || raw == nil {
		result := []any{}
		doc[key] = result
		return result, nil
	}
	result, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("config key %q must be a list", key)
	}
	return result, nil
}

func init() {
	configRuleCmd.AddCommand(configRuleAddCmd)

	configRuleAddCmd.Flags().StringVar(&configRuleAddName, "name", "", "Rule name (unique, case-insensitive)")
	configRuleAddCmd.Flags().StringVar(&configRuleAddTemplate, "template", "", "File name pattern, e.g. blog*.csv")
	configRuleAddCmd.Flags().StringVar(&configRuleAddPhase, "phase", "", "Phase assigned to matching rows")
}
