package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmallek/promptstash/internal/model"
)

// DetailedReport renders the full project report as Markdown: settings,
// every prompt with its version and execution history, and the complete
// statistics block.
func DetailedReport(result *model.ConsolidationResult) string {
	var b strings.Builder
	project := result.Project
	stats := result.Statistics

	fmt.Fprintf(&b, "# %s - Full Report\n\n", project.Name)
	if project.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", project.Description)
	}
	fmt.Fprintf(&b, "*Generated on %s*\n\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("## Project Settings\n\n")
	writeSettings(&b, project.Settings)
	b.WriteString("\n")

	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "- **Total Prompts:** %d\n", stats.TotalPrompts)
	fmt.Fprintf(&b, "- **Total Versions:** %d\n", stats.TotalVersions)
	fmt.Fprintf(&b, "- **Total Executions:** %d\n", stats.TotalExecutions)
	fmt.Fprintf(&b, "- **Total Tokens Used:** %d\n", stats.TotalTokensUsed)
	fmt.Fprintf(&b, "- **Total Cost:** $%.4f\n", stats.TotalCost)
	fmt.Fprintf(&b, "- **Average Tokens per Execution:** %.1f\n", stats.AverageTokensPerExecution)
	if stats.MostUsedPrompt != nil {
		fmt.Fprintf(&b, "- **Most Used Prompt:** %s (%d uses)\n", stats.MostUsedPrompt.Title, stats.MostUsedPrompt.UsageCount)
	}
	if stats.MostExpensiveModel != "" {
		fmt.Fprintf(&b, "- **Most Expensive Model:** %s\n", stats.MostExpensiveModel)
	}
	b.WriteString("\n")

	if len(stats.ExecutionsByModel) > 0 {
		b.WriteString("### Model Usage Distribution\n\n")
		for _, m := range sortedKeys(stats.ExecutionsByModel) {
			fmt.Fprintf(&b, "- **%s:** %d executions\n", m, stats.ExecutionsByModel[m])
		}
		b.WriteString("\n### Cost Breakdown by Model\n\n")
		for _, m := range sortedCostKeys(stats.CostByModel) {
			fmt.Fprintf(&b, "- **%s:** $%.4f\n", m, stats.CostByModel[m])
		}
		b.WriteString("\n")
	}

	b.WriteString("## Prompts\n")
	for i, p := range result.Prompts {
		b.WriteString("\n---\n\n")
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, p.Title)
		writePromptBody(&b, p)
	}

	return b.String()
}

// ExecutiveSummary renders the short README-style overview of a
// project.
func ExecutiveSummary(result *model.ConsolidationResult) string {
	var b strings.Builder
	project := result.Project
	stats := result.Statistics

	fmt.Fprintf(&b, "# %s\n\n", project.Name)
	description := project.Description
	if description == "" {
		description = "AI Prompt Project"
	}
	fmt.Fprintf(&b, "%s\n\n", description)

	b.WriteString("## Quick Stats\n\n")
	fmt.Fprintf(&b, "- **%d** prompts\n", stats.TotalPrompts)
	fmt.Fprintf(&b, "- **%d** total executions\n", stats.TotalExecutions)
	fmt.Fprintf(&b, "- **$%.4f** total cost\n", stats.TotalCost)
	fmt.Fprintf(&b, "- **%d** tokens used\n\n", stats.TotalTokensUsed)

	b.WriteString("## Project Settings\n\n")
	fmt.Fprintf(&b, "- **Default Model:** %s\n", project.Settings.DefaultModel)
	fmt.Fprintf(&b, "- **Token Limit:** %d\n", project.Settings.DefaultTokenLimit)
	fmt.Fprintf(&b, "- **Temperature:** %.1f\n\n", temperatureOrDefault(project.Settings))

	b.WriteString("## Prompts in this Project\n")
	for i, p := range result.Prompts {
		fmt.Fprintf(&b, "\n### %d. %s\n\n", i+1, p.Title)
		fmt.Fprintf(&b, "**Category:** %s\n", p.Category)
		fmt.Fprintf(&b, "**Tags:** %s\n\n", tagList(p.Tags))
		fmt.Fprintf(&b, "```\n%s\n```\n", p.Content)
		if p.Description != "" {
			fmt.Fprintf(&b, "\n> %s\n", p.Description)
		}
		fmt.Fprintf(&b, "\n**Usage:** %d times | **Versions:** %d\n", p.UsageCount, len(p.Versions))
		if i < len(result.Prompts)-1 {
			b.WriteString("\n---\n")
		}
	}

	if len(stats.ExecutionsByModel) > 0 {
		b.WriteString("\n## Model Usage Distribution\n\n")
		for _, m := range sortedKeys(stats.ExecutionsByModel) {
			fmt.Fprintf(&b, "- **%s:** %d executions\n", m, stats.ExecutionsByModel[m])
		}
	}

	fmt.Fprintf(&b, "\n---\n\n*Generated on %s*\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))
	return b.String()
}

// PromptDocument renders one prompt as a standalone Markdown file, as
// placed in the prompts/ folder of the zip bundle.
func PromptDocument(p model.Prompt) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	fmt.Fprintf(&b, "**Category:** %s\n", p.Category)
	fmt.Fprintf(&b, "**Tags:** %s\n", tagList(p.Tags))
	fmt.Fprintf(&b, "**Created:** %s\n", p.CreatedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "**Updated:** %s\n\n", p.UpdatedAt.Format("2006-01-02"))

	if p.Description != "" {
		fmt.Fprintf(&b, "## Description\n\n%s\n\n", p.Description)
	}

	fmt.Fprintf(&b, "## Prompt Content\n\n```\n%s\n```\n\n", p.Content)

	b.WriteString("## Metadata\n\n")
	fmt.Fprintf(&b, "- **Usage Count:** %d\n", p.UsageCount)
	fmt.Fprintf(&b, "- **Favorite:** %s\n", yesNo(p.IsFavorite))
	fmt.Fprintf(&b, "- **Versions:** %d\n", len(p.Versions))
	fmt.Fprintf(&b, "- **Executions:** %d\n", len(p.ExecutionHistory))

	if len(p.Versions) > 0 {
		b.WriteString("\n## Version History\n")
		for i, v := range p.Versions {
			fmt.Fprintf(&b, "\n### Version %d - %s\n", i+1, v.Type)
			fmt.Fprintf(&b, "**Date:** %s\n\n", v.Timestamp.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(&b, "```\n%s\n```\n", v.Content)
		}
	}

	if len(p.ExecutionHistory) > 0 {
		b.WriteString("\n## Execution History\n")
		for i, e := range p.ExecutionHistory {
			fmt.Fprintf(&b, "\n### Execution %d\n", i+1)
			fmt.Fprintf(&b, "**Model:** %s\n", e.Model)
			fmt.Fprintf(&b, "**Date:** %s\n", e.ExecutedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(&b, "**Tokens:** %d\n", e.TokensUsed)
			fmt.Fprintf(&b, "**Cost:** $%.6f\n", e.EstimatedCost)
			if e.Notes != "" {
				fmt.Fprintf(&b, "**Notes:** %s\n", e.Notes)
			}
		}
	}

	return b.String()
}

// SettingsDocument renders the PROJECT_SETTINGS.md file for the zip
// bundle.
func SettingsDocument(result *model.ConsolidationResult) string {
	var b strings.Builder
	project := result.Project
	stats := result.Statistics

	b.WriteString("# Project Settings\n\n")
	fmt.Fprintf(&b, "## %s\n\n", project.Name)
	description := project.Description
	if description == "" {
		description = "N/A"
	}
	fmt.Fprintf(&b, "**Description:** %s\n", description)
	fmt.Fprintf(&b, "**Created:** %s\n", project.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Last Updated:** %s\n\n", project.UpdatedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("## Default Configuration\n\n")
	writeSettings(&b, project.Settings)
	b.WriteString("\n## Project Tags\n\n")
	if len(project.Settings.Tags) > 0 {
		for _, tag := range project.Settings.Tags {
			fmt.Fprintf(&b, "- %s\n", tag)
		}
	} else {
		b.WriteString("No tags\n")
	}

	b.WriteString("\n## Statistics\n\n")
	fmt.Fprintf(&b, "- **Total Prompts:** %d\n", stats.TotalPrompts)
	fmt.Fprintf(&b, "- **Total Executions:** %d\n", stats.TotalExecutions)
	fmt.Fprintf(&b, "- **Total Cost:** $%.4f\n", stats.TotalCost)
	fmt.Fprintf(&b, "- **Total Tokens:** %d\n", stats.TotalTokensUsed)

	return b.String()
}

func writeSettings(b *strings.Builder, s model.ProjectSettings) {
	fmt.Fprintf(b, "- **Model:** %s\n", s.DefaultModel)
	fmt.Fprintf(b, "- **Token Limit:** %d\n", s.DefaultTokenLimit)
	fmt.Fprintf(b, "- **Temperature:** %.1f\n", temperatureOrDefault(s))
	fmt.Fprintf(b, "- **Cost per 1K Tokens:** $%g\n", s.EstimatedCostPerToken)
}

func writePromptBody(b *strings.Builder, p model.Prompt) {
	fmt.Fprintf(b, "**Category:** %s\n", p.Category)
	fmt.Fprintf(b, "**Tags:** %s\n", tagList(p.Tags))
	fmt.Fprintf(b, "**Usage:** %d times | **Favorite:** %s\n\n", p.UsageCount, yesNo(p.IsFavorite))
	if p.Description != "" {
		fmt.Fprintf(b, "> %s\n\n", p.Description)
	}
	fmt.Fprintf(b, "```\n%s\n```\n", p.Content)
	if len(p.Versions) > 0 {
		fmt.Fprintf(b, "\n**Versions:** %d", len(p.Versions))
		b.WriteString("\n")
	}
	if len(p.ExecutionHistory) > 0 {
		fmt.Fprintf(b, "\n**Executions:** %d\n", len(p.ExecutionHistory))
	}
}

func tagList(tags []string) string {
	if len(tags) == 0 {
		return "None"
	}
	return strings.Join(tags, ", ")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func temperatureOrDefault(s model.ProjectSettings) float64 {
	if s.Temperature != nil {
		return *s.Temperature
	}
	return 0.7
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedCostKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
