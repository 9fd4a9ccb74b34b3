// Package consolidate joins a project with its member prompts and
// computes the project's full statistics. It is the single authority for
// execution-derived aggregates; stores never compute these themselves.
package consolidate

import (
	"sort"
	"time"

	"github.com/jmallek/promptstash/internal/model"
)

// Project builds a consolidation snapshot for one project. Stale prompt
// ids (members that no longer resolve) are silently dropped. The same
// project and prompt data always produce the same result apart from the
// GeneratedAt stamp.
func Project(project model.Project, allPrompts []model.Prompt) *model.ConsolidationResult {
	prompts := resolvePrompts(project.PromptIDs, allPrompts)
	executions := flattenExecutions(prompts)

	return &model.ConsolidationResult{
		Project:          project,
		Prompts:          prompts,
		ExecutionHistory: executions,
		Statistics:       statistics(prompts, executions),
		GeneratedAt:      time.Now(),
	}
}

// resolvePrompts maps member ids to prompt records, preserving the
// project's membership order and dropping ids that do not resolve.
func resolvePrompts(promptIDs []string, allPrompts []model.Prompt) []model.Prompt {
	byID := make(map[string]model.Prompt, len(allPrompts))
	for _, p := range allPrompts {
		byID[p.ID] = p
	}

	out := make([]model.Prompt, 0, len(promptIDs))
	for _, id := range promptIDs {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// flattenExecutions merges every member prompt's execution history into
// one timeline, oldest first.
func flattenExecutions(prompts []model.Prompt) []model.ExecutionHistory {
	out := []model.ExecutionHistory{}
	for _, p := range prompts {
		out = append(out, p.ExecutionHistory...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExecutedAt.Before(out[j].ExecutedAt)
	})
	return out
}

// statistics computes the full aggregate over resolved prompts and their
// flattened executions.
func statistics(prompts []model.Prompt, executions []model.ExecutionHistory) model.ProjectStatistics {
	stats := model.ProjectStatistics{
		TotalPrompts:      len(prompts),
		TotalExecutions:   len(executions),
		ExecutionsByModel: map[string]int{},
		CostByModel:       map[string]float64{},
	}

	for _, p := range prompts {
		stats.TotalVersions += len(p.Versions)
	}

	for _, e := range executions {
		stats.TotalTokensUsed += e.TokensUsed
		stats.TotalCost += e.EstimatedCost
		stats.ExecutionsByModel[e.Model]++
		stats.CostByModel[e.Model] += e.EstimatedCost
	}

	if len(executions) > 0 {
		stats.AverageTokensPerExecution = float64(stats.TotalTokensUsed) / float64(len(executions))
	}

	// Highest usage count wins; on a tie the earliest member keeps it.
	for i := range prompts {
		if stats.MostUsedPrompt == nil || prompts[i].UsageCount > stats.MostUsedPrompt.UsageCount {
			p := prompts[i]
			stats.MostUsedPrompt = &p
		}
	}

	stats.MostExpensiveModel = mostExpensiveModel(stats.CostByModel)
	return stats
}

// mostExpensiveModel returns the model with the highest accumulated
// cost. Ties break lexicographically so the result is deterministic.
func mostExpensiveModel(costByModel map[string]float64) string {
	models := make([]string, 0, len(costByModel))
	for m := range costByModel {
		models = append(models, m)
	}
	sort.Strings(models)

	best := ""
	bestCost := -1.0
	for _, m := range models {
		if costByModel[m] > bestCost {
			best = m
			bestCost = costByModel[m]
		}
	}
	return best
}
