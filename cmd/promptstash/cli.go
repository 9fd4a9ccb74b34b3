package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jmallek/promptstash/internal/config"
	"github.com/jmallek/promptstash/internal/consolidate"
	"github.com/jmallek/promptstash/internal/errors"
	"github.com/jmallek/promptstash/internal/export"
	"github.com/jmallek/promptstash/internal/model"
	"github.com/jmallek/promptstash/internal/optimize"
	"github.com/jmallek/promptstash/internal/store"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(prompts *store.PromptStore, projects *store.ProjectStore, writer *export.Writer, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "promptstash",
		Usage:   "Prompt library with project consolidation",
		Version: Version,
		Commands: []*cli.Command{
			promptCmd(prompts),
			collectionCmd(prompts),
			categoryCmd(prompts),
			projectCmd(projects, prompts),
			modelCmd(),
			consolidateCmd(projects, prompts, writer),
			optimizeCmd(prompts, cfg),
			exportCmd(prompts, writer),
			importCmd(prompts),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// promptCmd groups prompt CRUD and lifecycle subcommands.
func promptCmd(prompts *store.PromptStore) *cli.Command {
	return &cli.Command{
		Name:  "prompt",
		Usage: "Manage prompts",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a new prompt (reads content from stdin or --content)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Required: true, Usage: "Prompt title"},
					&cli.StringFlag{Name: "content", Usage: "Prompt content (stdin is used when omitted)"},
					&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Category name"},
					&cli.StringFlag{Name: "tags", Usage: "Comma-separated tags"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Short description"},
					&cli.BoolFlag{Name: "favorite", Usage: "Mark as favorite"},
				},
				Action: func(c *cli.Context) error {
					content := c.String("content")
					if content == "" && stdinHasData() {
						text, err := readStdin()
						if err != nil {
							return outputError(errors.NewInternal(err))
						}
						content = text
					}

					input := store.PromptInput{
						Title:       c.String("title"),
						Content:     content,
						Category:    c.String("category"),
						Description: c.String("description"),
						IsFavorite:  c.Bool("favorite"),
					}
					if tags := c.String("tags"); tags != "" {
						input.Tags = parseTags(tags)
					}

					prompt, err := prompts.AddPrompt(input)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(prompt)
				},
			},
			{
				Name:      "get",
				Usage:     "Fetch a prompt by ID",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					prompt, err := prompts.GetPrompt(c.Args().First())
					if err != nil {
						return outputError(err)
					}
					return outputJSON(prompt)
				},
			},
			{
				Name:      "update",
				Usage:     "Update an existing prompt (optionally reads content from stdin)",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "New title"},
					&cli.StringFlag{Name: "content", Usage: "New content"},
					&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "New category"},
					&cli.StringFlag{Name: "tags", Usage: "New comma-separated tags"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "New description"},
				},
				Action: func(c *cli.Context) error {
					update := store.PromptUpdate{}

					if c.IsSet("title") {
						title := c.String("title")
						update.Title = &title
					}
					if c.IsSet("content") {
						content := c.String("content")
						update.Content = &content
					} else if stdinHasData() {
						text, err := readStdin()
						if err != nil {
							return outputError(errors.NewInternal(err))
						}
						if text != "" {
							update.Content = &text
						}
					}
					if c.IsSet("category") {
						category := c.String("category")
						update.Category = &category
					}
					if c.IsSet("tags") {
						tags := parseTags(c.String("tags"))
						update.Tags = &tags
					}
					if c.IsSet("description") {
						description := c.String("description")
						update.Description = &description
					}

					prompt, err := prompts.UpdatePrompt(c.Args().First(), update)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(prompt)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a prompt",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if err := prompts.DeletePrompt(id); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"deleted": true, "id": id})
				},
			},
			{
				Name:      "duplicate",
				Usage:     "Duplicate a prompt",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					prompt, err := prompts.DuplicatePrompt(c.Args().First())
					if err != nil {
						return outputError(err)
					}
					return outputJSON(prompt)
				},
			},
			{
				Name:      "favorite",
				Usage:     "Toggle a prompt's favorite flag",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					prompt, err := prompts.ToggleFavorite(c.Args().First())
					if err != nil {
						return outputError(err)
					}
					return outputJSON(prompt)
				},
			},
			{
				Name:      "use",
				Usage:     "Record a use of a prompt (increments usage count)",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if err := prompts.IncrementUsageCount(id); err != nil {
						return outputError(err)
					}
					prompt, err := prompts.GetPrompt(id)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(prompt)
				},
			},
			{
				Name:      "version",
				Usage:     "Snapshot a new version of a prompt (reads content from stdin or --content)",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "content", Usage: "Version content (stdin is used when omitted)"},
					&cli.StringFlag{Name: "type", Value: "manual", Usage: "Version type: manual|optimized"},
				},
				Action: func(c *cli.Context) error {
					content := c.String("content")
					if content == "" && stdinHasData() {
						text, err := readStdin()
						if err != nil {
							return outputError(errors.NewInternal(err))
						}
						content = text
					}

					version, err := prompts.AddVersion(c.Args().First(), content, model.VersionType(c.String("type")))
					if err != nil {
						return outputError(err)
					}
					return outputJSON(version)
				},
			},
			{
				Name:  "list",
				Usage: "List prompts with optional filters",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Search query (title, content, tags)"},
					&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Filter by category"},
					&cli.StringFlag{Name: "tags", Usage: "Filter by comma-separated tags (all must match)"},
					&cli.StringFlag{Name: "sort", Usage: "Sort mode: recent|popular|favorites"},
				},
				Action: func(c *cli.Context) error {
					sort, err := parseSortMode(c.String("sort"))
					if err != nil {
						return outputError(err)
					}
					filter := store.Filter{
						Query:    c.String("search"),
						Category: c.String("category"),
						Sort:     sort,
					}
					if tags := c.String("tags"); tags != "" {
						filter.Tags = parseTags(tags)
					}

					matched := store.FilterPrompts(prompts.Prompts(), filter)
					return outputJSON(map[string]any{"prompts": matched, "count": len(matched)})
				},
			},
			{
				Name:      "record",
				Usage:     "Record an execution against a prompt",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "model", Aliases: []string{"m"}, Required: true, Usage: "Model name"},
					&cli.IntFlag{Name: "tokens", Usage: "Tokens used"},
					&cli.Float64Flag{Name: "cost", Usage: "Estimated cost in dollars"},
					&cli.Float64Flag{Name: "response-time", Usage: "Response time in seconds"},
					&cli.StringFlag{Name: "notes", Usage: "Free-form notes"},
				},
				Action: func(c *cli.Context) error {
					input := store.ExecutionInput{
						PromptID:      c.Args().First(),
						Model:         c.String("model"),
						TokensUsed:    c.Int("tokens"),
						EstimatedCost: c.Float64("cost"),
						Notes:         c.String("notes"),
					}
					// Without an explicit cost, estimate from catalog pricing.
					if !c.IsSet("cost") {
						input.EstimatedCost = model.CalculateCost(input.Model, input.TokensUsed, 0)
					}
					if c.IsSet("response-time") {
						rt := c.Float64("response-time")
						input.ResponseTime = &rt
					}

					execution, err := prompts.RecordExecution(input)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(execution)
				},
			},
		},
	}
}

// collectionCmd groups collection subcommands.
func collectionCmd(prompts *store.PromptStore) *cli.Command {
	return &cli.Command{
		Name:  "collection",
		Usage: "Manage prompt collections",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a collection",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Collection name"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Short description"},
				},
				Action: func(c *cli.Context) error {
					collection, err := prompts.CreateCollection(c.String("name"), c.String("description"))
					if err != nil {
						return outputError(err)
					}
					return outputJSON(collection)
				},
			},
			{
				Name:      "update",
				Usage:     "Update a collection",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "New name"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "New description"},
				},
				Action: func(c *cli.Context) error {
					update := store.CollectionUpdate{}
					if c.IsSet("name") {
						name := c.String("name")
						update.Name = &name
					}
					if c.IsSet("description") {
						description := c.String("description")
						update.Description = &description
					}

					collection, err := prompts.UpdateCollection(c.Args().First(), update)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(collection)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a collection (prompts are kept)",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if err := prompts.DeleteCollection(id); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"deleted": true, "id": id})
				},
			},
			{
				Name:      "add",
				Usage:     "Add a prompt to a collection",
				ArgsUsage: "<collection-id> <prompt-id>",
				Action: func(c *cli.Context) error {
					if err := prompts.AddToCollection(c.Args().Get(0), c.Args().Get(1)); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"added": true})
				},
			},
			{
				Name:      "remove",
				Usage:     "Remove a prompt from a collection",
				ArgsUsage: "<collection-id> <prompt-id>",
				Action: func(c *cli.Context) error {
					if err := prompts.RemoveFromCollection(c.Args().Get(0), c.Args().Get(1)); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"removed": true})
				},
			},
			{
				Name:  "list",
				Usage: "List collections",
				Action: func(c *cli.Context) error {
					collections := prompts.Collections()
					return outputJSON(map[string]any{"collections": collections, "count": len(collections)})
				},
			},
		},
	}
}

// categoryCmd groups category subcommands.
func categoryCmd(prompts *store.PromptStore) *cli.Command {
	return &cli.Command{
		Name:  "category",
		Usage: "Manage prompt categories",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a category",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Category name"},
					&cli.StringFlag{Name: "color", Usage: "Display color (hex)"},
					&cli.StringFlag{Name: "icon", Usage: "Display icon name"},
				},
				Action: func(c *cli.Context) error {
					category, err := prompts.CreateCategory(c.String("name"), c.String("color"), c.String("icon"))
					if err != nil {
						return outputError(err)
					}
					return outputJSON(category)
				},
			},
			{
				Name:      "update",
				Usage:     "Update a category",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "New name"},
					&cli.StringFlag{Name: "color", Usage: "New color"},
					&cli.StringFlag{Name: "icon", Usage: "New icon"},
				},
				Action: func(c *cli.Context) error {
					update := store.CategoryUpdate{}
					if c.IsSet("name") {
						name := c.String("name")
						update.Name = &name
					}
					if c.IsSet("color") {
						color := c.String("color")
						update.Color = &color
					}
					if c.IsSet("icon") {
						icon := c.String("icon")
						update.Icon = &icon
					}

					category, err := prompts.UpdateCategory(c.Args().First(), update)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(category)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a category",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if err := prompts.DeleteCategory(id); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"deleted": true, "id": id})
				},
			},
			{
				Name:  "list",
				Usage: "List categories",
				Action: func(c *cli.Context) error {
					categories := prompts.Categories()
					return outputJSON(map[string]any{"categories": categories, "count": len(categories)})
				},
			},
		},
	}
}

// projectCmd groups project subcommands.
func projectCmd(projects *store.ProjectStore, prompts *store.PromptStore) *cli.Command {
	return &cli.Command{
		Name:  "project",
		Usage: "Manage projects",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a project (becomes the active project)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Project name"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Short description"},
				},
				Action: func(c *cli.Context) error {
					project, err := projects.CreateProject(c.String("name"), c.String("description"))
					if err != nil {
						return outputError(err)
					}
					return outputJSON(project)
				},
			},
			{
				Name:      "get",
				Usage:     "Fetch a project by ID",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					project, err := projects.ProjectByID(c.Args().First())
					if err != nil {
						return outputError(err)
					}
					return outputJSON(project)
				},
			},
			{
				Name:      "update",
				Usage:     "Update a project",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "New name"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "New description"},
					&cli.StringFlag{Name: "color", Usage: "New color"},
					&cli.StringFlag{Name: "icon", Usage: "New icon"},
				},
				Action: func(c *cli.Context) error {
					update := store.ProjectUpdate{}
					if c.IsSet("name") {
						name := c.String("name")
						update.Name = &name
					}
					if c.IsSet("description") {
						description := c.String("description")
						update.Description = &description
					}
					if c.IsSet("color") {
						color := c.String("color")
						update.Color = &color
					}
					if c.IsSet("icon") {
						icon := c.String("icon")
						update.Icon = &icon
					}

					project, err := projects.UpdateProject(c.Args().First(), update)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(project)
				},
			},
			{
				Name:      "settings",
				Usage:     "Update a project's settings",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "model", Aliases: []string{"m"}, Usage: "Default model"},
					&cli.IntFlag{Name: "token-limit", Usage: "Default token limit"},
					&cli.Float64Flag{Name: "cost-per-token", Usage: "Estimated cost per token"},
					&cli.StringFlag{Name: "tags", Usage: "Comma-separated project tags"},
					&cli.Float64Flag{Name: "temperature", Usage: "Default sampling temperature"},
				},
				Action: func(c *cli.Context) error {
					update := store.SettingsUpdate{}
					if c.IsSet("model") {
						m := c.String("model")
						update.DefaultModel = &m
					}
					if c.IsSet("token-limit") {
						limit := c.Int("token-limit")
						update.DefaultTokenLimit = &limit
					}
					if c.IsSet("cost-per-token") {
						cost := c.Float64("cost-per-token")
						update.EstimatedCostPerToken = &cost
					}
					if c.IsSet("tags") {
						tags := parseTags(c.String("tags"))
						update.Tags = &tags
					}
					if c.IsSet("temperature") {
						temp := c.Float64("temperature")
						update.Temperature = &temp
					}

					project, err := projects.UpdateProjectSettings(c.Args().First(), update)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(project)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a project (prompts are kept)",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if err := projects.DeleteProject(id); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"deleted": true, "id": id})
				},
			},
			{
				Name:  "list",
				Usage: "List projects",
				Action: func(c *cli.Context) error {
					all := projects.Projects()
					return outputJSON(map[string]any{"projects": all, "count": len(all)})
				},
			},
			{
				Name:      "use",
				Usage:     "Set the active project",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if err := projects.SetActiveProject(id); err != nil {
						return outputError(err)
					}
					project, err := projects.ProjectByID(id)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(project)
				},
			},
			{
				Name:  "active",
				Usage: "Show the active project",
				Action: func(c *cli.Context) error {
					return outputJSON(projects.ActiveProject())
				},
			},
			{
				Name:      "add",
				Usage:     "Add a prompt to a project",
				ArgsUsage: "<project-id> <prompt-id>",
				Action: func(c *cli.Context) error {
					promptID := c.Args().Get(1)
					if _, err := prompts.GetPrompt(promptID); err != nil {
						return outputError(err)
					}
					if err := projects.AddPromptToProject(c.Args().Get(0), promptID); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"added": true})
				},
			},
			{
				Name:      "remove",
				Usage:     "Remove a prompt from a project",
				ArgsUsage: "<project-id> <prompt-id>",
				Action: func(c *cli.Context) error {
					if err := projects.RemovePromptFromProject(c.Args().Get(0), c.Args().Get(1)); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"removed": true})
				},
			},
		},
	}
}

// modelCmd groups model catalog subcommands.
func modelCmd() *cli.Command {
	return &cli.Command{
		Name:  "model",
		Usage: "Browse the model catalog and estimate costs",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List catalog models, optionally by provider",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "provider", Aliases: []string{"p"}, Usage: "Filter by provider name"},
				},
				Action: func(c *cli.Context) error {
					if provider := c.String("provider"); provider != "" {
						models := model.ModelsByProvider(provider)
						return outputJSON(map[string]any{"models": models, "count": len(models)})
					}
					return outputJSON(map[string]any{
						"models":    model.Catalog,
						"providers": model.Providers(),
					})
				},
			},
			{
				Name:      "cost",
				Usage:     "Estimate the cost of a call against one or more models",
				ArgsUsage: "<model-id> [model-id...]",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "tokens-in", Required: true, Usage: "Input token count"},
					&cli.IntFlag{Name: "tokens-out", Usage: "Output token count"},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return outputError(errors.NewInvalidRequest("pass at least one model ID"))
					}
					costs := model.CompareCosts(c.Args().Slice(), c.Int("tokens-in"), c.Int("tokens-out"))
					return outputJSON(map[string]any{"costs": costs})
				},
			},
		},
	}
}

// consolidateCmd creates the consolidate command.
func consolidateCmd(projects *store.ProjectStore, prompts *store.PromptStore, writer *export.Writer) *cli.Command {
	return &cli.Command{
		Name:      "consolidate",
		Usage:     "Build a consolidation snapshot for a project (active project when no ID is given)",
		ArgsUsage: "[project-id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Export format: json|prompts-json|markdown|csv|html|zip (omit for inline JSON)"},
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: under the export directory)"},
		},
		Action: func(c *cli.Context) error {
			var project *model.Project
			if c.NArg() > 0 {
				var err error
				project, err = projects.ProjectByID(c.Args().First())
				if err != nil {
					return outputError(err)
				}
			} else {
				project = projects.ActiveProject()
				if project == nil {
					return outputError(errors.NewInvalidRequest("no active project; pass a project ID"))
				}
			}

			result := consolidate.Project(*project, prompts.Prompts())

			format := c.String("format")
			if format == "" {
				return outputJSON(result)
			}

			output, err := writer.Export(result, export.Format(format), c.String("path"))
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// optimizeCmd creates the optimize command.
func optimizeCmd(prompts *store.PromptStore, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "optimize",
		Usage:     "Optimize a prompt via the Anthropic API (stored prompt by ID, or raw text from stdin)",
		ArgsUsage: "[prompt-id]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "apply", Usage: "Save the optimized content back to the prompt"},
		},
		Action: func(c *cli.Context) error {
			optimizer, err := optimize.New(cfg)
			if err != nil {
				return outputError(err)
			}

			var promptID, content string
			if c.NArg() > 0 {
				promptID = c.Args().First()
				prompt, err := prompts.GetPrompt(promptID)
				if err != nil {
					return outputError(err)
				}
				content = prompt.Content
			} else {
				if !stdinHasData() {
					return outputError(errors.NewInvalidRequest("pass a prompt ID or pipe prompt text via stdin"))
				}
				text, err := readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				content = text
			}

			optimized, err := optimizer.Optimize(c.Context, content)
			if err != nil {
				return outputError(err)
			}

			if c.Bool("apply") {
				if promptID == "" {
					return outputError(errors.NewInvalidRequest("--apply requires a prompt ID"))
				}
				prompt, err := prompts.ApplyOptimizedContent(promptID, optimized)
				if err != nil {
					return outputError(err)
				}
				return outputJSON(prompt)
			}

			return outputJSON(map[string]any{"original": content, "optimized": optimized})
		},
	}
}

// exportCmd creates the library export command.
func exportCmd(prompts *store.PromptStore, writer *export.Writer) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the whole prompt library to a JSON file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: <export-dir>/library-<date>.json)"},
		},
		Action: func(c *cli.Context) error {
			data, err := prompts.ExportData()
			if err != nil {
				return outputError(err)
			}

			path := c.String("path")
			if path == "" {
				path = filepath.Join(writer.Dir(), fmt.Sprintf("library-%s.json", time.Now().Format("2006-01-02")))
			}
			if err := writer.WriteFile(path, data); err != nil {
				return outputError(err)
			}
			return outputJSON(map[string]any{"path": path, "bytes": len(data)})
		},
	}
}

// importCmd creates the library import command.
func importCmd(prompts *store.PromptStore) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import a prompt library from a JSON file (replaces the current library)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Required: true, Usage: "Import file path"},
		},
		Action: func(c *cli.Context) error {
			data, err := os.ReadFile(c.String("path"))
			if err != nil {
				return outputError(errors.NewInvalidRequest(fmt.Sprintf("cannot read import file: %v", err)))
			}
			if err := prompts.ImportData(data); err != nil {
				return outputError(err)
			}
			return outputJSON(map[string]any{
				"imported":    true,
				"prompts":     len(prompts.Prompts()),
				"collections": len(prompts.Collections()),
				"categories":  len(prompts.Categories()),
			})
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if stashErr, ok := err.(*errors.StashError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", stashErr.Code, stashErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// parseTags splits a comma-separated string into a slice of tags.
func parseTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// parseSortMode maps a CLI sort flag to a store sort mode. An empty
// string keeps the stored order.
func parseSortMode(s string) (store.SortMode, error) {
	switch s {
	case "":
		return "", nil
	case "recent":
		return store.SortRecent, nil
	case "popular":
		return store.SortPopular, nil
	case "favorites":
		return store.SortFavorites, nil
	default:
		return "", errors.NewInvalidRequest(fmt.Sprintf("unknown sort mode %q", s))
	}
}
