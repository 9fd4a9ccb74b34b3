package mcp

import "github.com/mark3labs/mcp-go/mcp"

// Prompt tools

var promptAddToolDef = mcp.NewTool(
	"prompt_add",
	mcp.WithDescription("Creates a new prompt in the library. Title and content are required."),
	mcp.WithString("title", mcp.Description("Prompt title"), mcp.Required()),
	mcp.WithString("content", mcp.Description("Prompt text"), mcp.Required()),
	mcp.WithString("category", mcp.Description("Category name, e.g. 'Development'")),
	mcp.WithArray("tags", mcp.Description("Tags; duplicates are removed")),
	mcp.WithString("description", mcp.Description("Optional free-form description")),
	mcp.WithBoolean("favorite", mcp.Description("Mark as favorite on creation")),
	mcp.WithString("model", mcp.Description("Preferred model for this prompt")),
)

var promptGetToolDef = mcp.NewTool(
	"prompt_get",
	mcp.WithDescription("Fetches a prompt by id, including versions and execution history."),
	mcp.WithString("id", mcp.Description("Prompt id"), mcp.Required()),
)

var promptUpdateToolDef = mcp.NewTool(
	"prompt_update",
	mcp.WithDescription("Updates fields of an existing prompt. Omitted fields are left unchanged."),
	mcp.WithString("id", mcp.Description("Prompt id"), mcp.Required()),
	mcp.WithString("title", mcp.Description("New title")),
	mcp.WithString("content", mcp.Description("New content")),
	mcp.WithString("category", mcp.Description("New category name")),
	mcp.WithArray("tags", mcp.Description("Replacement tag list")),
	mcp.WithString("description", mcp.Description("New description")),
)

var promptDeleteToolDef = mcp.NewTool(
	"prompt_delete",
	mcp.WithDescription("Deletes a prompt and removes it from every collection."),
	mcp.WithString("id", mcp.Description("Prompt id"), mcp.Required()),
)

var promptDuplicateToolDef = mcp.NewTool(
	"prompt_duplicate",
	mcp.WithDescription("Copies a prompt under a new id with ' (Copy)' appended to the title. Usage stats and history are reset."),
	mcp.WithString("id", mcp.Description("Prompt id"), mcp.Required()),
)

var promptFavoriteToolDef = mcp.NewTool(
	"prompt_favorite",
	mcp.WithDescription("Toggles a prompt's favorite flag."),
	mcp.WithString("id", mcp.Description("Prompt id"), mcp.Required()),
)

var promptUseToolDef = mcp.NewTool(
	"prompt_use",
	mcp.WithDescription("Records one use of a prompt by bumping its usage counter."),
	mcp.WithString("id", mcp.Description("Prompt id"), mcp.Required()),
)

var promptVersionAddToolDef = mcp.NewTool(
	"prompt_version_add",
	mcp.WithDescription("Appends an immutable content snapshot to a prompt's version history."),
	mcp.WithString("id", mcp.Description("Prompt id"), mcp.Required()),
	mcp.WithString("content", mcp.Description("Snapshot content"), mcp.Required()),
	mcp.WithString("type", mcp.Description("Version type: 'manual' or 'optimized' (default 'manual')")),
)

var promptListToolDef = mcp.NewTool(
	"prompt_list",
	mcp.WithDescription("Lists prompts, filtered by search query, category, and tags, sorted by the given mode."),
	mcp.WithString("query", mcp.Description("Case-insensitive substring matched against title, content, and tags")),
	mcp.WithString("category", mcp.Description("Category name filter")),
	mcp.WithArray("tags", mcp.Description("Tag filter; a prompt must carry every listed tag")),
	mcp.WithString("sort", mcp.Description("Sort mode: 'recent' (default), 'popular', or 'favorites'")),
)

var promptRecordExecutionToolDef = mcp.NewTool(
	"prompt_record_execution",
	mcp.WithDescription("Records one execution of a prompt against a model, for cost and usage tracking."),
	mcp.WithString("prompt_id", mcp.Description("Prompt id"), mcp.Required()),
	mcp.WithString("model", mcp.Description("Model id the prompt was executed against"), mcp.Required()),
	mcp.WithNumber("tokens_used", mcp.Description("Total tokens consumed")),
	mcp.WithNumber("estimated_cost", mcp.Description("Estimated cost in USD")),
	mcp.WithNumber("response_time", mcp.Description("Response time in seconds")),
	mcp.WithString("notes", mcp.Description("Free-form notes")),
)

// Collection tools

var collectionCreateToolDef = mcp.NewTool(
	"collection_create",
	mcp.WithDescription("Creates a named, empty collection of prompts."),
	mcp.WithString("name", mcp.Description("Collection name"), mcp.Required()),
	mcp.WithString("description", mcp.Description("Optional description")),
)

var collectionUpdateToolDef = mcp.NewTool(
	"collection_update",
	mcp.WithDescription("Updates a collection's name or description."),
	mcp.WithString("id", mcp.Description("Collection id"), mcp.Required()),
	mcp.WithString("name", mcp.Description("New name")),
	mcp.WithString("description", mcp.Description("New description")),
)

var collectionDeleteToolDef = mcp.NewTool(
	"collection_delete",
	mcp.WithDescription("Deletes a collection. Member prompts are unaffected."),
	mcp.WithString("id", mcp.Description("Collection id"), mcp.Required()),
)

var collectionAddPromptToolDef = mcp.NewTool(
	"collection_add_prompt",
	mcp.WithDescription("Adds a prompt to a collection. Adding an existing member is a no-op."),
	mcp.WithString("collection_id", mcp.Description("Collection id"), mcp.Required()),
	mcp.WithString("prompt_id", mcp.Description("Prompt id"), mcp.Required()),
)

var collectionRemovePromptToolDef = mcp.NewTool(
	"collection_remove_prompt",
	mcp.WithDescription("Removes a prompt from a collection."),
	mcp.WithString("collection_id", mcp.Description("Collection id"), mcp.Required()),
	mcp.WithString("prompt_id", mcp.Description("Prompt id"), mcp.Required()),
)

var collectionListToolDef = mcp.NewTool(
	"collection_list",
	mcp.WithDescription("Lists all collections."),
)

// Category tools

var categoryCreateToolDef = mcp.NewTool(
	"category_create",
	mcp.WithDescription("Creates a category with a display color and optional icon."),
	mcp.WithString("name", mcp.Description("Category name"), mcp.Required()),
	mcp.WithString("color", mcp.Description("Display color")),
	mcp.WithString("icon", mcp.Description("Icon name")),
)

var categoryUpdateToolDef = mcp.NewTool(
	"category_update",
	mcp.WithDescription("Updates a category. Renaming does not reassign prompts referencing the old name."),
	mcp.WithString("id", mcp.Description("Category id"), mcp.Required()),
	mcp.WithString("name", mcp.Description("New name")),
	mcp.WithString("color", mcp.Description("New display color")),
	mcp.WithString("icon", mcp.Description("New icon name")),
)

var categoryDeleteToolDef = mcp.NewTool(
	"category_delete",
	mcp.WithDescription("Deletes a category. Prompts keep their category name even if it no longer resolves."),
	mcp.WithString("id", mcp.Description("Category id"), mcp.Required()),
)

var categoryListToolDef = mcp.NewTool(
	"category_list",
	mcp.WithDescription("Lists all categories."),
)

// Project tools

var projectCreateToolDef = mcp.NewTool(
	"project_create",
	mcp.WithDescription("Creates a project with default settings and makes it the active project."),
	mcp.WithString("name", mcp.Description("Project name"), mcp.Required()),
	mcp.WithString("description", mcp.Description("Optional description")),
)

var projectGetToolDef = mcp.NewTool(
	"project_get",
	mcp.WithDescription("Fetches a project by id."),
	mcp.WithString("id", mcp.Description("Project id"), mcp.Required()),
)

var projectUpdateToolDef = mcp.NewTool(
	"project_update",
	mcp.WithDescription("Updates a project's name, description, color, or icon."),
	mcp.WithString("id", mcp.Description("Project id"), mcp.Required()),
	mcp.WithString("name", mcp.Description("New name")),
	mcp.WithString("description", mcp.Description("New description")),
	mcp.WithString("color", mcp.Description("New display color")),
	mcp.WithString("icon", mcp.Description("New icon name")),
)

var projectUpdateSettingsToolDef = mcp.NewTool(
	"project_update_settings",
	mcp.WithDescription("Updates a project's default execution settings."),
	mcp.WithString("id", mcp.Description("Project id"), mcp.Required()),
	mcp.WithString("default_model", mcp.Description("Default model id")),
	mcp.WithNumber("default_token_limit", mcp.Description("Default token limit (positive)")),
	mcp.WithNumber("estimated_cost_per_token", mcp.Description("Estimated cost per 1K tokens in USD")),
	mcp.WithArray("tags", mcp.Description("Replacement project tag list")),
	mcp.WithNumber("temperature", mcp.Description("Default sampling temperature")),
)

var projectDeleteToolDef = mcp.NewTool(
	"project_delete",
	mcp.WithDescription("Deletes a project. If it was the last project, a fresh default project is created."),
	mcp.WithString("id", mcp.Description("Project id"), mcp.Required()),
)

var projectListToolDef = mcp.NewTool(
	"project_list",
	mcp.WithDescription("Lists all projects."),
)

var projectSetActiveToolDef = mcp.NewTool(
	"project_set_active",
	mcp.WithDescription("Sets the active project."),
	mcp.WithString("id", mcp.Description("Project id"), mcp.Required()),
)

var projectActiveToolDef = mcp.NewTool(
	"project_active",
	mcp.WithDescription("Returns the active project."),
)

var projectAddPromptToolDef = mcp.NewTool(
	"project_add_prompt",
	mcp.WithDescription("Adds a prompt to a project's membership. Adding an existing member is a no-op."),
	mcp.WithString("project_id", mcp.Description("Project id"), mcp.Required()),
	mcp.WithString("prompt_id", mcp.Description("Prompt id"), mcp.Required()),
)

var projectRemovePromptToolDef = mcp.NewTool(
	"project_remove_prompt",
	mcp.WithDescription("Removes a prompt from a project's membership."),
	mcp.WithString("project_id", mcp.Description("Project id"), mcp.Required()),
	mcp.WithString("prompt_id", mcp.Description("Prompt id"), mcp.Required()),
)

var projectConsolidateToolDef = mcp.NewTool(
	"project_consolidate",
	mcp.WithDescription("Consolidates a project: joins its prompts, flattens execution history, and computes statistics. Optionally exports the snapshot to a file."),
	mcp.WithString("id", mcp.Description("Project id"), mcp.Required()),
	mcp.WithString("format", mcp.Description("Optional export format: json, prompts-json, markdown, csv, html, or zip. Omit to return the snapshot inline.")),
	mcp.WithString("path", mcp.Description("Optional output path; defaults to a name in the exports directory")),
)

// Library tools

var libraryExportToolDef = mcp.NewTool(
	"library_export",
	mcp.WithDescription("Exports the whole library (prompts, collections, categories) as a JSON file."),
	mcp.WithString("path", mcp.Description("Optional output path; defaults to library-<date>.json in the exports directory")),
)

var libraryImportToolDef = mcp.NewTool(
	"library_import",
	mcp.WithDescription("Imports a library JSON file, replacing prompts, collections, and categories wholesale. A malformed file leaves the library unchanged."),
	mcp.WithString("path", mcp.Description("Path to the library JSON file"), mcp.Required()),
)
