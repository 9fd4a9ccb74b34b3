package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jmallek/promptstash/internal/config"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"prompt_add": {
		def:     promptAddToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePromptAdd },
	},
	"prompt_get": {
		def:     promptGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePromptGet },
	},
	"prompt_update": {
		def:     promptUpdateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePromptUpdate },
	},
	"prompt_delete": {
		def:     promptDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePromptDelete },
	},
	"prompt_duplicate": {
		def:     promptDuplicateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePromptDuplicate },
	},
	"prompt_favorite": {
		def:     promptFavoriteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePromptFavorite },
	},
	"prompt_use": {
		def:     promptUseToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePromptUse },
	},
	"prompt_version_add": {
		def:     promptVersionAddToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePromptVersionAdd },
	},
	"prompt_list": {
		def:     promptListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePromptList },
	},
	"prompt_record_execution": {
		def:     promptRecordExecutionToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePromptRecordExecution },
	},
	"collection_create": {
		def:     collectionCreateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCollectionCreate },
	},
	"collection_update": {
		def:     collectionUpdateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCollectionUpdate },
	},
	"collection_delete": {
		def:     collectionDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCollectionDelete },
	},
	"collection_add_prompt": {
		def:     collectionAddPromptToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCollectionAddPrompt },
	},
	"collection_remove_prompt": {
		def:     collectionRemovePromptToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCollectionRemovePrompt },
	},
	"collection_list": {
		def:     collectionListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCollectionList },
	},
	"category_create": {
		def:     categoryCreateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCategoryCreate },
	},
	"category_update": {
		def:     categoryUpdateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCategoryUpdate },
	},
	"category_delete": {
		def:     categoryDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCategoryDelete },
	},
	"category_list": {
		def:     categoryListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCategoryList },
	},
	"project_create": {
		def:     projectCreateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectCreate },
	},
	"project_get": {
		def:     projectGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectGet },
	},
	"project_update": {
		def:     projectUpdateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectUpdate },
	},
	"project_update_settings": {
		def:     projectUpdateSettingsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectUpdateSettings },
	},
	"project_delete": {
		def:     projectDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectDelete },
	},
	"project_list": {
		def:     projectListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectList },
	},
	"project_set_active": {
		def:     projectSetActiveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectSetActive },
	},
	"project_active": {
		def:     projectActiveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectActive },
	},
	"project_add_prompt": {
		def:     projectAddPromptToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectAddPrompt },
	},
	"project_remove_prompt": {
		def:     projectRemovePromptToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectRemovePrompt },
	},
	"project_consolidate": {
		def:     projectConsolidateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectConsolidate },
	},
	"library_export": {
		def:     libraryExportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleLibraryExport },
	},
	"library_import": {
		def:     libraryImportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleLibraryImport },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with promptstash tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(h *Handlers, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"promptstash",
		version,
		server.WithToolCapabilities(true),
	)

	disabled := make(map[string]bool, len(cfg.DisabledTools))
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}
	for _, name := range ValidateDisabledTools(cfg.DisabledTools) {
		log.Warn("unknown tool in disabled_tools", "tool", name)
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(h *Handlers, cfg *config.Config, version string) error {
	s := NewServer(h, cfg, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
