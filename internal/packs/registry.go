// ABOUTME: Thread-safe registry for tool packs and their tools.
// ABOUTME: Manages pack registration, tool lookup, and capability-based filtering.

package packs

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// ErrPackAlreadyRegistered indicates a pack with the same ID is already registered.
var ErrPackAlreadyRegistered = errors.New("pack already registered")

// ErrToolCollision indicates a tool name already exists from another pack.
var ErrToolCollision = errors.New("tool name collision")

// registryEntry stores a tool with its owning pack ID.
type registryEntry struct {
	Tool   *Tool
	PackID string
}

// Registry maintains the set of registered packs and their tools.
type Registry struct {
	mu     sync.RWMutex
	packs  map[string][]*Tool
	tools  map[string]*registryEntry // global tool name -> entry
	logger *slog.Logger
}

// NewRegistry creates a new Registry instance.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		packs:  make(map[string][]*Tool),
		tools:  make(map[string]*registryEntry),
		logger: logger,
	}
}

// RegisterPack validates and stores a pack and its tools.
// Returns ErrPackAlreadyRegistered if a pack with the same ID exists.
// Returns ErrToolCollision if any tool name already exists from another pack.
func (r *Registry) RegisterPack(pack *Pack) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.packs[pack.ID]; exists {
		return fmt.Errorf("%w: %s", ErrPackAlreadyRegistered, pack.ID)
	}

	// Check for collisions before registering anything
	for _, tool := range pack.Tools {
		name := tool.Definition.Name
		if existing, exists := r.tools[name]; exists {
			return fmt.Errorf("%w: tool '%s' already registered by pack '%s'",
				ErrToolCollision, name, existing.PackID)
		}
	}

	for _, tool := range pack.Tools {
		r.tools[tool.Definition.Name] = &registryEntry{Tool: tool, PackID: pack.ID}
	}
	r.packs[pack.ID] = pack.Tools

	r.logger.Info("pack registered",
		"pack_id", pack.ID,
		"tool_count", len(pack.Tools),
		"total_tools", len(r.tools),
	)

	return nil
}

// GetToolByName finds a tool by its name. Returns nil if not registered.
func (r *Registry) GetToolByName(name string) *Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.tools[name]
	if !exists {
		return nil
	}
	return entry.Tool
}

// GetAllTools returns all registered tool definitions sorted by name.
func (r *Registry) GetAllTools() []*ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]*ToolDefinition, 0, len(r.tools))
	for _, entry := range r.tools {
		defs = append(defs, entry.Tool.Definition)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// GetToolsForCapabilities returns tools where the caller has ALL required
// capabilities, sorted by name. Tools with no required capabilities are
// always included.
func (r *Registry) GetToolsForCapabilities(caps []string) []*ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	capSet := make(map[string]struct{}, len(caps))
	for _, c := range caps {
		capSet[c] = struct{}{}
	}

	var defs []*ToolDefinition
	for _, entry := range r.tools {
		if hasAllCapabilities(entry.Tool.Definition.RequiredCapabilities, capSet) {
			defs = append(defs, entry.Tool.Definition)
		}
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

func hasAllCapabilities(required []string, capSet map[string]struct{}) bool {
	for _, req := range required {
		if _, has := capSet[req]; !has {
			return false
		}
	}
	return true
}

// PackInfo contains public information about a registered pack.
type PackInfo struct {
	ID        string
	ToolNames []string
}

// ListPacks returns information about all registered packs sorted by ID.
func (r *Registry) ListPacks() []PackInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]PackInfo, 0, len(r.packs))
	for id, tools := range r.packs {
		names := make([]string, 0, len(tools))
		for _, t := range tools {
			names = append(names, t.Definition.Name)
		}
		sort.Strings(names)
		infos = append(infos, PackInfo{ID: id, ToolNames: names})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// ToolCount returns the number of registered tools.
func (r *Registry) ToolCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}
