// Package mcp exposes the card editing core as Model Context Protocol
// tools, so an AI assistant can edit the homepage the same way the CLI
// and web UI do.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cardctl/cardctl/internal/assets"
	"github.com/cardctl/cardctl/internal/cards"
	"github.com/cardctl/cardctl/internal/config"
	"github.com/cardctl/cardctl/internal/git"
	"github.com/cardctl/cardctl/internal/store"
)

// Server wraps the MCP server with card-specific tools.
type Server struct {
	server *mcp.Server
	site   config.Site
	store  *store.Store
	runner git.Runner
}

// NewServer creates a new MCP server instance over the given site.
func NewServer(site config.Site, runner git.Runner) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "cardctl",
		Version: "0.1.0",
	}, nil)

	s := &Server{
		server: mcpServer,
		site:   site,
		store:  store.New(site.CardsFile()),
		runner: runner,
	}

	s.registerTools()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cards_list",
		Description: "List the homepage cards in display order",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cards_add",
		Description: "Append a new card to the homepage",
	}, s.handleAdd)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cards_update",
		Description: "Update fields of an existing card by index",
	}, s.handleUpdate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cards_remove",
		Description: "Remove a card by index",
	}, s.handleRemove)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cards_reorder",
		Description: "Move a card from one position to another",
	}, s.handleReorder)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_images",
		Description: "List the image files available for card logos",
	}, s.handleImages)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "publish",
		Description: "Commit and push the card file to deploy the site",
	}, s.handlePublish)
}

// Input/Output types for each tool

type ListInput struct{}

type ListOutput struct {
	Cards []ListEntry `json:"cards"`
}

type ListEntry struct {
	Index     int    `json:"index"`
	Logo      string `json:"logo,omitempty"`
	Title     string `json:"title,omitempty"`
	Preview   string `json:"preview"`
	Center    bool   `json:"center,omitempty"`
	Partition bool   `json:"partition,omitempty"`
}

type AddInput struct {
	Logo      string `json:"logo,omitempty" jsonschema:"description=Logo image path such as /assets/img/flower.svg"`
	Title     string `json:"title,omitempty" jsonschema:"description=Card title (omit for none)"`
	Content   string `json:"content,omitempty" jsonschema:"description=HTML content of the card"`
	Center    bool   `json:"center,omitempty" jsonschema:"description=Center the card"`
	Partition bool   `json:"partition,omitempty" jsonschema:"description=Draw a partition line after the card"`
}

type AddOutput struct {
	Message string `json:"message"`
	Index   int    `json:"index"`
}

type UpdateInput struct {
	Index     int     `json:"index" jsonschema:"required,description=Card index to update"`
	Logo      *string `json:"logo,omitempty" jsonschema:"description=New logo path (empty string removes the logo)"`
	Title     *string `json:"title,omitempty" jsonschema:"description=New title (empty string removes the title)"`
	Content   *string `json:"content,omitempty" jsonschema:"description=Replacement HTML content"`
	Center    *bool   `json:"center,omitempty" jsonschema:"description=Center flag"`
	Partition *bool   `json:"partition,omitempty" jsonschema:"description=Partition flag"`
}

type UpdateOutput struct {
	Message string `json:"message"`
}

type RemoveInput struct {
	Index int `json:"index" jsonschema:"required,description=Card index to remove"`
}

type RemoveOutput struct {
	Message string `json:"message"`
}

type ReorderInput struct {
	From int `json:"from" jsonschema:"required,description=Index of the card to move"`
	To   int `json:"to" jsonschema:"required,description=Target position after the card is removed"`
}

type ReorderOutput struct {
	Message string `json:"message"`
}

type ImagesInput struct{}

type ImagesOutput struct {
	Images []string `json:"images"`
}

type PublishInput struct {
	Message string `json:"message,omitempty" jsonschema:"description=Commit message (defaults to 'Update cards')"`
}

type PublishOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	list, err := s.store.Load()
	if err != nil {
		return nil, ListOutput{}, fmt.Errorf("failed to load cards: %w", err)
	}

	entries := make([]ListEntry, 0, list.Len())
	for i, card := range list.Cards() {
		entries = append(entries, ListEntry{
			Index:     i,
			Logo:      card.Logo(),
			Title:     card.Title(),
			Preview:   card.Preview(cards.DefaultPreviewLen),
			Center:    card.Center(),
			Partition: card.Partition(),
		})
	}

	return nil, ListOutput{Cards: entries}, nil
}

func (s *Server) handleAdd(ctx context.Context, req *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, AddOutput, error) {
	list, err := s.store.Load()
	if err != nil {
		return nil, AddOutput{}, fmt.Errorf("failed to load cards: %w", err)
	}

	list.Add(input.Logo, input.Title, input.Content, input.Center, input.Partition)
	if err := s.store.Save(list); err != nil {
		return nil, AddOutput{}, fmt.Errorf("failed to save cards: %w", err)
	}

	index := list.Len() - 1
	return nil, AddOutput{
		Message: fmt.Sprintf("Card added at index %d", index),
		Index:   index,
	}, nil
}

func (s *Server) handleUpdate(ctx context.Context, req *mcp.CallToolRequest, input UpdateInput) (*mcp.CallToolResult, UpdateOutput, error) {
	list, err := s.store.Load()
	if err != nil {
		return nil, UpdateOutput{}, fmt.Errorf("failed to load cards: %w", err)
	}

	fields := cards.Fields{
		Logo:      input.Logo,
		Title:     input.Title,
		Content:   input.Content,
		Center:    input.Center,
		Partition: input.Partition,
	}
	if err := list.Update(input.Index, fields); err != nil {
		return nil, UpdateOutput{}, err
	}
	if err := s.store.Save(list); err != nil {
		return nil, UpdateOutput{}, fmt.Errorf("failed to save cards: %w", err)
	}

	return nil, UpdateOutput{
		Message: fmt.Sprintf("Card %d updated", input.Index),
	}, nil
}

func (s *Server) handleRemove(ctx context.Context, req *mcp.CallToolRequest, input RemoveInput) (*mcp.CallToolResult, RemoveOutput, error) {
	list, err := s.store.Load()
	if err != nil {
		return nil, RemoveOutput{}, fmt.Errorf("failed to load cards: %w", err)
	}

	if _, err := list.Remove(input.Index); err != nil {
		return nil, RemoveOutput{}, err
	}
	if err := s.store.Save(list); err != nil {
		return nil, RemoveOutput{}, fmt.Errorf("failed to save cards: %w", err)
	}

	return nil, RemoveOutput{
		Message: fmt.Sprintf("Card %d removed", input.Index),
	}, nil
}

func (s *Server) handleReorder(ctx context.Context, req *mcp.CallToolRequest, input ReorderInput) (*mcp.CallToolResult, ReorderOutput, error) {
	list, err := s.store.Load()
	if err != nil {
		return nil, ReorderOutput{}, fmt.Errorf("failed to load cards: %w", err)
	}

	if err := list.Reorder(input.From, input.To); err != nil {
		return nil, ReorderOutput{}, err
	}
	if err := s.store.Save(list); err != nil {
		return nil, ReorderOutput{}, fmt.Errorf("failed to save cards: %w", err)
	}

	return nil, ReorderOutput{
		Message: fmt.Sprintf("Card moved from %d to %d", input.From, input.To),
	}, nil
}

func (s *Server) handleImages(ctx context.Context, req *mcp.CallToolRequest, input ImagesInput) (*mcp.CallToolResult, ImagesOutput, error) {
	images, err := assets.ListImages(s.site.ImagesDir())
	if err != nil {
		return nil, ImagesOutput{}, fmt.Errorf("failed to list images: %w", err)
	}
	return nil, ImagesOutput{Images: images}, nil
}

func (s *Server) handlePublish(ctx context.Context, req *mcp.CallToolRequest, input PublishInput) (*mcp.CallToolResult, PublishOutput, error) {
	message := input.Message
	if message == "" {
		message = "Update cards"
	}

	publisher := git.Publisher{Runner: s.runner, Dir: s.site.Root}
	if err := publisher.Publish(config.CardsRelPath, message); err != nil {
		return nil, PublishOutput{}, fmt.Errorf("publish failed: %w", err)
	}

	return nil, PublishOutput{Message: "Published successfully"}, nil
}
