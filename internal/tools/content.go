// ABOUTME: Content pack covers blogs, blog posts, categories, and authors.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
)

// ContentPack creates the pack of blog content tools.
func ContentPack(r *tenant.Resolver) *packs.Pack {
	h := &contentHandlers{resolver: r}
	return &packs.Pack{
		ID: "content",
		Tools: []*packs.Tool{
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_blogs",
					Description:          "List blog sites in an account",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer"},"skip":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"content"},
				},
				Handler: h.ListBlogs,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_blog_posts",
					Description:          "List posts in a blog",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"blogId":{"type":"string"},"limit":{"type":"integer"},"offset":{"type":"integer"},"status":{"type":"string"},"locationId":{"type":"string"}},"required":["blogId"]}`),
					RequiredCapabilities: []string{"content"},
				},
				Handler: h.ListBlogPosts,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "create_blog_post",
					Description:          "Create a blog post",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"blogId":{"type":"string"},"title":{"type":"string"},"rawHTML":{"type":"string"},"status":{"type":"string"},"locationId":{"type":"string"}},"required":["blogId","title"]}`),
					RequiredCapabilities: []string{"content"},
				},
				Handler: h.CreateBlogPost,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "update_blog_post",
					Description:          "Update an existing blog post",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"postId":{"type":"string"},"title":{"type":"string"},"rawHTML":{"type":"string"},"status":{"type":"string"},"locationId":{"type":"string"}},"required":["postId"]}`),
					RequiredCapabilities: []string{"content"},
				},
				Handler: h.UpdateBlogPost,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_blog_categories",
					Description:          "List blog categories",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer"},"offset":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"content"},
				},
				Handler: h.ListCategories,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_blog_authors",
					Description:          "List blog authors",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer"},"offset":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"content"},
				},
				Handler: h.ListAuthors,
			},
		},
	}
}

type contentHandlers struct {
	resolver *tenant.Resolver
}

type contentPageInput struct {
	Limit      int    `json:"limit"`
	Skip       int    `json:"skip"`
	Offset     int    `json:"offset"`
	LocationID string `json:"locationId"`
}

func (h *contentHandlers) ListBlogs(ctx context.Context, input json.RawMessage) (string, error) {
	var in contentPageInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListBlogs(ctx, intParam(in.Limit), intParam(in.Skip))
	})
}

type blogPostsInput struct {
	BlogID     string `json:"blogId"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
	Status     string `json:"status"`
	LocationID string `json:"locationId"`
}

func (h *contentHandlers) ListBlogPosts(ctx context.Context, input json.RawMessage) (string, error) {
	var in blogPostsInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.BlogID == "" {
		return "", fmt.Errorf("blogId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListBlogPosts(ctx, in.BlogID, map[string]string{
			"limit":  intParam(in.Limit),
			"offset": intParam(in.Offset),
			"status": in.Status,
		})
	})
}

func (h *contentHandlers) CreateBlogPost(ctx context.Context, input json.RawMessage) (string, error) {
	var scope struct {
		LocationID string `json:"locationId"`
	}
	body, err := decodeBody(input, &scope, "locationId")
	if err != nil {
		return "", err
	}
	return call(ctx, h.resolver, scope.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.CreateBlogPost(ctx, body)
	})
}

type updateBlogPostInput struct {
	PostID     string `json:"postId"`
	LocationID string `json:"locationId"`
}

func (h *contentHandlers) UpdateBlogPost(ctx context.Context, input json.RawMessage) (string, error) {
	var in updateBlogPostInput
	body, err := decodeBody(input, &in, "locationId", "postId")
	if err != nil {
		return "", err
	}
	if in.PostID == "" {
		return "", fmt.Errorf("postId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.UpdateBlogPost(ctx, in.PostID, body)
	})
}

func (h *contentHandlers) ListCategories(ctx context.Context, input json.RawMessage) (string, error) {
	var in contentPageInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListBlogCategories(ctx, intParam(in.Limit), intParam(in.Offset))
	})
}

func (h *contentHandlers) ListAuthors(ctx context.Context, input json.RawMessage) (string, error) {
	var in contentPageInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListBlogAuthors(ctx, intParam(in.Limit), intParam(in.Offset))
	})
}
