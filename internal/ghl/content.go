// ABOUTME: Blog and blog post endpoints of the GHL API

package ghl

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListBlogs lists blog sites in the bound location.
func (c *Client) ListBlogs(ctx context.Context, limit, skip string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/blogs/site/all", RequestOptions{
		Query: map[string]string{
			"locationId": c.locationID,
			"limit":      limit,
			"skip":       skip,
		},
		Version: VersionStandard,
	})
}

// ListBlogPosts lists posts of one blog.
func (c *Client) ListBlogPosts(ctx context.Context, blogID string, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{"locationId": c.locationID, "blogId": blogID}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/blogs/posts/all", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}

// CreateBlogPost creates a post.
func (c *Client) CreateBlogPost(ctx context.Context, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/blogs/posts", RequestOptions{
		Body:    c.withLocation(data),
		Version: VersionStandard,
	})
}

// UpdateBlogPost edits a post.
func (c *Client) UpdateBlogPost(ctx context.Context, postID string, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPut, "/blogs/posts/"+postID, RequestOptions{
		Body:    data,
		Version: VersionStandard,
	})
}

// ListBlogCategories lists blog categories in the bound location.
func (c *Client) ListBlogCategories(ctx context.Context, limit, offset string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/blogs/categories", RequestOptions{
		Query: map[string]string{
			"locationId": c.locationID,
			"limit":      limit,
			"offset":     offset,
		},
		Version: VersionStandard,
	})
}

// ListBlogAuthors lists blog authors in the bound location.
func (c *Client) ListBlogAuthors(ctx context.Context, limit, offset string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/blogs/authors", RequestOptions{
		Query: map[string]string{
			"locationId": c.locationID,
			"limit":      limit,
			"offset":     offset,
		},
		Version: VersionStandard,
	})
}
