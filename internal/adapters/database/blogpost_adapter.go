package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/stardental/clinic-backend/internal/domain/entities"
	"github.com/stardental/clinic-backend/internal/domain/repositories"
	"github.com/stardental/clinic-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/stardental/clinic-backend/pkg/errors"
)

var blogPostColumns = []interface{}{
	"id", "title", "excerpt", "content", "category", "author", "read_time",
	"image_url", "published", "created_at", "updated_at",
}

// BlogPostAdapter implements the BlogPostRepository interface
type BlogPostAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewBlogPostAdapter creates a new blog post adapter
func NewBlogPostAdapter(client *postgres.Client) repositories.BlogPostRepository {
	return &BlogPostAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new blog post
func (a *BlogPostAdapter) Create(ctx context.Context, post *entities.BlogPost) error {
	record := goqu.Record{
		"id":         post.ID,
		"title":      post.Title,
		"excerpt":    post.Excerpt,
		"content":    post.Content,
		"category":   post.Category,
		"author":     post.Author,
		"read_time":  post.ReadTime,
		"image_url":  nullable(post.ImageURL),
		"published":  post.Published,
		"created_at": post.CreatedAt,
		"updated_at": post.UpdatedAt,
	}

	query, args, err := a.db.Insert("blog_posts").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create blog post", err)
	}

	return nil
}

// GetByID retrieves a blog post by ID
func (a *BlogPostAdapter) GetByID(ctx context.Context, id string) (*entities.BlogPost, error) {
	query, args, err := a.db.Select(blogPostColumns...).
		From("blog_posts").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	post, err := scanBlogPost(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("blog post with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get blog post", err)
	}

	return post, nil
}

// List retrieves blog posts ordered by creation time descending
func (a *BlogPostAdapter) List(ctx context.Context, limit int) ([]*entities.BlogPost, error) {
	ds := a.db.Select(blogPostColumns...).
		From("blog_posts").
		Order(goqu.I("created_at").Desc())

	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list blog posts", err)
	}
	defer rows.Close()

	var posts []*entities.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows.Scan)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan blog post", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read blog posts", err)
	}

	return posts, nil
}

// Update replaces a blog post's editable fields
func (a *BlogPostAdapter) Update(ctx context.Context, post *entities.BlogPost) error {
	record := goqu.Record{
		"title":      post.Title,
		"excerpt":    post.Excerpt,
		"content":    post.Content,
		"category":   post.Category,
		"author":     post.Author,
		"read_time":  post.ReadTime,
		"image_url":  nullable(post.ImageURL),
		"published":  post.Published,
		"updated_at": post.UpdatedAt,
	}

	query, args, err := a.db.Update("blog_posts").
		Set(record).
		Where(goqu.Ex{"id": post.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update blog post", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("blog post with id %s not found", post.ID))
	}

	return nil
}

// Delete removes a blog post permanently
func (a *BlogPostAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("blog_posts").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete blog post", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("blog post with id %s not found", id))
	}

	return nil
}

func scanBlogPost(scan func(dest ...interface{}) error) (*entities.BlogPost, error) {
	post := &entities.BlogPost{}
	var imageURL sql.NullString

	err := scan(
		&post.ID,
		&post.Title,
		&post.Excerpt,
		&post.Content,
		&post.Category,
		&post.Author,
		&post.ReadTime,
		&imageURL,
		&post.Published,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	post.ImageURL = imageURL.String
	return post, nil
}
