package services

import (
	"strings"

	"go-blog-api/models"
	"go-blog-api/policy"
	"go-blog-api/repositories"
)

type PostService interface {
	ListPublished() ([]models.Post, error)
	GetPost(id uint) (*models.Post, error)
	CreatePost(req models.CreatePostRequest, identity models.Identity) (*models.Post, error)
	UpdatePost(id uint, req models.UpdatePostRequest, identity models.Identity) (*models.Post, error)
	DeletePost(id uint, identity models.Identity) error
}

type postService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) ListPublished() ([]models.Post, error) {
	return s.postRepo.ListPublished()
}

func (s *postService) GetPost(id uint) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

func (s *postService) CreatePost(req models.CreatePostRequest, identity models.Identity) (*models.Post, error) {
	if identity.IsAnonymous() {
		return nil, models.ErrUnauthorized
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post := &models.Post{
		Title:     req.Title,
		Content:   req.Content,
		Published: published,
		AuthorID:  identity.ID,
	}

	if err := s.postRepo.Create(post, normalizeTags(req.Tags)); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(post.ID)
}

// UpdatePost resolves existence first, then the ownership/admin check, then
// mutates, all inside one transaction. A missing post is 404 for every
// caller; an existing post under a different owner is 403.
func (s *postService) UpdatePost(id uint, req models.UpdatePostRequest, identity models.Identity) (*models.Post, error) {
	if identity.IsAnonymous() {
		return nil, models.ErrUnauthorized
	}

	var updated *models.Post
	err := s.postRepo.Transaction(func(repo repositories.PostRepository) error {
		post, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if !policy.CanMutate(identity, post) {
			return models.ErrForbidden
		}

		fields := map[string]interface{}{}
		if req.Title != nil {
			fields["title"] = *req.Title
		}
		if req.Content != nil {
			fields["content"] = *req.Content
		}
		if req.Published != nil {
			fields["published"] = *req.Published
		}
		if len(fields) > 0 {
			if err := repo.UpdateFields(id, fields); err != nil {
				return err
			}
		}

		updated, err = repo.GetByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *postService) DeletePost(id uint, identity models.Identity) error {
	if identity.IsAnonymous() {
		return models.ErrUnauthorized
	}

	return s.postRepo.Transaction(func(repo repositories.PostRepository) error {
		post, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if !policy.CanMutate(identity, post) {
			return models.ErrForbidden
		}
		return repo.Delete(post.ID)
	})
}

// normalizeTags trims, drops empties and dedupes case-insensitively while
// keeping the first spelling submitted.
func normalizeTags(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
