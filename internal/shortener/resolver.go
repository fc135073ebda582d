package shortener

import "context"

// CollisionResolver retries identifier generation against the repository
// until it finds a (slug, key) pair colliding with no existing record.
type CollisionResolver struct {
	generator *Generator
	store     Repository
}

// NewCollisionResolver creates a resolver over the given generator and store.
func NewCollisionResolver(generator *Generator, store Repository) *CollisionResolver {
	return &CollisionResolver{
		generator: generator,
		store:     store,
	}
}

// Resolve returns a (slug, key) pair that matches no existing record's slug
// or key. There is no retry bound: at 36^5 slugs and 36^20 keys the expected
// number of retries is negligible, and each iteration is side-effect free.
// The loop aborts if ctx is cancelled.
func (r *CollisionResolver) Resolve(ctx context.Context) (Slug, Key, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", "", err
		}

		slug := r.generator.Slug()
		key := r.generator.Key()

		exists, err := r.store.SlugOrKeyExists(ctx, slug, key)
		if err != nil {
			return "", "", err
		}

		if !exists {
			return slug, key, nil
		}
	}
}
