package role

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// RecordSource looks up the stored role for an email. The contract is a
// server-side exact-match single-record lookup; it returns sql.ErrNoRows
// when no user record exists for the email.
type RecordSource interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// Resolver turns the authenticated identity's email into a State. Results
// are cached in Redis under the normalized email for a short staleness
// window, and concurrent lookups for the same email are collapsed into one
// backend read. Keying both the cache and the in-flight dedupe by email is
// what makes rapid account switches safe: a lookup started for one email
// can never be stored under, or returned for, another.
type Resolver struct {
	src RecordSource
	rdb *redis.Client // nil disables caching
	ttl time.Duration
	sf  singleflight.Group
}

// NewResolver builds a Resolver. rdb may be nil, in which case every lookup
// goes to the record source. ttl at or below zero falls back to five
// minutes.
func NewResolver(src RecordSource, rdb *redis.Client, ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Resolver{src: src, rdb: rdb, ttl: ttl}
}

// StateFor resolves the capability state for an identity email.
//
//   - Empty email means the identity is not established yet: the loading
//     state is returned and grants nothing.
//   - A missing user record is not an error; the user is a Student.
//   - A failed lookup logs the cause and fails closed to Student with
//     IsError set. Callers never receive an error: every dashboard screen
//     needs this to resolve to something renderable.
func (r *Resolver) StateFor(ctx context.Context, email string) State {
	email = Normalize(email)
	if email == "" {
		return Loading()
	}

	if cached, ok := r.fromCache(ctx, email); ok {
		return Resolved(cached)
	}

	v, err, _ := r.sf.Do(email, func() (any, error) {
		// The collapsed lookup serves every concurrent caller, so it must
		// not die with whichever request happened to start it.
		lookupCtx := context.WithoutCancel(ctx)
		raw, err := r.src.RoleByEmail(lookupCtx, email)
		if errors.Is(err, sql.ErrNoRows) {
			// No record: closed-world default, cacheable.
			raw, err = string(Student), nil
		}
		if err != nil {
			return nil, err
		}
		resolved := FromString(raw)
		r.toCache(lookupCtx, email, resolved)
		return resolved, nil
	})
	if err != nil {
		log.Printf("role: lookup for %s failed: %v", email, err)
		return Failed()
	}
	return Resolved(v.(Role))
}

// Invalidate drops the cached role for an email. Admin screens call this
// after changing a user's role so the new role is observed on the next
// request instead of after the staleness window lapses.
func (r *Resolver) Invalidate(ctx context.Context, email string) {
	if r.rdb == nil {
		return
	}
	if err := r.rdb.Del(ctx, cacheKey(Normalize(email))).Err(); err != nil {
		log.Printf("role: cache invalidate for %s failed: %v", email, err)
	}
}

// Normalize canonicalizes an email for use as a lookup and cache key.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cacheKey(email string) string { return "role:" + email }

func (r *Resolver) fromCache(ctx context.Context, email string) (Role, bool) {
	if r.rdb == nil {
		return "", false
	}
	v, err := r.rdb.Get(ctx, cacheKey(email)).Result()
	if err != nil {
		return "", false
	}
	return FromString(v), true
}

func (r *Resolver) toCache(ctx context.Context, email string, ro Role) {
	if r.rdb == nil {
		return
	}
	// Best effort; a miss just costs one extra DB read.
	_ = r.rdb.SetEx(ctx, cacheKey(email), string(ro), r.ttl).Err()
}
