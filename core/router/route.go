package router

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/batonhttp/baton/core/handler"
)

// allowedMethods is the registration surface; anything else is rejected.
var allowedMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodDelete:  {},
	http.MethodPatch:   {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodConnect: {},
	http.MethodTrace:   {},
}

// RouteInfo describes a single registered route.
type RouteInfo struct {
	Method  string
	Pattern string
}

// route is one (method, pattern, chain) entry owned by the table.
type route[S any, T handler.TransientState[T]] struct {
	method  string
	pattern Pattern
	chain   *Chain[S, T]
	index   int // registration order, the final resolution tie-break
}

// Router is the route table: per HTTP method, the ordered set of registered
// (pattern, chain) entries. Registration happens before serving begins; the
// table is not safe for concurrent mutation, and is read-only during
// dispatch.
type Router[S any, T handler.TransientState[T]] struct {
	byMethod map[string][]route[S, T]
	count    int
}

// NewRouter creates an empty route table.
func NewRouter[S any, T handler.TransientState[T]]() *Router[S, T] {
	return &Router[S, T]{byMethod: make(map[string][]route[S, T])}
}

// Register adds a chain under (method, pattern). It returns ErrInvalidMethod
// for unknown methods, ErrEmptyChain for nil or empty chains, a pattern
// parse error for malformed templates, and ErrDuplicateRoute when the same
// (method, canonical pattern) pair is already registered. Registration
// errors are local to the call; earlier registrations stay intact.
func (r *Router[S, T]) Register(method, pattern string, chain *Chain[S, T]) error {
	method = strings.ToUpper(method)
	if _, ok := allowedMethods[method]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	if chain == nil || len(chain.steps) == 0 {
		return fmt.Errorf("%w: %s %s", ErrEmptyChain, method, pattern)
	}

	p, err := ParsePattern(pattern)
	if err != nil {
		return err
	}

	canonical := p.String()
	for i := range r.byMethod[method] {
		if r.byMethod[method][i].pattern.String() == canonical {
			return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, canonical)
		}
	}

	r.byMethod[method] = append(r.byMethod[method], route[S, T]{
		method:  method,
		pattern: p,
		chain:   chain,
		index:   r.count,
	})
	r.count++
	return nil
}

// Resolve maps a concrete (method, path) to the matching chain and its
// captured params. When several patterns match, specificity ordering
// applies: more literal segments before the first param or wildcard win,
// then a pattern without a wildcard beats one with, then the earliest
// registration. Entries are scanned in registration order and a later match
// only displaces the current best when strictly more specific, which makes
// registration order the natural final tie-break.
func (r *Router[S, T]) Resolve(method, path string) (*Chain[S, T], handler.Params, bool) {
	var (
		best       *route[S, T]
		bestParams handler.Params
	)
	for i := range r.byMethod[method] {
		rt := &r.byMethod[method][i]
		params, ok := rt.pattern.Match(path)
		if !ok {
			continue
		}
		if best == nil || moreSpecific(rt.pattern, best.pattern) {
			best, bestParams = rt, params
		}
	}
	if best == nil {
		return nil, nil, false
	}
	return best.chain, bestParams, true
}

// moreSpecific reports whether pattern a beats pattern b.
func moreSpecific(a, b Pattern) bool {
	if ap, bp := a.literalPrefix(), b.literalPrefix(); ap != bp {
		return ap > bp
	}
	if a.wildcard != b.wildcard {
		return !a.wildcard
	}
	return false
}

// Allowed returns, sorted, the methods that have a route matching path.
// Used to populate the Allow header on 405 responses.
func (r *Router[S, T]) Allowed(path string) []string {
	var methods []string
	for method, routes := range r.byMethod {
		for i := range routes {
			if _, ok := routes[i].pattern.Match(path); ok {
				methods = append(methods, method)
				break
			}
		}
	}
	sort.Strings(methods)
	return methods
}

// Routes returns all registered routes in registration order.
func (r *Router[S, T]) Routes() []RouteInfo {
	all := make([]route[S, T], 0, r.count)
	for _, routes := range r.byMethod {
		all = append(all, routes...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].index < all[j].index })

	infos := make([]RouteInfo, len(all))
	for i, rt := range all {
		infos[i] = RouteInfo{Method: rt.method, Pattern: rt.pattern.String()}
	}
	return infos
}
