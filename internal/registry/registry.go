// Package registry holds the server-id to decoration-triple bookkeeping
// for the window manager. It is pure in-memory state: nothing in this
// package touches the X connection.
package registry

// WindowID is an opaque server-assigned handle. Equality and hashing are
// by value; the zero value never names a real window.
type WindowID uint32

// Triple is the immutable set of windows that make up one managed,
// decorated client: the client itself, the frame that contains it and
// the titlebar inside the frame.
type Triple struct {
	Client WindowID
	Frame  WindowID
	Title  WindowID
}

// Registry maps client/frame/title ids back to the Triple that contains
// them. It is backed by a single owning map keyed by client id and two
// secondary maps that only ever point back into it: one place to go
// inconsistent instead of three.
type Registry struct {
	byClient      map[WindowID]Triple
	frameToClient map[WindowID]WindowID
	titleToClient map[WindowID]WindowID
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byClient:      make(map[WindowID]Triple),
		frameToClient: make(map[WindowID]WindowID),
		titleToClient: make(map[WindowID]WindowID),
	}
}

// Insert establishes all three mappings for t atomically. Calling it
// twice for the same client is idempotent (the decoration builder only
// ever calls it once per client, guarded by LookupByClient).
func (r *Registry) Insert(t Triple) {
	r.byClient[t.Client] = t
	r.frameToClient[t.Frame] = t.Client
	r.titleToClient[t.Title] = t.Client
}

// RemoveByClient removes a triple and all three of its index entries.
// Used for orderly unframing, where the caller already knows the full
// triple is going away together.
func (r *Registry) RemoveByClient(client WindowID) (Triple, bool) {
	t, ok := r.byClient[client]
	if !ok {
		return Triple{}, false
	}
	delete(r.byClient, client)
	delete(r.frameToClient, t.Frame)
	delete(r.titleToClient, t.Title)
	return t, true
}

// LookupByClient returns the triple containing the given client id.
func (r *Registry) LookupByClient(id WindowID) (Triple, bool) {
	t, ok := r.byClient[id]
	return t, ok
}

// LookupByFrame returns the triple containing the given frame id. If the
// client side of the triple has already been torn down (see RemoveAsync)
// this reports not-found even though the frame index entry is still
// technically present, which is the intended "torn triple" behavior.
func (r *Registry) LookupByFrame(id WindowID) (Triple, bool) {
	client, ok := r.frameToClient[id]
	if !ok {
		return Triple{}, false
	}
	return r.LookupByClient(client)
}

// LookupByTitle returns the triple containing the given title id, with
// the same torn-triple caveat as LookupByFrame.
func (r *Registry) LookupByTitle(id WindowID) (Triple, bool) {
	client, ok := r.titleToClient[id]
	if !ok {
		return Triple{}, false
	}
	return r.LookupByClient(client)
}

// RemoveAsync removes whichever single index (client, frame or title)
// contains id, and does not touch the other two. This is what an
// asynchronous DestroyNotify handler calls: the server delivers one
// notification per destroyed window, and the three windows of a triple
// are destroyed (and hence notified) independently, so each
// notification only ever corresponds to one of the three indexes.
func (r *Registry) RemoveAsync(id WindowID) {
	if _, ok := r.byClient[id]; ok {
		delete(r.byClient, id)
		return
	}
	if _, ok := r.frameToClient[id]; ok {
		delete(r.frameToClient, id)
		return
	}
	if _, ok := r.titleToClient[id]; ok {
		delete(r.titleToClient, id)
	}
}

// ClientCount, FrameCount and TitleCount expose the three index sizes,
// used to check the "|by_client| = |by_frame| = |by_title|" invariant
// in tests.
func (r *Registry) ClientCount() int { return len(r.byClient) }
func (r *Registry) FrameCount() int  { return len(r.frameToClient) }
func (r *Registry) TitleCount() int  { return len(r.titleToClient) }
