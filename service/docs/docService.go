// Package docs backs the document-library view: list, per-item selection and
// bulk delete.
package docs

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"bookloans/model"
	"bookloans/repository/catalog"
	"bookloans/repository/docstore"
	"bookloans/service/selection"
	"bookloans/service/session"
)

type Service interface {
	// List fetches the documents and prunes the selection so it never keeps
	// an id that left the list.
	List(ctx context.Context) ([]model.Document, error)

	Toggle(id string) selection.Set
	SelectAll() selection.Set
	ClearSelection() selection.Set
	Selection() selection.Set
	IsFullySelected() bool

	// DeleteSelected removes every selected document, then refreshes the
	// list and clears the selection. Returns how many were deleted.
	DeleteSelected(ctx context.Context) (int, error)
}

type service struct {
	session session.Provider
	store   docstore.Repo
	sel     *selection.Coordinator
	log     *slog.Logger

	mu   sync.Mutex
	docs []model.Document
}

func New(sp session.Provider, store docstore.Repo, log *slog.Logger) Service {
	return &service{session: sp, store: store, sel: selection.New(), log: log}
}

var errNoSession = errors.New("Please log in to manage documents")

func (s *service) List(ctx context.Context) ([]model.Document, error) {
	tok, ok := s.session.ActiveToken()
	if !ok {
		return nil, errNoSession
	}
	docs, err := s.store.List(ctx, tok.Bearer)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.docs = docs
	s.mu.Unlock()
	s.sel.Prune(docIDs(docs))
	return docs, nil
}

func (s *service) Toggle(id string) selection.Set { return s.sel.Toggle(id) }
func (s *service) ClearSelection() selection.Set  { return s.sel.Clear() }
func (s *service) Selection() selection.Set       { return s.sel.Current() }

func (s *service) SelectAll() selection.Set {
	s.mu.Lock()
	ids := docIDs(s.docs)
	s.mu.Unlock()
	return s.sel.SelectAll(ids)
}

func (s *service) IsFullySelected() bool {
	s.mu.Lock()
	ids := docIDs(s.docs)
	s.mu.Unlock()
	return s.sel.IsFullySelected(ids)
}

func (s *service) DeleteSelected(ctx context.Context) (int, error) {
	tok, ok := s.session.ActiveToken()
	if !ok {
		return 0, errNoSession
	}

	deleted := 0
	for _, id := range s.sel.Current().IDs() {
		if err := s.store.Delete(ctx, tok.Bearer, id); err != nil {
			// refresh anyway so the view reflects the partial delete
			s.refreshAfterDelete(ctx)
			return deleted, err
		}
		deleted++
	}
	s.refreshAfterDelete(ctx)
	return deleted, nil
}

func (s *service) refreshAfterDelete(ctx context.Context) {
	s.sel.Clear()
	if _, err := s.List(ctx); err != nil {
		var re *catalog.RemoteError
		if errors.As(err, &re) {
			s.log.Error("document list refresh", "status", re.Status, "err", re.Message)
			return
		}
		s.log.Error("document list refresh", "err", err)
	}
}

func docIDs(docs []model.Document) []string {
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids
}
