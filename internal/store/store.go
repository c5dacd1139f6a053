package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Store is the read-only boundary to the document database. Analyzers depend
// on this interface instead of a concrete client so they can run against an
// in-memory fake in tests.
type Store interface {
	// FetchAll returns every document in the named collection as a Record.
	// The document ID is folded into the record under "id".
	FetchAll(ctx context.Context, collection string) ([]Record, error)
}

type firestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps a Firestore client as a Store.
func NewFirestoreStore(client *firestore.Client) Store {
	return &firestoreStore{client: client}
}

func (s *firestoreStore) FetchAll(ctx context.Context, collection string) ([]Record, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var records []Record
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch collection %s: %w", collection, err)
		}
		rec := Record(doc.Data())
		if rec == nil {
			rec = Record{}
		}
		rec["id"] = doc.Ref.ID
		records = append(records, rec)
	}
	return records, nil
}
