// Package modellib stores device models in a bolt database and keeps a
// bleve full-text index over them.
package modellib

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/blevesearch/bleve"
	"github.com/boltdb/bolt"

	"github.com/edp1096/spicedeck/internal/ctxlog"
	"github.com/edp1096/spicedeck/pkg/netlist"
)

var ErrNotFound = errors.New("model not found")

var modelsBucket = []byte("models")

type Library struct {
	db    *bolt.DB
	index bleve.Index
}

// Open opens or creates the library at path and indexes its records.
func Open(ctx context.Context, path string) (*Library, error) {
	logger := ctxlog.FromContext(ctx)

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("modellib: open %s: %w", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(modelsBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("modellib: init %s: %w", path, err)
	}

	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("modellib: index: %w", err)
	}

	l := &Library{db: db, index: index}
	records, err := l.List()
	if err != nil {
		l.Close()
		return nil, err
	}
	for _, r := range records {
		if err := l.index.Index(r.Name, r.document()); err != nil {
			l.Close()
			return nil, fmt.Errorf("modellib: index %s: %w", r.Name, err)
		}
	}
	logger.Debug("Model library opened.", "path", path, "models", len(records))
	return l, nil
}

func (l *Library) Close() error {
	ierr := l.index.Close()
	if err := l.db.Close(); err != nil {
		return err
	}
	return ierr
}

// Put stores r, replacing any record with the same name. The type is
// validated and stored upper case.
func (l *Library) Put(r Record) error {
	m, err := r.Model()
	if err != nil {
		return fmt.Errorf("modellib: %w", err)
	}
	r.Type = m.Type()

	data, err := marshal(r)
	if err != nil {
		return fmt.Errorf("modellib: encode %s: %w", r.Name, err)
	}
	if err := l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(modelsBucket).Put([]byte(r.Name), data)
	}); err != nil {
		return fmt.Errorf("modellib: put %s: %w", r.Name, err)
	}
	return l.index.Index(r.Name, r.document())
}

func (l *Library) Get(name string) (Record, error) {
	var r Record
	err := l.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(modelsBucket).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("modellib: %s: %w", name, ErrNotFound)
		}
		return unmarshal(data, &r)
	})
	return r, err
}

// List returns every record sorted by name.
func (l *Library) List() ([]Record, error) {
	var records []Record
	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(modelsBucket).ForEach(func(k, v []byte) error {
			var r Record
			if err := unmarshal(v, &r); err != nil {
				return fmt.Errorf("modellib: decode %s: %w", k, err)
			}
			records = append(records, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

func (l *Library) Delete(name string) error {
	err := l.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(modelsBucket)
		if b.Get([]byte(name)) == nil {
			return fmt.Errorf("modellib: %s: %w", name, ErrNotFound)
		}
		return b.Delete([]byte(name))
	})
	if err != nil {
		return err
	}
	return l.index.Delete(name)
}

// searchPageSize is how many hits Search fetches per request.
var searchPageSize = 100

// Search runs a bleve query string ("switching", "type:npn") and returns
// every matching record, best match first.
func (l *Library) Search(query string) ([]Record, error) {
	q := bleve.NewQueryStringQuery(query)

	var records []Record
	for from := 0; ; from += searchPageSize {
		req := bleve.NewSearchRequestOptions(q, searchPageSize, from, false)
		result, err := l.index.Search(req)
		if err != nil {
			return nil, fmt.Errorf("modellib: search %q: %w", query, err)
		}

		for _, hit := range result.Hits {
			r, err := l.Get(hit.ID)
			if err != nil {
				return nil, err
			}
			records = append(records, r)
		}
		if len(result.Hits) < searchPageSize || uint64(len(records)) >= result.Total {
			return records, nil
		}
	}
}

// Apply adds the named models to n as .model statements.
func (l *Library) Apply(n *netlist.Netlist, names ...string) error {
	for _, name := range names {
		r, err := l.Get(name)
		if err != nil {
			return err
		}
		if _, err := n.AddModel(r.Name, r.Type, r.Params); err != nil {
			return fmt.Errorf("modellib: %w", err)
		}
	}
	return nil
}
