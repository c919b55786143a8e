package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const (
	defaultDialTimeout = 10 * time.Second
	envEmulatorHost    = "FIRESTORE_EMULATOR_HOST"
	envGoogleProjectID = "GOOGLE_CLOUD_PROJECT"
)

// ErrClientClosed is returned after Close.
var ErrClientClosed = errors.New("store: firestore client is closed")

// FirestoreOptions configures the Firestore backend.
type FirestoreOptions struct {
	ProjectID    string
	EmulatorHost string
	DialTimeout  time.Duration

	// Collections maps document types to collection names. Unmapped types use the type name.
	Collections   map[string]string
	ClientOptions []option.ClientOption
}

// FirestoreClient serves content documents from Firestore collections, one per type.
type FirestoreClient struct {
	opts FirestoreOptions

	mu     sync.Mutex
	client *firestore.Client
	closed bool
}

// NewFirestoreClient constructs a FirestoreClient. The underlying connection is created on
// first use.
func NewFirestoreClient(opts FirestoreOptions) *FirestoreClient {
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}
	return &FirestoreClient{opts: opts}
}

func (c *FirestoreClient) connect(ctx context.Context) (*firestore.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClientClosed
	}
	if c.client != nil {
		return c.client, nil
	}

	projectID := strings.TrimSpace(c.opts.ProjectID)
	if projectID == "" {
		projectID = strings.TrimSpace(os.Getenv(envGoogleProjectID))
	}
	if projectID == "" {
		return nil, errors.New("store: firestore project id is required")
	}

	opts := append([]option.ClientOption(nil), c.opts.ClientOptions...)
	if host := c.emulatorHost(); host != "" {
		opts = append(opts,
			option.WithoutAuthentication(),
			option.WithEndpoint(host),
			option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		)
	}

	dialCtx, cancel := context.WithTimeout(ctx, c.opts.DialTimeout)
	defer cancel()
	client, err := firestore.NewClient(dialCtx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("store: create firestore client: %w", err)
	}
	c.client = client
	return client, nil
}

func (c *FirestoreClient) emulatorHost() string {
	if host := strings.TrimSpace(c.opts.EmulatorHost); host != "" {
		return host
	}
	return strings.TrimSpace(os.Getenv(envEmulatorHost))
}

// Collection returns the collection name for a document type.
func (c *FirestoreClient) Collection(docType string) string {
	if name, ok := c.opts.Collections[docType]; ok && strings.TrimSpace(name) != "" {
		return name
	}
	return docType
}

// Query implements Client. Equality filters run server side; ordering, projection and
// limits are applied after the read so documents missing an order field are kept.
func (c *FirestoreClient) Query(ctx context.Context, q Query) ([]Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	client, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	fsq := client.Collection(c.Collection(q.Type)).Query
	for key, value := range q.Filter {
		fsq = fsq.Where(key, "==", value)
	}

	iter := fsq.Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, wrapFirestoreError("store.firestore.query."+q.Type, err)
		}
		doc, err := snapshotDocument(snap, q.Type)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	unfiltered := q
	unfiltered.Filter = nil
	return evaluate(docs, unfiltered), nil
}

// Close releases the Firestore connection. The client cannot be reused afterwards.
func (c *FirestoreClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

func snapshotDocument(snap *firestore.DocumentSnapshot, docType string) (Document, error) {
	data := snap.Data()
	converted := make(map[string]any, len(data)+2)
	for k, v := range data {
		converted[k] = firestoreValue(v)
	}
	doc, err := normalize(converted)
	if err != nil {
		return nil, fmt.Errorf("store: decode firestore document %s: %w", snap.Ref.ID, err)
	}
	if doc == nil {
		doc = Document{}
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = snap.Ref.ID
	}
	doc["_type"] = docType
	return doc, nil
}

func firestoreValue(v any) any {
	switch t := v.(type) {
	case *firestore.DocumentRef:
		if t == nil {
			return nil
		}
		return t.ID
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = firestoreValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = firestoreValue(inner)
		}
		return out
	default:
		return v
	}
}

// Error annotates backend failures with retry semantics.
type Error struct {
	op          string
	err         error
	notFound    bool
	unavailable bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.op != "" {
		return fmt.Sprintf("%s: %v", e.op, e.err)
	}
	return e.err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Is matches ErrNotFound for missing resources.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e != nil && e.notFound
}

// IsNotFound reports whether the error represents a missing resource.
func (e *Error) IsNotFound() bool {
	return e != nil && e.notFound
}

// IsUnavailable reports whether the error represents a transient backend outage.
func (e *Error) IsUnavailable() bool {
	return e != nil && e.unavailable
}

// wrapFirestoreError classifies grpc status codes. Context cancellations pass through.
func wrapFirestoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	switch status.Code(err) {
	case codes.Canceled:
		return context.Canceled
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	}

	e := &Error{op: op, err: err}
	switch status.Code(err) {
	case codes.NotFound:
		e.notFound = true
	case codes.Unavailable, codes.ResourceExhausted, codes.Internal:
		e.unavailable = true
	}
	return e
}
