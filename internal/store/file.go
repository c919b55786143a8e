package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/occlusa/dental-web/internal/portable"
)

const markdownSuffix = "Markdown"

// FileClient reads documents from YAML files, one file per document type:
// <dir>/<type>.yaml holding either a list of documents or a single document.
//
// String fields named <field>Markdown are converted into rich text blocks under <field>
// unless the document already sets <field>.
type FileClient struct {
	dir string
}

// NewFileClient constructs a FileClient rooted at dir.
func NewFileClient(dir string) (*FileClient, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("store: content directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("store: content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("store: %s is not a directory", dir)
	}
	return &FileClient{dir: dir}, nil
}

// Query implements Client. A missing file means the type has no documents.
func (c *FileClient) Query(ctx context.Context, q Query) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	docs, err := c.load(q.Type)
	if err != nil {
		return nil, err
	}
	return evaluate(docs, q), nil
}

func (c *FileClient) load(docType string) ([]Document, error) {
	if strings.ContainsAny(docType, `/\`) || strings.Contains(docType, "..") {
		return nil, fmt.Errorf("store: invalid document type %q", docType)
	}
	var data []byte
	var path string
	for _, ext := range []string{".yaml", ".yml"} {
		candidate := filepath.Join(c.dir, docType+ext)
		raw, err := os.ReadFile(candidate)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("store: read %s: %w", candidate, err)
		}
		data, path = raw, candidate
		break
	}
	if path == "" {
		return nil, nil
	}

	var decoded any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("store: parse %s: %w", path, err)
	}

	var items []any
	switch v := decoded.(type) {
	case nil:
		return nil, nil
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	default:
		return nil, fmt.Errorf("store: %s must hold a document or a list of documents", path)
	}

	docs := make([]Document, 0, len(items))
	for i, item := range items {
		if _, ok := item.(map[string]any); !ok {
			return nil, fmt.Errorf("store: %s entry %d is not a document", path, i)
		}
		doc, err := normalize(item)
		if err != nil {
			return nil, fmt.Errorf("store: normalise %s entry %d: %w", path, i, err)
		}
		if doc.ID() == "" {
			doc["_id"] = docType + "-" + strconv.Itoa(i+1)
		}
		doc["_type"] = docType
		if err := expandMarkdown(doc); err != nil {
			return nil, fmt.Errorf("store: %s entry %d: %w", path, i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func expandMarkdown(doc map[string]any) error {
	for key, value := range doc {
		switch v := value.(type) {
		case map[string]any:
			if err := expandMarkdown(v); err != nil {
				return err
			}
		case []any:
			for _, item := range v {
				if nested, ok := item.(map[string]any); ok {
					if err := expandMarkdown(nested); err != nil {
						return err
					}
				}
			}
		case string:
			field := strings.TrimSuffix(key, markdownSuffix)
			if field == key || field == "" {
				continue
			}
			if _, exists := doc[field]; exists {
				continue
			}
			blocks, err := normalizeList(portable.FromMarkdown(v))
			if err != nil {
				return fmt.Errorf("convert %s: %w", key, err)
			}
			doc[field] = blocks
		}
	}
	return nil
}

func normalizeList(blocks portable.Blocks) ([]any, error) {
	wrapped, err := normalize(map[string]any{"v": blocks})
	if err != nil {
		return nil, err
	}
	list, _ := wrapped["v"].([]any)
	if list == nil {
		list = []any{}
	}
	return list, nil
}
