package boxes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Box is one highlight location as exported from Blender (Z-up, Y-forward).
// Location, Scale and Rotation are in that source convention; see highlight.FromBox for the conversion.
type Box struct {
	ID       string     `json:"boxId"`
	Content  string     `json:"content,omitempty"`
	Location [3]float32 `json:"location"`
	Scale    [3]float32 `json:"scale"`
	Rotation [3]float32 `json:"rotation"`
}

// Label is the text shown in the selection list: Content, or ID when Content is empty.
func (b Box) Label() string {
	if b.Content != "" {
		return b.Content
	}
	return b.ID
}

// Document is the on-disk shape of the box data file (e.g. boxCoords.json).
type Document struct {
	Boxes []Box `json:"boxes"`
}

// Result is the outcome of one load: either the ordered boxes or the error that failed the whole load.
type Result struct {
	Path  string
	Boxes []Box
	Err   error
}

// Decode parses a box document from r. Records are kept in file order, duplicate IDs included;
// Find resolves a duplicated ID to its first record.
func Decode(r io.Reader) ([]Box, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode boxes: %w", err)
	}
	if doc.Boxes == nil {
		doc.Boxes = []Box{}
	}
	return doc.Boxes, nil
}

// Load reads and decodes the box document at path. It never panics; failures are carried in Result.Err.
func Load(path string) Result {
	f, err := os.Open(path)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("load boxes %s: %w", path, err)}
	}
	defer f.Close()
	list, err := Decode(f)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("load boxes %s: %w", path, err)}
	}
	return Result{Path: path, Boxes: list}
}

// Resolver maps a configured location to a local file, for example by downloading it.
type Resolver func(ctx context.Context, path string) (string, error)

// LoadAsync resolves path (when resolve is non-nil) and loads it on a goroutine. The Result is
// delivered on the returned channel, which buffers one value. Result.Path is the requested path.
func LoadAsync(ctx context.Context, path string, resolve Resolver) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		local := path
		if resolve != nil {
			var err error
			if local, err = resolve(ctx, path); err != nil {
				out <- Result{Path: path, Err: fmt.Errorf("load boxes %s: %w", path, err)}
				return
			}
		}
		res := Load(local)
		res.Path = path
		out <- res
	}()
	return out
}

// Find returns the box with the given ID, or false when no box has it.
func Find(list []Box, id string) (Box, bool) {
	for _, b := range list {
		if b.ID == id {
			return b, true
		}
	}
	return Box{}, false
}
