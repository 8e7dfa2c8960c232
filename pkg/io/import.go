package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/planfab/interio/pkg/errors"
	"github.com/planfab/interio/pkg/zone"
)

var knownContentTypes = map[zone.ContentType]bool{
	zone.ContentEmpty:   true,
	zone.ContentShelves: true,
	zone.ContentDrawers: true,
	zone.ContentNested:  true,
}

// ReadJSON decodes a JSON zone tree from r.
//
// The input must be a single zone object; nested zones carry their
// children inline. An empty content_type defaults to "empty". Depth
// fields are recomputed from the nesting structure, so documents do not
// need to carry them.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - A zone has no ID or a duplicate ID
//   - A zone has an unknown content type
//   - A non-nested zone carries children
//
// Errors are wrapped with context naming the offending zone. The
// returned tree is independent of r; ReadJSON does not close r.
func ReadJSON(r io.Reader) (*zone.Zone, error) {
	var root zone.Zone
	dec := json.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}

	seen := make(map[string]bool)
	if err := normalize(&root, 0, seen); err != nil {
		return nil, err
	}
	return &root, nil
}

// normalize recomputes depth fields and checks structural constraints.
func normalize(z *zone.Zone, depth int, seen map[string]bool) error {
	if z.ID == "" {
		return errors.New(errors.ErrCodeInvalidFormat, "zone without id")
	}
	if seen[z.ID] {
		return errors.New(errors.ErrCodeInvalidFormat, "duplicate zone id %q", z.ID)
	}
	seen[z.ID] = true

	if z.ContentType == "" {
		z.ContentType = zone.ContentEmpty
	}
	if !knownContentTypes[z.ContentType] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"zone %s: unknown content type %q", z.ID, z.ContentType)
	}
	if z.ContentType != zone.ContentNested && len(z.Children) > 0 {
		return errors.New(errors.ErrCodeInvalidFormat,
			"zone %s: %s zone must not have children", z.ID, z.ContentType)
	}

	z.Depth = depth
	for _, c := range z.Children {
		if err := normalize(c, depth+1, seen); err != nil {
			return err
		}
	}
	return nil
}

// ImportFile reads a JSON file at path and returns the decoded zone tree.
//
// ImportFile opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportFile(path string) (*zone.Zone, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	root, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}
