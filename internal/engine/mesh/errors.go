package mesh

import "errors"

// ErrPartialAttribute is returned by Validate when an attribute sequence
// does not cover every vertex, which happens when triangle appends with
// and without that attribute (or triangles and pixels) are mixed.
var ErrPartialAttribute = errors.New("attribute does not cover every vertex")
